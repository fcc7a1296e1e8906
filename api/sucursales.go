package api

import (
	"context"
	"fmt"
)

type UsuarioBasic struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
}

type Sucursal struct {
	ID              int64         `json:"id"`
	Nombre          string        `json:"nombre"`
	Direccion       string        `json:"direccion"`
	Telefono        string        `json:"telefono,omitempty"`
	Email           string        `json:"email,omitempty"`
	HorarioApertura string        `json:"horarioApertura,omitempty"`
	HorarioCierre   string        `json:"horarioCierre,omitempty"`
	DiasAtencion    string        `json:"diasAtencion,omitempty"`
	Administrador   *UsuarioBasic `json:"administrador,omitempty"`
	ComisionDefecto float64       `json:"comisionDefecto"`
	CreatedAt       string        `json:"createdAt,omitempty"`
	UpdatedAt       string        `json:"updatedAt,omitempty"`
}

type SucursalRequest struct {
	Nombre          string   `json:"nombre"`
	Direccion       string   `json:"direccion"`
	Telefono        string   `json:"telefono,omitempty"`
	Email           string   `json:"email,omitempty"`
	HorarioApertura string   `json:"horarioApertura,omitempty"`
	HorarioCierre   string   `json:"horarioCierre,omitempty"`
	DiasAtencion    string   `json:"diasAtencion,omitempty"`
	AdministradorID *int64   `json:"administradorId,omitempty"`
	ComisionDefecto *float64 `json:"comisionDefecto,omitempty"`
}

type SucursalService struct {
	c *Client
}

func (c *Client) Sucursales() *SucursalService {
	return &SucursalService{c: c}
}

func (s *SucursalService) Create(ctx context.Context, req SucursalRequest) (*Sucursal, error) {
	var out Sucursal
	if err := s.c.post(ctx, "/sucursales", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SucursalService) Update(ctx context.Context, id int64, req SucursalRequest) (*Sucursal, error) {
	var out Sucursal
	if err := s.c.put(ctx, fmt.Sprintf("/sucursales/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SucursalService) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/sucursales/%d", id))
}

func (s *SucursalService) Get(ctx context.Context, id int64) (*Sucursal, error) {
	var out Sucursal
	if err := s.c.get(ctx, fmt.Sprintf("/sucursales/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SucursalService) List(ctx context.Context, page, size int) (*Page[Sucursal], error) {
	var out Page[Sucursal]
	if err := s.c.get(ctx, "/sucursales", pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SucursalService) ListAll(ctx context.Context) ([]Sucursal, error) {
	var out []Sucursal
	if err := s.c.get(ctx, "/sucursales/todas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
