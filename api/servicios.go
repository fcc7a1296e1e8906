package api

import (
	"context"
	"fmt"
	"net/url"
)

type InsumoBasic struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Codigo string `json:"codigo"`
}

type Servicio struct {
	ID                int64         `json:"id"`
	Codigo            string        `json:"codigo"`
	Nombre            string        `json:"nombre"`
	Descripcion       string        `json:"descripcion,omitempty"`
	Categoria         *Categoria    `json:"categoria,omitempty"`
	Precio            float64       `json:"precio"`
	DuracionMinutos   int           `json:"duracionMinutos"`
	TieneIVA          bool          `json:"tieneIva"`
	Sucursal          SucursalBasic `json:"sucursal"`
	InsumosUtilizados []InsumoBasic `json:"insumosUtilizados,omitempty"`
	CreatedAt         string        `json:"createdAt,omitempty"`
	UpdatedAt         string        `json:"updatedAt,omitempty"`
}

type ServicioRequest struct {
	Codigo               string  `json:"codigo"`
	Nombre               string  `json:"nombre"`
	Descripcion          string  `json:"descripcion,omitempty"`
	CategoriaID          *int64  `json:"categoriaId,omitempty"`
	Precio               float64 `json:"precio"`
	DuracionMinutos      *int    `json:"duracionMinutos,omitempty"`
	TieneIVA             *bool   `json:"tieneIva,omitempty"`
	SucursalID           int64   `json:"sucursalId"`
	InsumosUtilizadosIDs []int64 `json:"insumosUtilizadosIds,omitempty"`
}

type ServicioService struct {
	c *Client
}

func (c *Client) Servicios() *ServicioService {
	return &ServicioService{c: c}
}

func (s *ServicioService) Create(ctx context.Context, req ServicioRequest) (*Servicio, error) {
	var out Servicio
	if err := s.c.post(ctx, "/servicios", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ServicioService) Update(ctx context.Context, id int64, req ServicioRequest) (*Servicio, error) {
	var out Servicio
	if err := s.c.put(ctx, fmt.Sprintf("/servicios/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ServicioService) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/servicios/%d", id))
}

func (s *ServicioService) Get(ctx context.Context, id int64) (*Servicio, error) {
	var out Servicio
	if err := s.c.get(ctx, fmt.Sprintf("/servicios/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ServicioService) List(ctx context.Context, page, size int) (*Page[Servicio], error) {
	var out Page[Servicio]
	if err := s.c.get(ctx, "/servicios", pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ServicioService) ListBySucursal(ctx context.Context, sucursalID int64, page, size int) (*Page[Servicio], error) {
	var out Page[Servicio]
	if err := s.c.get(ctx, fmt.Sprintf("/servicios/sucursal/%d", sucursalID), pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ServicioService) ListAllBySucursal(ctx context.Context, sucursalID int64) ([]Servicio, error) {
	var out []Servicio
	if err := s.c.get(ctx, fmt.Sprintf("/servicios/sucursal/%d/todos", sucursalID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ServicioService) GetByCodigo(ctx context.Context, codigo string) (*Servicio, error) {
	var out Servicio
	if err := s.c.get(ctx, "/servicios/codigo/"+url.PathEscape(codigo), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
