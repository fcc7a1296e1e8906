package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type Usuario struct {
	ID                 int64   `json:"id"`
	Email              string  `json:"email"`
	Nombre             string  `json:"nombre"`
	Apellido           string  `json:"apellido"`
	NombreCompleto     string  `json:"nombreCompleto"`
	Telefono           string  `json:"telefono,omitempty"`
	RUT                string  `json:"rut,omitempty"`
	Direccion          string  `json:"direccion,omitempty"`
	Nacionalidad       string  `json:"nacionalidad,omitempty"`
	FotoPerfil         string  `json:"fotoPerfil,omitempty"`
	Roles              []Rol   `json:"roles"`
	CuentaBloqueada    bool    `json:"cuentaBloqueada"`
	Activo             bool    `json:"activo"`
	PorcentajeComision float64 `json:"porcentajeComision,omitempty"`
	CreatedAt          string  `json:"createdAt,omitempty"`
	UpdatedAt          string  `json:"updatedAt,omitempty"`
}

type UsuarioRequest struct {
	Email              string   `json:"email"`
	Password           string   `json:"password,omitempty"`
	Nombre             string   `json:"nombre"`
	Apellido           string   `json:"apellido"`
	Telefono           string   `json:"telefono,omitempty"`
	RUT                string   `json:"rut,omitempty"`
	RolesIDs           []int64  `json:"rolesIds,omitempty"`
	PorcentajeComision *float64 `json:"porcentajeComision,omitempty"`
}

type PerfilRequest struct {
	Telefono     string `json:"telefono,omitempty"`
	Direccion    string `json:"direccion,omitempty"`
	Nacionalidad string `json:"nacionalidad,omitempty"`
	FotoPerfil   string `json:"fotoPerfil,omitempty"`
}

type ServicioFavorito struct {
	ServicioID     int64  `json:"servicioId"`
	ServicioNombre string `json:"servicioNombre"`
	CantidadVentas int64  `json:"cantidadVentas"`
}

type UsuarioEstadisticas struct {
	GananciaPromedioMensual float64            `json:"gananciaPromedioMensual"`
	ServiciosFavoritos      []ServicioFavorito `json:"serviciosFavoritos"`
	TotalVentas             int64              `json:"totalVentas"`
	TotalGanancia           float64            `json:"totalGanancia"`
}

type UsuarioService struct {
	c *Client
}

func (c *Client) Usuarios() *UsuarioService {
	return &UsuarioService{c: c}
}

func (s *UsuarioService) Create(ctx context.Context, req UsuarioRequest) (*Usuario, error) {
	var out Usuario
	if err := s.c.post(ctx, "/usuarios", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsuarioService) Update(ctx context.Context, id int64, req UsuarioRequest) (*Usuario, error) {
	var out Usuario
	if err := s.c.put(ctx, fmt.Sprintf("/usuarios/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsuarioService) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/usuarios/%d", id))
}

func (s *UsuarioService) Get(ctx context.Context, id int64) (*Usuario, error) {
	var out Usuario
	if err := s.c.get(ctx, fmt.Sprintf("/usuarios/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsuarioService) List(ctx context.Context, page, size int) (*Page[Usuario], error) {
	var out Page[Usuario]
	if err := s.c.get(ctx, "/usuarios", pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsuarioService) ListAll(ctx context.Context) ([]Usuario, error) {
	var out []Usuario
	if err := s.c.get(ctx, "/usuarios/todas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetActive activates or deactivates the account.
func (s *UsuarioService) SetActive(ctx context.Context, id int64, activo bool) (*Usuario, error) {
	query := url.Values{"activo": []string{strconv.FormatBool(activo)}}
	var out Usuario
	if err := s.c.patch(ctx, fmt.Sprintf("/usuarios/%d/activar", id), query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsuarioService) Block(ctx context.Context, id int64) error {
	return s.c.patch(ctx, fmt.Sprintf("/usuarios/%d/bloquear", id), nil, nil, nil)
}

func (s *UsuarioService) Unblock(ctx context.Context, id int64) error {
	return s.c.patch(ctx, fmt.Sprintf("/usuarios/%d/desbloquear", id), nil, nil, nil)
}

// UpdateProfile updates the authenticated user's own non-identity fields.
func (s *UsuarioService) UpdateProfile(ctx context.Context, req PerfilRequest) (*Usuario, error) {
	var out Usuario
	if err := s.c.put(ctx, "/usuarios/mi-perfil", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsuarioService) Stats(ctx context.Context, id int64) (*UsuarioEstadisticas, error) {
	var out UsuarioEstadisticas
	if err := s.c.get(ctx, fmt.Sprintf("/usuarios/%d/estadisticas", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
