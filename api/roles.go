package api

import (
	"context"
	"fmt"
)

type Rol struct {
	ID          int64     `json:"id"`
	Nombre      string    `json:"nombre"`
	Codigo      string    `json:"codigo"`
	Descripcion string    `json:"descripcion,omitempty"`
	Permisos    []Permiso `json:"permisos,omitempty"`
	CreatedAt   string    `json:"createdAt,omitempty"`
	UpdatedAt   string    `json:"updatedAt,omitempty"`
}

type RolRequest struct {
	Nombre      string  `json:"nombre"`
	Codigo      string  `json:"codigo"`
	Descripcion string  `json:"descripcion,omitempty"`
	PermisosIDs []int64 `json:"permisosIds,omitempty"`
}

type RolService struct {
	c *Client
}

func (c *Client) Roles() *RolService {
	return &RolService{c: c}
}

func (s *RolService) Create(ctx context.Context, req RolRequest) (*Rol, error) {
	var out Rol
	if err := s.c.post(ctx, "/roles", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RolService) Update(ctx context.Context, id int64, req RolRequest) (*Rol, error) {
	var out Rol
	if err := s.c.put(ctx, fmt.Sprintf("/roles/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RolService) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/roles/%d", id))
}

func (s *RolService) Get(ctx context.Context, id int64) (*Rol, error) {
	var out Rol
	if err := s.c.get(ctx, fmt.Sprintf("/roles/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RolService) List(ctx context.Context, page, size int) (*Page[Rol], error) {
	var out Page[Rol]
	if err := s.c.get(ctx, "/roles", pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RolService) ListAll(ctx context.Context) ([]Rol, error) {
	var out []Rol
	if err := s.c.get(ctx, "/roles/todas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Clone copies an existing role, permissions included, under a new name.
func (s *RolService) Clone(ctx context.Context, id int64, nuevoNombre string) (*Rol, error) {
	body := map[string]string{"nuevoNombre": nuevoNombre}
	var out Rol
	if err := s.c.post(ctx, fmt.Sprintf("/roles/%d/clonar", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RolService) AddPermiso(ctx context.Context, rolID, permisoID int64) (*Rol, error) {
	var out Rol
	if err := s.c.post(ctx, fmt.Sprintf("/roles/%d/permisos/%d", rolID, permisoID), struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RolService) RemovePermiso(ctx context.Context, rolID, permisoID int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/roles/%d/permisos/%d", rolID, permisoID))
}

func (s *RolService) AddPermisos(ctx context.Context, rolID int64, permisosIDs []int64) (*Rol, error) {
	body := map[string][]int64{"permisosIds": permisosIDs}
	var out Rol
	if err := s.c.post(ctx, fmt.Sprintf("/roles/%d/permisos/batch", rolID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
