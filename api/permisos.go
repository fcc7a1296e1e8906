package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

type Permiso struct {
	ID          int64  `json:"id"`
	Codigo      string `json:"codigo"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Tipo        string `json:"tipo,omitempty"`
	Recurso     string `json:"recurso,omitempty"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type PermisoRequest struct {
	Codigo      string `json:"codigo"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Tipo        string `json:"tipoPermiso"`
}

type PermisoService struct {
	c *Client
}

func (c *Client) Permisos() *PermisoService {
	return &PermisoService{c: c}
}

// ListAll returns every permission. The endpoint has returned both a bare
// array and a paginated {content: [...]} payload across backend versions,
// so both shapes are accepted.
func (s *PermisoService) ListAll(ctx context.Context) ([]Permiso, error) {
	var raw json.RawMessage
	if err := s.c.get(ctx, "/permisos", nil, &raw); err != nil {
		return nil, err
	}

	var list []Permiso
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var paged Page[Permiso]
	if err := json.Unmarshal(raw, &paged); err != nil {
		return nil, errors.Wrap(err, "[PermisoService.ListAll] unexpected payload shape")
	}
	return paged.Content, nil
}

func (s *PermisoService) Get(ctx context.Context, id int64) (*Permiso, error) {
	var out Permiso
	if err := s.c.get(ctx, fmt.Sprintf("/permisos/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PermisoService) Create(ctx context.Context, req PermisoRequest) (*Permiso, error) {
	var out Permiso
	if err := s.c.post(ctx, "/permisos", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PermisoService) Update(ctx context.Context, id int64, req PermisoRequest) (*Permiso, error) {
	var out Permiso
	if err := s.c.put(ctx, fmt.Sprintf("/permisos/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PermisoService) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/permisos/%d", id))
}
