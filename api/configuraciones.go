package api

import (
	"context"
	"fmt"
	"net/url"
)

type ConfiguracionSistema struct {
	ID          int64  `json:"id"`
	Clave       string `json:"clave"`
	Valor       string `json:"valor,omitempty"`
	Tipo        string `json:"tipo,omitempty"`
	Descripcion string `json:"descripcion,omitempty"`
	Categoria   string `json:"categoria,omitempty"`
	Editable    bool   `json:"editable"`
}

type ConfiguracionSistemaRequest struct {
	Clave       string `json:"clave"`
	Valor       string `json:"valor,omitempty"`
	Tipo        string `json:"tipo,omitempty"`
	Descripcion string `json:"descripcion,omitempty"`
	Categoria   string `json:"categoria,omitempty"`
	Editable    *bool  `json:"editable,omitempty"`
}

type ConfiguracionService struct {
	c *Client
}

func (c *Client) Configuraciones() *ConfiguracionService {
	return &ConfiguracionService{c: c}
}

func (s *ConfiguracionService) ListAll(ctx context.Context) ([]ConfiguracionSistema, error) {
	var out []ConfiguracionSistema
	if err := s.c.get(ctx, "/configuraciones", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ConfiguracionService) ListEditable(ctx context.Context) ([]ConfiguracionSistema, error) {
	var out []ConfiguracionSistema
	if err := s.c.get(ctx, "/configuraciones/editables", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ConfiguracionService) ListByCategoria(ctx context.Context, categoria string) ([]ConfiguracionSistema, error) {
	var out []ConfiguracionSistema
	if err := s.c.get(ctx, "/configuraciones/categoria/"+url.PathEscape(categoria), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ConfiguracionService) Create(ctx context.Context, req ConfiguracionSistemaRequest) (*ConfiguracionSistema, error) {
	var out ConfiguracionSistema
	if err := s.c.post(ctx, "/configuraciones", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ConfiguracionService) Update(ctx context.Context, id int64, req ConfiguracionSistemaRequest) (*ConfiguracionSistema, error) {
	var out ConfiguracionSistema
	if err := s.c.put(ctx, fmt.Sprintf("/configuraciones/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ConfiguracionService) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/configuraciones/%d", id))
}
