package api

import (
	"context"
	"fmt"
)

type Cliente struct {
	ID             int64  `json:"id"`
	NombreCompleto string `json:"nombreCompleto"`
	RUT            string `json:"rut,omitempty"`
	Email          string `json:"email,omitempty"`
	Telefono       string `json:"telefono,omitempty"`
	Direccion      string `json:"direccion,omitempty"`
	Observaciones  string `json:"observaciones,omitempty"`
}

type ClienteRequest struct {
	NombreCompleto string `json:"nombreCompleto"`
	RUT            string `json:"rut,omitempty"`
	Email          string `json:"email,omitempty"`
	Telefono       string `json:"telefono,omitempty"`
	Direccion      string `json:"direccion,omitempty"`
	Observaciones  string `json:"observaciones,omitempty"`
}

type ClienteService struct {
	c *Client
}

func (c *Client) Clientes() *ClienteService {
	return &ClienteService{c: c}
}

func (s *ClienteService) Create(ctx context.Context, req ClienteRequest) (*Cliente, error) {
	var out Cliente
	if err := s.c.post(ctx, "/clientes", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClienteService) Update(ctx context.Context, id int64, req ClienteRequest) (*Cliente, error) {
	var out Cliente
	if err := s.c.put(ctx, fmt.Sprintf("/clientes/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClienteService) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/clientes/%d", id))
}

func (s *ClienteService) Get(ctx context.Context, id int64) (*Cliente, error) {
	var out Cliente
	if err := s.c.get(ctx, fmt.Sprintf("/clientes/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClienteService) List(ctx context.Context, page, size int) (*Page[Cliente], error) {
	var out Page[Cliente]
	if err := s.c.get(ctx, "/clientes", pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAll fetches every client through the paged endpoint with an
// oversized page; the backend has no unpaged listing for clients.
func (s *ClienteService) ListAll(ctx context.Context) ([]Cliente, error) {
	page, err := s.List(ctx, 0, 10000)
	if err != nil {
		return nil, err
	}
	return page.Content, nil
}
