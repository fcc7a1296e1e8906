package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type Categoria struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}

type SucursalBasic struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

type Producto struct {
	ID           int64         `json:"id"`
	Codigo       string        `json:"codigo"`
	Nombre       string        `json:"nombre"`
	Descripcion  string        `json:"descripcion,omitempty"`
	Categoria    *Categoria    `json:"categoria,omitempty"`
	PrecioVenta  float64       `json:"precioVenta"`
	PrecioCosto  float64       `json:"precioCosto"`
	StockActual  int           `json:"stockActual"`
	StockMinimo  int           `json:"stockMinimo"`
	TieneIVA     bool          `json:"tieneIva"`
	ImagenURL    string        `json:"imagenUrl,omitempty"`
	Sucursal     SucursalBasic `json:"sucursal"`
	UnidadMedida string        `json:"unidadMedida,omitempty"`
	CreatedAt    string        `json:"createdAt,omitempty"`
	UpdatedAt    string        `json:"updatedAt,omitempty"`
	StockBajo    bool          `json:"stockBajo"`
}

type ProductoRequest struct {
	Codigo       string   `json:"codigo"`
	Nombre       string   `json:"nombre"`
	Descripcion  string   `json:"descripcion,omitempty"`
	CategoriaID  *int64   `json:"categoriaId,omitempty"`
	PrecioVenta  float64  `json:"precioVenta"`
	PrecioCosto  *float64 `json:"precioCosto,omitempty"`
	StockActual  *int     `json:"stockActual,omitempty"`
	StockMinimo  *int     `json:"stockMinimo,omitempty"`
	TieneIVA     *bool    `json:"tieneIva,omitempty"`
	ImagenURL    string   `json:"imagenUrl,omitempty"`
	SucursalID   int64    `json:"sucursalId"`
	UnidadMedida string   `json:"unidadMedida,omitempty"`
}

// Stock movement types accepted by UpdateStock.
const (
	StockIncremento = "INCREMENTO"
	StockDecremento = "DECREMENTO"
)

type ProductoService struct {
	c *Client
}

func (c *Client) Productos() *ProductoService {
	return &ProductoService{c: c}
}

func (s *ProductoService) Create(ctx context.Context, req ProductoRequest) (*Producto, error) {
	var out Producto
	if err := s.c.post(ctx, "/productos", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductoService) Update(ctx context.Context, id int64, req ProductoRequest) (*Producto, error) {
	var out Producto
	if err := s.c.put(ctx, fmt.Sprintf("/productos/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductoService) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/productos/%d", id))
}

func (s *ProductoService) Get(ctx context.Context, id int64) (*Producto, error) {
	var out Producto
	if err := s.c.get(ctx, fmt.Sprintf("/productos/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductoService) List(ctx context.Context, page, size int) (*Page[Producto], error) {
	var out Page[Producto]
	if err := s.c.get(ctx, "/productos", pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductoService) ListBySucursal(ctx context.Context, sucursalID int64, page, size int) (*Page[Producto], error) {
	var out Page[Producto]
	if err := s.c.get(ctx, fmt.Sprintf("/productos/sucursal/%d", sucursalID), pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductoService) ListAllBySucursal(ctx context.Context, sucursalID int64) ([]Producto, error) {
	var out []Producto
	if err := s.c.get(ctx, fmt.Sprintf("/productos/sucursal/%d/todos", sucursalID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListLowStock returns the products at or below their minimum stock.
func (s *ProductoService) ListLowStock(ctx context.Context, sucursalID int64) ([]Producto, error) {
	var out []Producto
	if err := s.c.get(ctx, fmt.Sprintf("/productos/sucursal/%d/stock-bajo", sucursalID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProductoService) UpdateStock(ctx context.Context, id int64, cantidad int, tipo string) (*Producto, error) {
	query := url.Values{
		"cantidad": []string{strconv.Itoa(cantidad)},
		"tipo":     []string{tipo},
	}
	var out Producto
	if err := s.c.patch(ctx, fmt.Sprintf("/productos/%d/stock", id), query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductoService) GetByCodigo(ctx context.Context, codigo string) (*Producto, error) {
	var out Producto
	if err := s.c.get(ctx, "/productos/codigo/"+url.PathEscape(codigo), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
