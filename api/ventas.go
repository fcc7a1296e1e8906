package api

import (
	"context"
	"fmt"
	"net/url"
)

// Item types for venta lines.
const (
	ItemProducto = "PRODUCTO"
	ItemServicio = "SERVICIO"
)

type DetalleVenta struct {
	ID             int64   `json:"id"`
	TipoItem       string  `json:"tipoItem"`
	Descripcion    string  `json:"descripcion"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precioUnitario"`
	Subtotal       float64 `json:"subtotal"`
	AplicaIVA      bool    `json:"aplicaIva"`
}

type Venta struct {
	ID                 int64          `json:"id"`
	NumeroVenta        string         `json:"numeroVenta"`
	FechaVenta         string         `json:"fechaVenta"`
	TrabajadorNombre   string         `json:"trabajadorNombre"`
	ClienteNombre      string         `json:"clienteNombre,omitempty"`
	SucursalNombre     string         `json:"sucursalNombre"`
	Subtotal           float64        `json:"subtotal"`
	IVA                float64        `json:"iva"`
	Total              float64        `json:"total"`
	ComisionTrabajador float64        `json:"comisionTrabajador"`
	MetodoPago         string         `json:"metodoPago"`
	Observaciones      string         `json:"observaciones,omitempty"`
	Detalles           []DetalleVenta `json:"detalles"`
	ComprobanteURL     string         `json:"comprobanteUrl,omitempty"`
}

type DetalleVentaRequest struct {
	TipoItem       string  `json:"tipoItem"`
	ProductoID     *int64  `json:"productoId,omitempty"`
	ServicioID     *int64  `json:"servicioId,omitempty"`
	Descripcion    string  `json:"descripcion,omitempty"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precioUnitario"`
	AplicaIVA      *bool   `json:"aplicaIva,omitempty"`
}

type VentaRequest struct {
	TrabajadorID  int64                 `json:"trabajadorId"`
	ClienteID     *int64                `json:"clienteId,omitempty"`
	SucursalID    int64                 `json:"sucursalId"`
	MetodoPago    string                `json:"metodoPago"`
	Detalles      []DetalleVentaRequest `json:"detalles"`
	Observaciones string                `json:"observaciones,omitempty"`
}

type VentaService struct {
	c *Client
}

func (c *Client) Ventas() *VentaService {
	return &VentaService{c: c}
}

func (s *VentaService) Create(ctx context.Context, req VentaRequest) (*Venta, error) {
	var out Venta
	if err := s.c.post(ctx, "/ventas", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *VentaService) Get(ctx context.Context, id int64) (*Venta, error) {
	var out Venta
	if err := s.c.get(ctx, fmt.Sprintf("/ventas/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *VentaService) List(ctx context.Context, page, size int) (*Page[Venta], error) {
	var out Page[Venta]
	if err := s.c.get(ctx, "/ventas", pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *VentaService) ListBySucursal(ctx context.Context, sucursalID int64) ([]Venta, error) {
	var out []Venta
	if err := s.c.get(ctx, fmt.Sprintf("/ventas/sucursal/%d", sucursalID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByDateRange filters by fecha. Dates use the backend's ISO format
// (yyyy-MM-dd).
func (s *VentaService) ListByDateRange(ctx context.Context, fechaInicio, fechaFin string) ([]Venta, error) {
	query := url.Values{
		"fechaInicio": []string{fechaInicio},
		"fechaFin":    []string{fechaFin},
	}
	var out []Venta
	if err := s.c.get(ctx, "/ventas/fecha", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Void cancels a sale. The backend keeps the record and reverses the
// accounting entries.
func (s *VentaService) Void(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/ventas/%d", id))
}

// Receipt downloads the sale receipt as a PDF.
func (s *VentaService) Receipt(ctx context.Context, id int64) ([]byte, error) {
	return s.c.download(ctx, fmt.Sprintf("/ventas/%d/comprobante", id), nil)
}
