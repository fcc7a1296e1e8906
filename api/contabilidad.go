package api

import (
	"context"
	"net/url"
	"strconv"
)

type RegistroContable struct {
	ID             int64   `json:"id"`
	FechaRegistro  string  `json:"fechaRegistro"`
	TipoRegistro   string  `json:"tipoRegistro"`
	Categoria      string  `json:"categoria"`
	Monto          float64 `json:"monto"`
	Descripcion    string  `json:"descripcion,omitempty"`
	SucursalID     int64   `json:"sucursalId,omitempty"`
	SucursalNombre string  `json:"sucursalNombre,omitempty"`
	VentaID        int64   `json:"ventaId,omitempty"`
	CompraID       int64   `json:"compraId,omitempty"`
	Referencia     string  `json:"referencia,omitempty"`
}

type ResumenContable struct {
	TotalIngresos float64 `json:"totalIngresos"`
	TotalEgresos  float64 `json:"totalEgresos"`
	Balance       float64 `json:"balance"`
}

// ContabilidadFilter narrows accounting queries. Zero fields are omitted.
type ContabilidadFilter struct {
	SucursalID  int64
	FechaInicio string
	FechaFin    string
}

func (f ContabilidadFilter) query() url.Values {
	query := url.Values{}
	if f.SucursalID != 0 {
		query.Set("sucursalId", strconv.FormatInt(f.SucursalID, 10))
	}
	if f.FechaInicio != "" {
		query.Set("fechaInicio", f.FechaInicio)
	}
	if f.FechaFin != "" {
		query.Set("fechaFin", f.FechaFin)
	}
	return query
}

type ContabilidadService struct {
	c *Client
}

func (c *Client) Contabilidad() *ContabilidadService {
	return &ContabilidadService{c: c}
}

func (s *ContabilidadService) ListRegistros(ctx context.Context, filter ContabilidadFilter) ([]RegistroContable, error) {
	var out []RegistroContable
	if err := s.c.get(ctx, "/contabilidad/registros", filter.query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ContabilidadService) Resumen(ctx context.Context, filter ContabilidadFilter) (*ResumenContable, error) {
	var out ResumenContable
	if err := s.c.get(ctx, "/contabilidad/resumen", filter.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ContabilidadService) ExportPDF(ctx context.Context, filter ContabilidadFilter) ([]byte, error) {
	return s.c.download(ctx, "/contabilidad/exportar/pdf", filter.query())
}

func (s *ContabilidadService) ExportExcel(ctx context.Context, filter ContabilidadFilter) ([]byte, error) {
	return s.c.download(ctx, "/contabilidad/exportar/excel", filter.query())
}
