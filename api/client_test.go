package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barberiapp/admin-cli/api"
)

// envelopeHandler serves a success envelope with the given payload.
func envelopeHandler(t *testing.T, payload any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": json.RawMessage(raw)})
	}
}

func TestClientDecodesEnvelopeData(t *testing.T) {
	server := httptest.NewServer(envelopeHandler(t, api.Usuario{ID: 4, Email: "ana@barberia.cl", Nombre: "Ana"}))
	defer server.Close()

	client := api.New(server.URL)
	u, err := client.Usuarios().Get(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, int64(4), u.ID)
	require.Equal(t, "Ana", u.Nombre)
}

func TestClientSurfacesServerMessageOnFailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "El email ya está registrado"})
	}))
	defer server.Close()

	client := api.New(server.URL)
	_, err := client.Auth().Register(context.Background(), api.RegisterRequest{Email: "ana@barberia.cl"})
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.Status)
	require.Equal(t, "El email ya está registrado", apiErr.Message)
	require.True(t, api.IsStatus(err, http.StatusConflict))
}

func TestClientRejectsUnsuccessfulEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Sucursal no encontrada"})
	}))
	defer server.Close()

	client := api.New(server.URL)
	_, err := client.Sucursales().Get(context.Background(), 99)
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Sucursal no encontrada", apiErr.Message)
	require.Equal(t, http.StatusOK, apiErr.Status)
}

func TestClientListSendsPagination(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"content":       []any{},
				"totalElements": 0,
				"totalPages":    0,
				"number":        2,
				"size":          25,
			},
		})
	}))
	defer server.Close()

	client := api.New(server.URL)
	page, err := client.Usuarios().List(context.Background(), 2, 25)
	require.NoError(t, err)
	require.Equal(t, "/usuarios", gotPath)
	require.Equal(t, "page=2&size=25", gotQuery)
	require.Equal(t, 2, page.Number)
	require.Empty(t, page.Content)
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	client := api.New("http://localhost:8080/api/")
	require.Equal(t, "http://localhost:8080/api", client.BaseURL())
}

func TestRolCloneSendsNewName(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"id": 12, "nombre": "Cajero Turno Noche", "codigo": "CAJERO_NOCHE"},
		})
	}))
	defer server.Close()

	client := api.New(server.URL)
	r, err := client.Roles().Clone(context.Background(), 3, "Cajero Turno Noche")
	require.NoError(t, err)
	require.Equal(t, "/roles/3/clonar", gotPath)
	require.Equal(t, "Cajero Turno Noche", gotBody["nuevoNombre"])
	require.Equal(t, int64(12), r.ID)
}

func TestPermisosListAllAcceptsBothShapes(t *testing.T) {
	bare := httptest.NewServer(envelopeHandler(t, []api.Permiso{{ID: 1, Codigo: "VENTA_VER"}}))
	defer bare.Close()

	permisos, err := api.New(bare.URL).Permisos().ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, permisos, 1)
	require.Equal(t, "VENTA_VER", permisos[0].Codigo)

	paged := httptest.NewServer(envelopeHandler(t, map[string]any{
		"content": []api.Permiso{{ID: 2, Codigo: "VENTA_CREAR"}},
	}))
	defer paged.Close()

	permisos, err = api.New(paged.URL).Permisos().ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, permisos, 1)
	require.Equal(t, "VENTA_CREAR", permisos[0].Codigo)
}

func TestVentaReceiptDownloadsRawBytes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ventas/8/comprobante", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer server.Close()

	data, err := api.New(server.URL).Ventas().Receipt(context.Background(), 8)
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF-1.4 fake"), data)
}

func TestUpdateStockQuery(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"id": 5, "nombre": "Cera", "stockActual": 12},
		})
	}))
	defer server.Close()

	p, err := api.New(server.URL).Productos().UpdateStock(context.Background(), 5, 3, api.StockIncremento)
	require.NoError(t, err)
	require.Equal(t, "cantidad=3&tipo=INCREMENTO", gotQuery)
	require.Equal(t, 12, p.StockActual)
}
