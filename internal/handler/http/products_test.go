package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-shop-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func createTestProduct(t *testing.T, router http.Handler, token string, req models.NewProductRequest) models.Product {
	t.Helper()

	rec := doRequest(t, router, http.MethodPost, "/api/products", req, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var p models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	return p
}

func TestProducts_MutationsRequireToken(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   string
	}{
		{"create without header", http.MethodPost, "/api/products", "", "Missing Authorization header"},
		{"update with bad token", http.MethodPut, "/api/products/x", "forged", "Invalid or expired token"},
		{"delete with bad token", http.MethodDelete, "/api/products/x", "forged", "Invalid or expired token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, tt.method, tt.path, models.NewProductRequest{Name: "x", Price: 1}, tt.token)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.want, decodeErrorBody(t, rec).Error)
		})
	}
}

func TestProducts_CreateGetList(t *testing.T) {
	router, _ := newTestRouter(t)
	token := loginToken(t, router)

	apples := createTestProduct(t, router, token, models.NewProductRequest{
		Name: "Fresh Apples", Category: "fruits", Price: 120, MRP: 150, Unit: "1 kg", InStock: true,
	})
	createTestProduct(t, router, token, models.NewProductRequest{Name: "Tomatoes", Category: "vegetables", Price: 30})

	rec := doRequest(t, router, http.MethodGet, "/api/products/"+apples.ID, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, apples, got)

	rec = doRequest(t, router, http.MethodGet, "/api/products?search=APPLE&category=fruits", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Equal(t, []models.Product{apples}, listed)
}

func TestProducts_ListEmptyIsArray(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/products", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestProducts_GetUnknown(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/products/missing", nil, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", decodeErrorBody(t, rec).Error)
}

func TestProducts_CreateValidationErrors(t *testing.T) {
	router, _ := newTestRouter(t)
	token := loginToken(t, router)

	rec := doRequest(t, router, http.MethodPost, "/api/products", models.NewProductRequest{Price: 10, MRP: 5}, token)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Empty(t, body.Error)
	assert.Equal(t, []string{"name is required", "mrp must not be lower than price"}, body.Errors)
}

func TestProducts_UpdateAndDelete(t *testing.T) {
	router, _ := newTestRouter(t)
	token := loginToken(t, router)
	p := createTestProduct(t, router, token, models.NewProductRequest{Name: "Milk", Price: 60, MRP: 64})

	rec := doRequest(t, router, http.MethodPut, "/api/products/"+p.ID, models.ProductPatch{Price: ptr(62.0)}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 62.0, updated.Price)
	assert.Equal(t, "Milk", updated.Name)

	rec = doRequest(t, router, http.MethodDelete, "/api/products/"+p.ID, nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	var ack models.Ack
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.Equal(t, models.Ack{Message: "Product deleted", ID: p.ID}, ack)

	rec = doRequest(t, router, http.MethodDelete, "/api/products/"+p.ID, nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProducts_UpdateRejectsEmptyPatch(t *testing.T) {
	router, _ := newTestRouter(t)
	token := loginToken(t, router)
	p := createTestProduct(t, router, token, models.NewProductRequest{Name: "Milk", Price: 60})

	rec := doRequest(t, router, http.MethodPut, "/api/products/"+p.ID, models.ProductPatch{}, token)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, []string{"no fields to update"}, decodeErrorBody(t, rec).Errors)
}
