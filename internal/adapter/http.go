package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-shop-admin/internal/config"
	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"

	pathLogin    = "/api/auth/login"
	pathProducts = "/api/products"
	pathProduct  = "/api/products/{id}"
	pathOrders   = "/api/orders"
	pathOrder    = "/api/orders/{id}"
)

type httpServerAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and applies adapterCfg.RequestTimeout when it is
// positive; otherwise the transport's own failure signalling is relied upon.
//
// Every outgoing request gets a fresh X-Request-ID header.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().SetBaseURL(baseURL)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	h := &httpServerAdapter{client: client, logger: log}
	client.OnBeforeRequest(h.withRequestID)
	client.OnAfterResponse(h.logResponse)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) withRequestID(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(requestIDHeader) == "" {
		r.SetHeader(requestIDHeader, uuid.NewString())
	}
	return nil
}

func (h *httpServerAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(requestIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("api call")
	return nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and returns the "token" field of the response.
// Any non-2xx status is returned as [*HTTPError].
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(pathLogin)
	if err != nil {
		return "", fmt.Errorf("%w: login: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp, "Login failed"); err != nil {
		return "", err
	}

	var lr models.LoginResponse
	if err = decodeJSON(resp, &lr); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}

	return strings.TrimSpace(lr.Token), nil
}

// ListProducts implements [ServerAdapter]. Empty filter fields are omitted
// from the query string entirely.
func (h *httpServerAdapter) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	req := h.client.R().SetContext(ctx)
	if search := strings.TrimSpace(filter.Search); search != "" {
		req.SetQueryParam("search", search)
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		req.SetQueryParam("category", category)
	}

	resp, err := req.Get(pathProducts)
	if err != nil {
		return nil, fmt.Errorf("%w: list products: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp, "Failed to load products"); err != nil {
		return nil, err
	}

	var products []models.Product
	if err = decodeJSON(resp, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// GetProduct implements [ServerAdapter].
func (h *httpServerAdapter) GetProduct(ctx context.Context, id string) (models.Product, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get(pathProduct)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: get product: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp, "Failed to load product"); err != nil {
		return models.Product{}, err
	}

	var product models.Product
	if err = decodeJSON(resp, &product); err != nil {
		return models.Product{}, fmt.Errorf("decode product: %w", err)
	}
	return product, nil
}

// CreateProduct implements [ServerAdapter].
func (h *httpServerAdapter) CreateProduct(ctx context.Context, authHeader string, req models.NewProductRequest) (models.Product, error) {
	resp, err := h.authedRequest(ctx, authHeader).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(pathProducts)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: create product: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp, "Create failed"); err != nil {
		return models.Product{}, err
	}

	var product models.Product
	if err = decodeJSON(resp, &product); err != nil {
		return models.Product{}, fmt.Errorf("decode created product: %w", err)
	}
	return product, nil
}

// UpdateProduct implements [ServerAdapter].
func (h *httpServerAdapter) UpdateProduct(ctx context.Context, authHeader string, id string, patch models.ProductPatch) (models.Product, error) {
	resp, err := h.authedRequest(ctx, authHeader).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(patch).
		Put(pathProduct)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: update product: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp, "Update failed"); err != nil {
		return models.Product{}, err
	}

	var product models.Product
	if err = decodeJSON(resp, &product); err != nil {
		return models.Product{}, fmt.Errorf("decode updated product: %w", err)
	}
	return product, nil
}

// DeleteProduct implements [ServerAdapter]. An empty success body yields a
// zero [models.Ack].
func (h *httpServerAdapter) DeleteProduct(ctx context.Context, authHeader string, id string) (models.Ack, error) {
	resp, err := h.authedRequest(ctx, authHeader).
		SetPathParam("id", id).
		Delete(pathProduct)
	if err != nil {
		return models.Ack{}, fmt.Errorf("%w: delete product: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp, "Delete failed"); err != nil {
		return models.Ack{}, err
	}

	var ack models.Ack
	if err = decodeJSON(resp, &ack); err != nil {
		return models.Ack{}, fmt.Errorf("decode delete ack: %w", err)
	}
	return ack, nil
}

// ListOrders implements [ServerAdapter].
func (h *httpServerAdapter) ListOrders(ctx context.Context, authHeader string) ([]models.Order, error) {
	resp, err := h.authedRequest(ctx, authHeader).Get(pathOrders)
	if err != nil {
		return nil, fmt.Errorf("%w: list orders: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp, "Failed to fetch orders"); err != nil {
		return nil, err
	}

	var orders []models.Order
	if err = decodeJSON(resp, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus implements [ServerAdapter].
func (h *httpServerAdapter) UpdateOrderStatus(ctx context.Context, authHeader string, id string, status models.OrderStatus) (models.Order, error) {
	resp, err := h.authedRequest(ctx, authHeader).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(models.StatusUpdateRequest{Status: status}).
		Put(pathOrder)
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: update order: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp, "Order update failed"); err != nil {
		return models.Order{}, err
	}

	var order models.Order
	if err = decodeJSON(resp, &order); err != nil {
		return models.Order{}, fmt.Errorf("decode updated order: %w", err)
	}
	return order, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, authHeader string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if authHeader != "" {
		req.SetHeader("Authorization", authHeader)
	}
	return req
}

// decodeJSON unmarshals the response body regardless of its Content-Type.
// An empty body leaves v untouched. Failures match [ErrBadResponse].
func decodeJSON(resp *resty.Response, v any) error {
	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	return nil
}
