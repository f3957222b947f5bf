package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory-backend/internal/apperr"
	"inventory-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{
		CORSOrigins:    "http://localhost:5173",
		MetricsEnabled: true,
		ReportTimezone: "UTC",
	}
	return New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func TestHealth(t *testing.T) {
	status, body := do(t, testApp(t), http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestUnknownRoute(t *testing.T) {
	status, body := do(t, testApp(t), http.MethodGet, "/api/nothing-here", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "route not found", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	app := testApp(t)
	do(t, app, http.MethodGet, "/api/health", "")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "http_requests_total")
}

// These requests are rejected before any store access.
func TestValidationErrors(t *testing.T) {
	app := testApp(t)

	cases := []struct {
		name    string
		method  string
		path    string
		body    string
		wantErr string
	}{
		{"bad product id", http.MethodGet, "/api/products/abc", "", `id: invalid id "abc"`},
		{"zero order id", http.MethodDelete, "/api/customer-orders/0", "", `id: invalid id "0"`},
		{"bad item id", http.MethodPut, "/api/supplier-purchases/1/items/x", `{}`, `itemId: invalid id "x"`},
		{"malformed body", http.MethodPost, "/api/customer-orders", `{"customer_id":`, ""},
		{
			"order without customer", http.MethodPost, "/api/customer-orders",
			`{"items":[{"product_id":1,"quantity":1,"unit_price":2.5}]}`,
			"customer_id: is required",
		},
		{
			"order item without price", http.MethodPost, "/api/customer-orders",
			`{"customer_id":1,"items":[{"product_id":1,"quantity":1}]}`,
			"items[0].unit_price: is required",
		},
		{
			"zero quantity", http.MethodPost, "/api/customer-orders",
			`{"customer_id":1,"items":[{"product_id":1,"quantity":0,"unit_price":2.5}]}`,
			"items[0].quantity: must be at least 1",
		},
		{
			"negative cost", http.MethodPost, "/api/supplier-purchases",
			`{"supplier_id":1,"items":[{"product_id":1,"quantity":3,"unit_cost":-1}]}`,
			"items[0].unit_cost: must not be negative",
		},
		{
			"negative order price", http.MethodPost, "/api/customer-orders",
			`{"customer_id":1,"items":[{"product_id":1,"quantity":1,"unit_price":-2}]}`,
			"items[0].unit_price: must not be negative",
		},
		{
			"quantity out of range", http.MethodPost, "/api/customer-orders",
			`{"customer_id":1,"items":[{"product_id":1,"quantity":3000000000,"unit_price":2}]}`,
			"items[0].quantity: must be at most 2147483647",
		},
		{
			"unknown purchase status", http.MethodPost, "/api/supplier-purchases",
			`{"supplier_id":1,"status":"lost","items":[]}`,
			`status: unknown purchase status "lost"`,
		},
		{
			"bad order date", http.MethodPost, "/api/customer-orders",
			`{"customer_id":1,"order_date":"31/12/2024"}`,
			"",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := do(t, app, tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, status)
			require.NotNil(t, body)
			if tc.wantErr != "" {
				assert.Equal(t, tc.wantErr, body["error"])
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil))),
	})
	app.Get("/missing", func(c *fiber.Ctx) error { return apperr.NotFound("product", 7) })
	app.Get("/conflict", func(c *fiber.Ctx) error { return apperr.Conflict("category already exists") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("connection reset by peer") })

	cases := []struct {
		path   string
		status int
		msg    string
	}{
		{"/missing", http.StatusNotFound, "product 7 not found"},
		{"/conflict", http.StatusConflict, "category already exists"},
		{"/boom", http.StatusInternalServerError, internalErrorMessage},
	}
	for _, tc := range cases {
		status, body := do(t, app, http.MethodGet, tc.path, "")
		assert.Equal(t, tc.status, status, tc.path)
		assert.Equal(t, tc.msg, body["error"], tc.path)
	}
}
