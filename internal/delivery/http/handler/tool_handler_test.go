package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cadastral-mcp/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubDispatcher struct {
	name string
	args string
}

func (d *stubDispatcher) Tools() []dto.Tool {
	return []dto.Tool{
		{Name: "get_cadastral_coordinates"},
		{Name: "batch_get_cadastral_coordinates"},
		{Name: "check_ip_location"},
	}
}

func (d *stubDispatcher) Call(_ context.Context, name string, args json.RawMessage) string {
	d.name = name
	d.args = string(args)
	return "{\n  \"error\": \"cadastral_number is required\"\n}"
}

func newTestApp(d ToolDispatcher) *fiber.App {
	h := NewToolHandler(d, zap.NewNop())
	app := fiber.New()
	app.Get("/tools", h.ListTools)
	app.Post("/tools/:name", h.CallTool)
	return app
}

func TestToolHandler_ListTools(t *testing.T) {
	app := newTestApp(&stubDispatcher{})

	resp, err := app.Test(httptest.NewRequest("GET", "/tools", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []dto.Tool `json:"data"`
		Meta struct {
			Total    int     `json:"total"`
			TimeMSec float64 `json:"time_ms"`
		} `json:"meta"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Data, 3)
	assert.Equal(t, 3, body.Meta.Total)
	assert.GreaterOrEqual(t, body.Meta.TimeMSec, 0.0)
}

func TestToolHandler_CallTool(t *testing.T) {
	t.Run("payload returned as is", func(t *testing.T) {
		d := &stubDispatcher{}
		app := newTestApp(d)

		req := httptest.NewRequest("POST", "/tools/get_cadastral_coordinates", strings.NewReader(`{"cadastral_number":""}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"error":"cadastral_number is required"}`, string(body))
		assert.Equal(t, "get_cadastral_coordinates", d.name)
		assert.JSONEq(t, `{"cadastral_number":""}`, d.args)
	})

	t.Run("empty body", func(t *testing.T) {
		d := &stubDispatcher{}
		app := newTestApp(d)

		resp, err := app.Test(httptest.NewRequest("POST", "/tools/check_ip_location", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "check_ip_location", d.name)
		assert.Empty(t, d.args)
	})

	t.Run("invalid json body", func(t *testing.T) {
		d := &stubDispatcher{}
		app := newTestApp(d)

		resp, err := app.Test(httptest.NewRequest("POST", "/tools/get_cadastral_coordinates", strings.NewReader(`{oops`)))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, d.name)
	})
}
