package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", MockAuth, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestMockAuth_Rejects(t *testing.T) {
	app := newAuthApp()

	headers := []string{
		"",
		"Bearer shorttoken",
		"Bearer " + strings.Repeat("a", 59),
		"Bearer " + strings.Repeat("a", 61),
		"Bearer " + strings.Repeat("a", 53),
	}

	for _, header := range headers {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Unauthorized", body["message"])
	}
}

func TestMockAuth_Accepts(t *testing.T) {
	app := newAuthApp()

	for _, header := range []string{
		"Bearer " + strings.Repeat("x", 60),
		strings.Repeat("y", 60),
	} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}
