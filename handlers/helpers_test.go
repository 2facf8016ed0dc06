package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/biosecret/go-tasks/database"
	"github.com/biosecret/go-tasks/middleware"
	"github.com/biosecret/go-tasks/tasks"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 11, 7, 8, 30, 0, 0, time.UTC)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	previous := taskService
	taskService = tasks.NewService(database.GetTasks).WithClock(func() time.Time { return fixedNow })
	t.Cleanup(func() { taskService = previous })

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	app.Post("/login", LoginHandler)
	app.Get("/health", HandleHealthCheck)

	group := app.Group("/tasks", middleware.MockAuth)
	group.Get("", HandleAllTasks)
	group.Post("", HandleCreateTask)
	group.Get("/:id", HandleGetOneTask)
	group.Put("/:id", HandleUpdateTask)
	group.Delete("/:id", HandleDeleteTask)
	return app
}

func bearer() string {
	return "Bearer " + strings.Repeat("t", 60)
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(v)
	default:
		payload, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", bearer())
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
