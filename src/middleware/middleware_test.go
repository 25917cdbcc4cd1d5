package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/talentnest/src/apperr"
	"github.com/theleywin/talentnest/src/lib"
	"github.com/theleywin/talentnest/src/models"
)

type authenticatorFunc func(ctx context.Context, token string) (*models.User, error)

func (f authenticatorFunc) Authenticate(ctx context.Context, token string) (*models.User, error) {
	return f(ctx, token)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func protectedApp(t *testing.T, alice models.User) *fiber.App {
	t.Helper()

	auth := authenticatorFunc(func(ctx context.Context, token string) (*models.User, error) {
		if token != "good-token" {
			return nil, apperr.Unauthorized("Unauthorized - Invalid Token")
		}
		return &alice, nil
	})

	app := fiber.New(fiber.Config{ErrorHandler: lib.ErrorHandler(discardLogger())})
	app.Get("/me", ProtectRoute(auth, "jwt-talentnest"), func(c *fiber.Ctx) error {
		return c.SendString(CurrentUser(c).Username)
	})
	return app
}

func TestProtectRoute(t *testing.T) {
	t.Parallel()

	alice := models.User{Id: primitive.NewObjectID(), Username: "alice"}

	tests := []struct {
		name   string
		header string
		cookie string
		status int
		body   string
	}{
		{name: "bearer header", header: "Bearer good-token", status: http.StatusOK, body: "alice"},
		{name: "lowercase scheme", header: "bearer good-token", status: http.StatusOK, body: "alice"},
		{name: "cookie", cookie: "good-token", status: http.StatusOK, body: "alice"},
		{name: "header wins over cookie", header: "Bearer good-token", cookie: "stale", status: http.StatusOK, body: "alice"},
		{name: "no token", status: http.StatusUnauthorized, body: "No Token Provided"},
		{name: "non-bearer scheme", header: "Basic Zm9vOmJhcg==", status: http.StatusUnauthorized, body: "No Token Provided"},
		{name: "invalid token", header: "Bearer forged", status: http.StatusUnauthorized, body: "Invalid Token"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := protectedApp(t, alice)
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "jwt-talentnest", Value: tt.cookie})
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Contains(t, string(body), tt.body)
		})
	}
}

func TestCurrentUser_Missing(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.True(t, CurrentUser(c).Id.IsZero())
		return c.SendStatus(http.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	app := fiber.New(fiber.Config{ErrorHandler: lib.ErrorHandler(discardLogger())})
	app.Use(RequestLogger(discardLogger()))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	app.Get("/missing", func(c *fiber.Ctx) error { return apperr.NotFound("nothing here") })

	t.Run("generates an id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
		require.NoError(t, err)

		_, err = uuid.Parse(resp.Header.Get(HeaderRequestID))
		assert.NoError(t, err)
	})

	t.Run("reuses a valid incoming id", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(HeaderRequestID, id)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, id, resp.Header.Get(HeaderRequestID))
	})

	t.Run("replaces a malformed incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(HeaderRequestID, "<script>")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.NotEqual(t, "<script>", resp.Header.Get(HeaderRequestID))
	})

	t.Run("handler errors keep their status", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
