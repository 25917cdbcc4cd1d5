package lib

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/talentnest/src/apperr"
	"github.com/theleywin/talentnest/src/config"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	userID := primitive.NewObjectID()

	token, err := issuer.GenerateJWT(userID)
	require.NoError(t, err)

	got, err := issuer.VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenIssuer_RejectsForeignSecret(t *testing.T) {
	token, err := NewTokenIssuer("one", time.Hour).GenerateJWT(primitive.NewObjectID())
	require.NoError(t, err)

	_, err = NewTokenIssuer("two", time.Hour).VerifyJWT(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	token, err := NewTokenIssuer("secret", -time.Minute).GenerateJWT(primitive.NewObjectID())
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", time.Hour).VerifyJWT(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))})
	app.Get("/app", func(c *fiber.Ctx) error {
		return apperr.New(apperr.CodeDuplicatePending, "A connection request already exists")
	})
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "teapot")
	})
	app.Get("/internal", func(c *fiber.Ctx) error {
		return errors.New("mongo: connection refused on 10.0.0.3")
	})

	tests := []struct {
		path        string
		wantStatus  int
		wantMessage string
		wantCode    string
	}{
		{"/app", fiber.StatusBadRequest, "A connection request already exists", "DUPLICATE_PENDING"},
		{"/fiber", fiber.StatusTeapot, "teapot", ""},
		{"/internal", fiber.StatusInternalServerError, "Server error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantMessage, body["message"])
			assert.Equal(t, tt.wantCode, body["code"])
		})
	}
}

func TestNewLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(config.LogConfig{Level: "debug", Format: "json"}, &buf)
	log.Debug("hello", slog.String("k", "v"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "v", line["k"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel(" warn "))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
}
