package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newfizzbuzz_backend/internals/configs"
)

// Handler echo: mengembalikan user_id dari Locals (kosong bila tak ter-set).
func newOptionalApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", AuthOptional(), func(c *fiber.Ctx) error {
		id, _ := c.Locals("user_id").(string)
		return c.SendString(id)
	})
	return app
}

func signOptionalToken(t *testing.T, method jwt.SigningMethod, key interface{}, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, jwt.MapClaims{
		"id":  "7",
		"exp": exp.Unix(),
	}).SignedString(key)
	require.NoError(t, err)
	return token
}

func whoami(t *testing.T, app *fiber.App, bearer string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestAuthOptional(t *testing.T) {
	old := configs.JWTSecret
	configs.JWTSecret = "optional-secret"
	t.Cleanup(func() { configs.JWTSecret = old })

	app := newOptionalApp()
	future := time.Now().Add(time.Hour)

	t.Run("no token passes through without identity", func(t *testing.T) {
		assert.Empty(t, whoami(t, app, ""))
	})

	t.Run("valid token populates identity", func(t *testing.T) {
		token := signOptionalToken(t, jwt.SigningMethodHS256, []byte("optional-secret"), future)
		assert.Equal(t, "7", whoami(t, app, token))
	})

	t.Run("wrong secret is ignored", func(t *testing.T) {
		token := signOptionalToken(t, jwt.SigningMethodHS256, []byte("other-secret"), future)
		assert.Empty(t, whoami(t, app, token))
	})

	t.Run("non-HMAC signing method is ignored", func(t *testing.T) {
		token := signOptionalToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, future)
		assert.Empty(t, whoami(t, app, token))
	})

	t.Run("expired token is ignored", func(t *testing.T) {
		token := signOptionalToken(t, jwt.SigningMethodHS256, []byte("optional-secret"), time.Now().Add(-time.Hour))
		assert.Empty(t, whoami(t, app, token))
	})
}
