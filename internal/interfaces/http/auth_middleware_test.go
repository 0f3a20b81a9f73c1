package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contactos-api/internal/application/dto"
	apphttp "github.com/jhoicas/contactos-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/contactos-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "contactos-api-test"
)

// signedToken firma un token con el secreto de los tests.
func signedToken(t *testing.T, role, issuer string, expMinutes int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, issuer, expMinutes)
	require.NoError(t, err)
	return tok
}

// tokenForRole header Authorization válido para el rol.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	return "Bearer " + signedToken(t, role, testIssuer, 60)
}

// whoami expone lo que AuthMiddleware dejó en el contexto.
func whoami() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", apphttp.AuthMiddleware(testJWTSecret, testIssuer), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c), "role": apphttp.GetRole(c)})
	})
	return app
}

func TestAuthMiddleware_CargaUsuarioYRol(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", tokenForRole(t, "lector"))
	resp, err := whoami().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, map[string]string{"user_id": testUserID, "role": "lector"}, got)
}

func TestAuthMiddleware_RechazaCredenciales(t *testing.T) {
	cases := []struct {
		name   string
		header string
		code   string
	}{
		{name: "sin header", header: "", code: "MISSING_TOKEN"},
		{name: "esquema distinto de Bearer", header: "Basic dXNlcjpwYXNz", code: "INVALID_TOKEN"},
		{name: "token ilegible", header: "Bearer a.b.c", code: "INVALID_TOKEN"},
		{name: "token vencido", header: "Bearer " + signedToken(t, apphttp.RoleAdmin, testIssuer, -1), code: "INVALID_TOKEN"},
		{name: "otro emisor", header: "Bearer " + signedToken(t, apphttp.RoleAdmin, "inventario-api", 60), code: "INVALID_TOKEN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := whoami().Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

// El esquema se compara sin distinguir mayúsculas.
func TestAuthMiddleware_BearerEnMinusculas(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "bearer "+signedToken(t, apphttp.RoleAdmin, testIssuer, 60))
	resp, err := whoami().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
