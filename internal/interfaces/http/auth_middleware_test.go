package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/mtechuganda/backoffice-api/internal/interfaces/http"
	pkgjwt "github.com/mtechuganda/backoffice-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCSRF      = "csrf-value-issued-at-login"
	testIssuer    = "mtech-backoffice-test"
	testExpMin    = 60
)

// buildTestApp wires AuthMiddleware + RequireRole in front of dummy read and
// write handlers. The write handler flips a flag so tests can assert that a
// rejected request never reached it.
func buildTestApp(written *bool, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "role": apphttp.GetRole(c)})
		},
	)
	app.Post("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			if written != nil {
				*written = true
			}
			return c.JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testCSRF, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doGet(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func doPost(t *testing.T, app *fiber.App, authHeader, csrf string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/protected", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if csrf != "" {
		req.Header.Set(apphttp.CSRFHeader, csrf)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAllowedOnAdminRoute(t *testing.T) {
	app := buildTestApp(nil, "admin")
	resp := doGet(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["role"])
}

func TestRequireRole_ManagerAllowedOnMultiRoleRoute(t *testing.T) {
	app := buildTestApp(nil, "admin", "manager")
	resp := doGet(t, app, tokenForRole(t, "manager"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_CashierBlockedOnAdminRoute(t *testing.T) {
	app := buildTestApp(nil, "admin")
	resp := doGet(t, app, tokenForRole(t, "cashier"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_WriteBlockedBeforeHandlerRuns(t *testing.T) {
	written := false
	app := buildTestApp(&written, "admin")

	resp := doPost(t, app, tokenForRole(t, "cashier"), testCSRF)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.False(t, written, "a forbidden request must never reach the write handler")
}

func TestAuthMiddleware_NoAuthHeaderReturns401(t *testing.T) {
	app := buildTestApp(nil, "admin")
	resp := doGet(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedTokenReturns401(t *testing.T) {
	app := buildTestApp(nil, "admin")
	resp := doGet(t, app, "Bearer not.a.token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// CSRF echo on mutating requests
// ──────────────────────────────────────────────────────────────────────────────

func TestCSRF_MissingHeaderRejectsWrite(t *testing.T) {
	written := false
	app := buildTestApp(&written, "admin")

	resp := doPost(t, app, tokenForRole(t, "admin"), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.False(t, written, "a write without the CSRF header must not execute")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "CSRF_MISMATCH")
}

func TestCSRF_WrongValueRejectsWrite(t *testing.T) {
	written := false
	app := buildTestApp(&written, "admin")

	resp := doPost(t, app, tokenForRole(t, "admin"), "some-other-value")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.False(t, written)
}

func TestCSRF_CorrectValueAllowsWrite(t *testing.T) {
	written := false
	app := buildTestApp(&written, "admin")

	resp := doPost(t, app, tokenForRole(t, "admin"), testCSRF)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, written)
}

func TestCSRF_ReadsNeverRequireHeader(t *testing.T) {
	app := buildTestApp(nil, "admin")
	resp := doGet(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware — claim extraction
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractsClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "manager"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "manager", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// JWT pkg — generate/parse round trip
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "cashier", testCSRF, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "cashier", claims.Role)
	assert.Equal(t, testCSRF, claims.CSRF)
}

func TestJWT_ExpiredTokenReturnsError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testCSRF, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err)
}

func TestJWT_WrongSecretReturnsError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testCSRF, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("a-completely-different-secret", tok)
	assert.Error(t, err)
}
