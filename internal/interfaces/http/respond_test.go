package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtechuganda/backoffice-api/internal/application/dto"
	"github.com/mtechuganda/backoffice-api/internal/domain"
)

// respondWith runs respondError through a real Fiber handler and returns the
// status plus decoded error body.
func respondWith(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil), -1)
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestRespondError_UnknownErrorHidesInternalDetails(t *testing.T) {
	driverErr := errors.New(`ERROR: duplicate key value violates unique constraint "products_code_key" (SQLSTATE 23505)`)
	wrapped := fmt.Errorf("insert product: %w", driverErr)

	status, body := respondWith(t, wrapped)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "internal server error", body.Message)
	assert.NotContains(t, body.Message, "SQLSTATE")
	assert.NotContains(t, body.Message, "insert product")
}

func TestRespondError_WrappedSentinelsKeepConstantMessages(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"invalid input", fmt.Errorf("create product: %w", domain.ErrInvalidInput), http.StatusBadRequest, "VALIDATION", "invalid input"},
		{"conflict", fmt.Errorf("set paid: %w", domain.ErrConflict), http.StatusConflict, "CONFLICT", "request conflicts with current state"},
		{"insufficient stock", fmt.Errorf("deduct line: %w", domain.ErrInsufficientStock), http.StatusConflict, "INSUFFICIENT_STOCK", "not enough stock on hand"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := respondWith(t, tc.err)

			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.message, body.Message)
			assert.NotContains(t, body.Message, ":")
		})
	}
}

func TestRespondError_NotFoundMapsTo404(t *testing.T) {
	status, body := respondWith(t, domain.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body.Code)
}
