package httphandler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httphandler "github.com/lllypuk/talentnet/internal/handler/http"
)

func TestProfileHandler_RegisterAndGet(t *testing.T) {
	// Arrange
	api := newTestAPI(t)

	// Act
	rec := api.do(t, http.MethodPost, "/api/v1/users", httphandler.RegisterProfileRequest{
		ID:       7,
		Username: "alice",
		Email:    "alice@example.com",
		City:     "Kazan",
	})

	// Assert
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[httphandler.ProfileResponse](t, rec)
	assert.Equal(t, int64(7), created.ID)
	assert.True(t, created.Active)

	got := decode[httphandler.ProfileResponse](t, api.do(t, http.MethodGet, "/api/v1/users/7", nil))
	assert.Equal(t, created, got)
}

func TestProfileHandler_RegisterValidation(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name  string
		body  any
		field string
	}{
		{"zero id", httphandler.RegisterProfileRequest{Username: "bob"}, "id"},
		{"blank username", httphandler.RegisterProfileRequest{ID: 1, Username: "   "}, "username"},
		{"bad email", httphandler.RegisterProfileRequest{ID: 1, Username: "bob", Email: "nope"}, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(t, http.MethodPost, "/api/v1/users", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			apiErr := decodeError(t, rec)
			assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
			assert.Equal(t, tt.field, apiErr.Field)
		})
	}
}

func TestProfileHandler_RegisterDuplicate(t *testing.T) {
	// Arrange
	api := newTestAPI(t, profile(t, 1, "alice", "Kazan"))

	// Act
	rec := api.do(t, http.MethodPost, "/api/v1/users", httphandler.RegisterProfileRequest{ID: 1, Username: "alice"})

	// Assert
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestProfileHandler_GetErrors(t *testing.T) {
	api := newTestAPI(t)

	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodGet, "/api/v1/users/abc", nil).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodGet, "/api/v1/users/0", nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodGet, "/api/v1/users/42", nil).Code)
}

func TestProfileHandler_Deactivate(t *testing.T) {
	// Arrange
	api := newTestAPI(t, profile(t, 3, "carol", "Omsk"))

	// Act
	rec := api.do(t, http.MethodPost, "/api/v1/users/3/deactivate", nil)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[httphandler.ProfileResponse](t, rec).Active)
}
