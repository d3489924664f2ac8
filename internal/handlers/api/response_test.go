package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspovault/internal/store"
	"inspovault/internal/validation"
	"inspovault/internal/vault"
)

func TestServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"item not found", store.ErrItemNotFound, http.StatusNotFound},
		{"wrapped collection not found", fmt.Errorf("share: %w", store.ErrCollectionNotFound), http.StatusNotFound},
		{"shared item not found", store.ErrSharedItemNotFound, http.StatusNotFound},
		{"duplicate", store.ErrDuplicateID, http.StatusConflict},
		{"rejection", &vault.Rejection{NotificationID: "n1", Err: &validation.Error{Field: "name", Message: validation.MsgCollectionName}}, http.StatusUnprocessableEntity},
		{"invalid input", &validation.Error{Field: "permission", Message: `unknown permission "owner"`}, http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c fiber.Ctx) error {
				return serviceError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.code, resp.StatusCode)
		})
	}
}

func TestServiceError_RejectionBody(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return serviceError(c, &vault.Rejection{
			NotificationID: "n1",
			Err:            &validation.Error{Field: "calendar", Message: validation.MsgInspoRequired},
		})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "calendar", body["field"])
	assert.Equal(t, "n1", body["notification_id"])
	assert.Equal(t, validation.MsgInspoRequired, body["error"])
}

func TestNotificationRequestVariant(t *testing.T) {
	v, err := notificationRequest{}.variant()
	require.NoError(t, err)
	assert.Equal(t, "default", string(v))

	v, err = notificationRequest{Variant: "destructive"}.variant()
	require.NoError(t, err)
	assert.Equal(t, "destructive", string(v))

	_, err = notificationRequest{Variant: "loud"}.variant()
	assert.Error(t, err)
}
