package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mirrorkeeper/server/internal/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRouter(t *testing.T) {
	// Тестируем только роутинг, поэтому сервис не нужен
	attestationHandler := handlers.NewAttestationHandler(nil)

	r := setupRouter(attestationHandler)
	require.NotNil(t, r)

	t.Run("Ping отвечает pong", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "pong\n", rr.Body.String())
	})

	t.Run("GET на /backups не разрешен", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/backups", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})

	t.Run("Неизвестный маршрут - 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
