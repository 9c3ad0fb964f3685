package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{
			name:           "Deve mapear usuário bloqueado para 403",
			code:           ErrUserLocked,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Deve mapear requisição inválida para 400",
			code:           ErrInvalidRequest,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Deve mapear token inválido para 401",
			code:           ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Deve usar 500 para código desconhecido",
			code:           "XYZ_999",
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem de teste", nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}
}
