package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrInvalid("x"), http.StatusBadRequest},
		{ErrInvalidID("x"), http.StatusBadRequest},
		{ErrNotFound("x"), http.StatusNotFound},
		{ErrConflict("x"), http.StatusConflict},
		{ErrUnauthenticated("x"), http.StatusUnauthorized},
		{ErrForbidden("x"), http.StatusForbidden},
		{ErrInternal("x"), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, ToHTTPStatus(tc.err))
	}
}

func TestToHTTPStatus_Wrapped(t *testing.T) {
	err := fmt.Errorf("contexto: %w", ErrNotFound("Cliente no encontrado"))
	require.Equal(t, http.StatusNotFound, ToHTTPStatus(err))
}

func TestBodyFrom(t *testing.T) {
	b := BodyFrom(ErrConflict("El auto no está disponible"))
	require.Equal(t, CodeConflict, b.Error.Code)
	require.Equal(t, "El auto no está disponible", b.Error.Message)

	b = BodyFrom(errors.New("se cayó la base"))
	require.Equal(t, CodeInternal, b.Error.Code)
}
