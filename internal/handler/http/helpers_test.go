package http_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	handler "github.com/mikiasgoitom/MidnightMuse/internal/handler/http"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{entity.ErrInvalidInput, http.StatusBadRequest},
		{entity.ErrInvalidToken, http.StatusBadRequest},
		{entity.ErrUnauthenticated, http.StatusUnauthorized},
		{entity.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("post x: %w", entity.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("post x: %w", entity.ErrNotFound), http.StatusNotFound},
		{entity.ErrEmailTaken, http.StatusConflict},
		{fmt.Errorf("gemini: %w", entity.ErrAIUnavailable), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, handler.StatusForError(tc.err), tc.err.Error())
	}
}
