package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omoi-os/omoios/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation", services.NewValidationError("title", "required"), http.StatusBadRequest},
		{"not found", fmt.Errorf("ticket x: %w", services.ErrNotFound), http.StatusNotFound},
		{"not cancellable", fmt.Errorf("task y: %w", services.ErrNotCancellable), http.StatusConflict},
		{"dependency cycle", fmt.Errorf("submit: %w", services.ErrDependencyCycle), http.StatusConflict},
		{"concurrent modification", services.ErrConcurrentModification, http.StatusConflict},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.wantCode, he.Code)
		})
	}
}
