package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, fallbackMessage},
		{"message", &APIError{Status: 400, Message: "bad"}, "bad"},
		{"errors joined", &APIError{Status: 400, Errors: []string{"x", "y"}}, "x, y"},
		{"status only", &APIError{Status: 500}, "request failed with status code 500"},
		{"wrapped", fmt.Errorf("load: %w", &APIError{Status: 404, Message: "missing"}), "missing"},
		{"plain", errors.New("timeout"), "timeout"},
		{"empty", errors.New(""), fallbackMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(fmt.Errorf("x: %w", &APIError{Status: 401})))
	assert.False(t, IsUnauthorized(&APIError{Status: 403}))
	assert.False(t, IsUnauthorized(errors.New("401")))
}
