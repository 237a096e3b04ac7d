package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		err := NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
		assert.Equal(t, "ESTIMATE_NOT_FOUND: Estimate not found", err.Error())
		assert.Equal(t, HTTPError{Code: "ESTIMATE_NOT_FOUND", Message: "Estimate not found"}, err.ToHTTPError())
		assert.Equal(t, http.StatusNotFound, err.Status())
	})

	t.Run("wrapped cause is unwrappable but not rendered", func(t *testing.T) {
		cause := errors.New("disk full")
		err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, 0)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, http.StatusInternalServerError, err.Status())
		assert.NotContains(t, err.ToHTTPError().Message, "disk")
	})
}
