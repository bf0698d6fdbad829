package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/biztime-api/internal/domain"
)

func TestNotFoundError_IsErrNotFound(t *testing.T) {
	err := fmt.Errorf("get company: %w", domain.NewNotFound("empresa", "apple"))

	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.False(t, errors.Is(err, domain.ErrConflict))
	assert.Contains(t, err.Error(), "'apple'")

	var nf *domain.NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "empresa", nf.Resource)
}

func TestInvalid_WrapsErrInvalidInput(t *testing.T) {
	err := domain.Invalid("amt debe ser positivo, recibido %s", "-1")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "recibido -1")
}
