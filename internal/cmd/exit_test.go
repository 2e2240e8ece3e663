package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	ferrors "github.com/appforge/cli/internal/errors"
)

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "General Error", ExitCodeName(ExitGeneralError))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Cancelled", ExitCodeName(ExitCancelled))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}

func TestExitCodeFromError(t *testing.T) {
	t.Run("nil is success", func(t *testing.T) {
		assert.Equal(t, ExitSuccess, ExitCodeFromError(nil))
	})

	t.Run("explicit exit error wins", func(t *testing.T) {
		err := NewExitError(errors.New("boom"), ExitValidationError)
		assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
	})

	t.Run("validation sentinel", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", ferrors.ErrValidation)
		assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
	})

	t.Run("cancellation sentinel", func(t *testing.T) {
		err := ferrors.Wrap(ferrors.ErrCancelled, "prompt aborted")
		assert.Equal(t, ExitCancelled, ExitCodeFromError(err))
	})

	t.Run("anything else is general", func(t *testing.T) {
		assert.Equal(t, ExitGeneralError, ExitCodeFromError(errors.New("boom")))
	})
}

func TestExitErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewExitError(inner, ExitGeneralError)

	assert.Equal(t, "inner", err.Error())
	assert.True(t, errors.Is(err, inner))
}
