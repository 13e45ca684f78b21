package prospekt_test

import (
	"fmt"
	"testing"

	"github.com/ksiska/prospekt"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns the code of an application error", func(t *testing.T) {
		t.Parallel()

		err := prospekt.Errorf(prospekt.ENOTFOUND, "run not found")

		assert.Equal(t, prospekt.ENOTFOUND, prospekt.ErrorCode(err))
	})

	t.Run("unwraps wrapped application errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("outer: %w", prospekt.Errorf(prospekt.EINVALID, "bad input"))

		assert.Equal(t, prospekt.EINVALID, prospekt.ErrorCode(err))
	})

	t.Run("classifies non-application errors as internal", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, prospekt.EINTERNAL, prospekt.ErrorCode(fmt.Errorf("boom")))
	})

	t.Run("returns empty for nil", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, prospekt.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns the message of an application error", func(t *testing.T) {
		t.Parallel()

		err := prospekt.Errorf(prospekt.EINVALID, "failed to parse HTML")

		assert.Equal(t, "failed to parse HTML", prospekt.ErrorMessage(err))
	})

	t.Run("masks non-application errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", prospekt.ErrorMessage(fmt.Errorf("boom")))
	})
}
