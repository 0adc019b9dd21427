package doctidy_test

import (
	"testing"

	"github.com/fwojciec/doctidy"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := doctidy.Errorf(doctidy.ENOTFOUND, "content container %q not found", "main.main")

	assert.Equal(t, doctidy.ENOTFOUND, doctidy.ErrorCode(err))
	assert.Equal(t, "content container \"main.main\" not found", doctidy.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, doctidy.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, doctidy.ErrorMessage(nil))
}
