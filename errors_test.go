package promos_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/promos"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := promos.Errorf(promos.ENOTFOUND, "source %q not found", "test")

	assert.Equal(t, promos.ENOTFOUND, promos.ErrorCode(err))
	assert.Equal(t, "source \"test\" not found", promos.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, promos.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, promos.EINTERNAL, promos.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, promos.ErrorMessage(nil))
}
