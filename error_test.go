package stylebook_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/stylebook"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := stylebook.Errorf(stylebook.ENOTFOUND, "no %s region", "main")

	assert.Equal(t, stylebook.ENOTFOUND, stylebook.ErrorCode(err))
	assert.Equal(t, "no main region", stylebook.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch sitemap: %w", stylebook.Errorf(stylebook.EUNAVAILABLE, "HTTP 503"))

	assert.Equal(t, stylebook.EUNAVAILABLE, stylebook.ErrorCode(err))
	assert.Equal(t, "HTTP 503", stylebook.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, stylebook.EINTERNAL, stylebook.ErrorCode(err))
	assert.Equal(t, "Internal error.", stylebook.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, stylebook.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, stylebook.ErrorMessage(nil))
}
