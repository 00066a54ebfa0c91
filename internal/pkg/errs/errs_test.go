//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"booking-portal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "context"))
		assert.NoError(t, errs.Wrapf(nil, "context %d", 1))
	})

	t.Run("wrapped error keeps identity", func(t *testing.T) {
		err := errs.Wrapf(errs.ErrInvalidDate, "parse %q", "2025-13-01")
		assert.True(t, errs.Is(err, errs.ErrInvalidDate))
		assert.True(t, errors.Is(err, errs.ErrInvalidDate))
		assert.Contains(t, err.Error(), "parse")
	})
}

func TestMark(t *testing.T) {
	t.Run("nil error returns the mark", func(t *testing.T) {
		assert.Equal(t, errs.ErrFormValidation, errs.Mark(nil, errs.ErrFormValidation))
	})

	t.Run("marked error matches both", func(t *testing.T) {
		base := errs.New("name is empty")
		marked := errs.Mark(base, errs.ErrFormValidation)
		assert.True(t, errs.Is(marked, errs.ErrFormValidation))
		assert.Equal(t, "name is empty", marked.Error())
	})
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
	lines := errs.ExtractStackLines(errs.New("boom"), 2)
	assert.LessOrEqual(t, len(lines), 2)
	assert.Contains(t, lines[0], "boom")
}
