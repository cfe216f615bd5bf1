package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMessage(t *testing.T) {
	err := IngestFailed("failed to parse CSV", fmt.Errorf("record on line 2: wrong number of fields"))
	assert.Equal(t, "failed to parse CSV: record on line 2: wrong number of fields", err.Error())
	assert.Equal(t, CodeIngestFailed, GetCode(err))
}

func TestWrapPreservesCode(t *testing.T) {
	inner := ColumnMissing("continent")
	wrapped := Wrap(inner, "filter stage")

	assert.Equal(t, CodeColumnMissing, GetCode(wrapped))
	assert.True(t, IsColumnMissing(wrapped))
	assert.True(t, stderrors.Is(wrapped, stderrors.Unwrap(wrapped)))
}

func TestWrapPlainError(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("boom"), "something broke")
	assert.Equal(t, CodeInternalError, GetCode(wrapped))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Nil(t, Wrapf(nil, "ignored %d", 1))
}

func TestGetCodeUnknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(fmt.Errorf("plain")))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsIngestFailed(IngestFailed("bad file", nil)))
	assert.False(t, IsIngestFailed(ColumnMissing("country")))
	assert.False(t, IsColumnMissing(nil))
}
