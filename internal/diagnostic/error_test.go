package diagnostic

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Messages(t *testing.T) {
	assert.Equal(t, `missing field "url": required value is empty`, MissingField("url").Error())
	assert.Equal(t, `conflicting fields "tag": tag and branch are mutually exclusive`, Conflicting("tag", "branch").Error())
	assert.Equal(t, "invariant violation: count is 2", Invariant("count is %d", 2).Error())
	assert.Equal(t, "unsupported combination: no build type", Unsupported("no build type").Error())
}

func TestError_IsMatchesOnKind(t *testing.T) {
	err := MissingField("url")

	assert.True(t, errors.Is(err, ErrMissingField))
	assert.False(t, errors.Is(err, ErrConflictingFields))
	assert.False(t, errors.Is(err, ErrInvariantViolation))
}

func TestError_IsMatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("scm[1]: %w", Invariant("too many checkouts"))

	assert.True(t, errors.Is(err, ErrInvariantViolation))

	var diag *Error
	require.True(t, errors.As(err, &diag))
	assert.Equal(t, KindInvariantViolation, diag.Kind)
}

func TestError_IsMatchesOnFieldWhenSet(t *testing.T) {
	err := MissingField("url")

	assert.True(t, errors.Is(err, &Error{Kind: KindMissingField, Field: "url"}))
	assert.False(t, errors.Is(err, &Error{Kind: KindMissingField, Field: "viewspec"}))
}

func TestCollector_RecordsInOrder(t *testing.T) {
	c := &Collector{}
	c.Deprecated("first")
	c.Deprecated("second")

	assert.Equal(t, []string{"first", "second"}, c.Messages)
}

func TestDiscard_DoesNotPanic(t *testing.T) {
	Discard.Deprecated("ignored")
}
