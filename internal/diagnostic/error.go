package diagnostic

import "fmt"

// KindEnum classifies a validation error.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a wildcard in Error.Is matching

	KindMissingField
	KindConflictingFields
	KindInvariantViolation
	KindUnsupportedCombination

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// String returns a human-readable kind name.
func (k KindEnum) String() string {
	switch k {
	case KindMissingField:
		return "missing field"
	case KindConflictingFields:
		return "conflicting fields"
	case KindInvariantViolation:
		return "invariant violation"
	case KindUnsupportedCombination:
		return "unsupported combination"
	default:
		return "unknown"
	}
}

// Error is a validation failure raised before any tree synthesis happens for
// the offending invocation.
type Error struct {
	// Kind classifies the failure.
	Kind KindEnum
	// Field names the offending descriptor field, if any.
	Field string
	// Message is the human-readable description.
	Message string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}

	return fmt.Sprintf("%s %q: %s", e.Kind, e.Field, e.Message)
}

// Is matches another *Error by kind, treating the zero kind as a wildcard.
// It makes errors.Is(err, ErrMissingField) style checks work.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	if t.Kind != 0 && t.Kind != e.Kind {
		return false
	}

	return t.Field == "" || t.Field == e.Field
}

// Sentinels for errors.Is kind matching.
var (
	ErrMissingField           = &Error{Kind: KindMissingField}
	ErrConflictingFields      = &Error{Kind: KindConflictingFields}
	ErrInvariantViolation     = &Error{Kind: KindInvariantViolation}
	ErrUnsupportedCombination = &Error{Kind: KindUnsupportedCombination}
)

// MissingField reports a required descriptor field that is absent or empty.
func MissingField(field string) *Error {
	return &Error{Kind: KindMissingField, Field: field, Message: "required value is empty"}
}

// Conflicting reports two mutually exclusive fields that are both set.
func Conflicting(a, b string) *Error {
	return &Error{
		Kind:    KindConflictingFields,
		Field:   a,
		Message: fmt.Sprintf("%s and %s are mutually exclusive", a, b),
	}
}

// Invariant reports a broken structural rule (cardinality, enum membership).
func Invariant(format string, args ...any) *Error {
	return &Error{Kind: KindInvariantViolation, Message: fmt.Sprintf(format, args...)}
}

// Unsupported reports an input combination no backend schema can express.
func Unsupported(format string, args ...any) *Error {
	return &Error{Kind: KindUnsupportedCombination, Message: fmt.Sprintf(format, args...)}
}
