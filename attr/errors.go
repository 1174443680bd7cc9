package attr

import "fmt"

// ValidationError reports a value that violates a structural rule the codec
// enforces itself, such as a set mixing element kinds or a wire object
// carrying more than one type tag.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UnsupportedTypeError reports a native value with no wire encoding.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return "unsupported type: " + e.Type
}

// UnsupportedValueTypeError reports a wire type tag outside the known set.
type UnsupportedValueTypeError struct {
	Tag string
}

func (e *UnsupportedValueTypeError) Error() string {
	if e.Tag == "" {
		return "attribute value has no type tag"
	}

	return "unsupported value type: " + e.Tag
}

// NumericParseError reports an N or NS payload that is not a valid number of
// the kind its syntax implies.
type NumericParseError struct {
	Value string
	Err   error
}

func (e *NumericParseError) Error() string {
	return fmt.Sprintf("invalid number %q: %v", e.Value, e.Err)
}

func (e *NumericParseError) Unwrap() error { return e.Err }
