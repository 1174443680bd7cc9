// Package attr implements the value codec between native Go values and the
// DynamoDB JSON wire encoding, where every attribute is a single-key object
// whose key names the type (S, N, B, BOOL, NULL, L, M, SS, NS, BS).
package attr

import (
	"bytes"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Value is a native attribute value. The variant set is closed: exactly one
// concrete type per representable kind, and the codec dispatches over all of
// them. Anything outside this set has no wire encoding.
type Value interface {
	isValue()
}

// String is an S attribute.
type String struct {
	Value string
}

// Binary is a B attribute.
type Binary struct {
	Value []byte
}

// Bool is a BOOL attribute.
type Bool struct {
	Value bool
}

// Int is an N attribute holding an integer.
type Int struct {
	Value int64
}

// Float is an N attribute holding a floating point number.
type Float struct {
	Value float64
}

// Null is a NULL attribute.
type Null struct{}

// Time marshals to an S attribute in RFC 3339 form with offset. There is no
// inverse: unmarshalling hands the timestamp back as a plain String. That
// asymmetry is long-standing observed behavior and is kept on purpose.
type Time struct {
	Value time.Time
}

// ID is a 128-bit unique identifier. It marshals to an S attribute in the
// canonical hyphenated form; unmarshalling recovers it opportunistically
// (see DecodeOptions).
type ID struct {
	Value uuid.UUID
}

// List is an L attribute.
type List struct {
	Value []Value
}

// Map is an M attribute.
type Map struct {
	Value map[string]Value
}

// StringSet is an SS attribute. Built through NewStringSet, its elements are
// sorted ascending with no duplicates.
type StringSet struct {
	Value []string
}

// NumberSet is an NS attribute. Members are *Int or *Float, one family per
// set. Elements sort by their decimal string form: the wire orders NS members
// as strings, not numerically, so "10" precedes "2".
type NumberSet struct {
	Value []Value
}

// BinarySet is a BS attribute.
type BinarySet struct {
	Value [][]byte
}

func (*String) isValue()    {}
func (*Binary) isValue()    {}
func (*Bool) isValue()      {}
func (*Int) isValue()       {}
func (*Float) isValue()     {}
func (*Null) isValue()      {}
func (*Time) isValue()      {}
func (*ID) isValue()        {}
func (*List) isValue()      {}
func (*Map) isValue()       {}
func (*StringSet) isValue() {}
func (*NumberSet) isValue() {}
func (*BinarySet) isValue() {}

// NewStringSet builds a string set, sorted ascending and deduplicated.
func NewStringSet(members ...string) *StringSet {
	out := make([]string, len(members))
	copy(out, members)
	sort.Strings(out)

	return &StringSet{Value: dedupeStrings(out)}
}

// NewIntSet builds a number set of integers.
func NewIntSet(members ...int64) *NumberSet {
	vs := make([]Value, 0, len(members))
	for _, m := range members {
		vs = append(vs, &Int{Value: m})
	}

	return &NumberSet{Value: sortNumberMembers(vs)}
}

// NewFloatSet builds a number set of floats.
func NewFloatSet(members ...float64) *NumberSet {
	vs := make([]Value, 0, len(members))
	for _, m := range members {
		vs = append(vs, &Float{Value: m})
	}

	return &NumberSet{Value: sortNumberMembers(vs)}
}

// NewBinarySet builds a binary set, sorted ascending and deduplicated.
func NewBinarySet(members ...[]byte) *BinarySet {
	out := make([][]byte, len(members))
	copy(out, members)
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i], out[j]) < 0 })

	return &BinarySet{Value: dedupeBinaries(out)}
}

// NewSet builds the typed set matching the members' kind: all binaries, all
// numbers of one family, or all strings. Mixing kinds, mixing integer and
// float members, or passing no members at all is a ValidationError.
func NewSet(members ...Value) (Value, error) {
	if len(members) == 0 {
		return nil, &ValidationError{Message: "can not build an empty set"}
	}

	if bs, ok := binaryMembers(members); ok {
		return NewBinarySet(bs...), nil
	}

	if fs, ok := floatMembers(members); ok {
		return NewFloatSet(fs...), nil
	}

	if is, ok := intMembers(members); ok {
		return NewIntSet(is...), nil
	}

	if ss, ok := stringMembers(members); ok {
		return NewStringSet(ss...), nil
	}

	return nil, &ValidationError{Message: "can not mix types in a set"}
}

func binaryMembers(members []Value) ([][]byte, bool) {
	out := make([][]byte, 0, len(members))

	for _, m := range members {
		b, ok := m.(*Binary)
		if !ok {
			return nil, false
		}

		out = append(out, b.Value)
	}

	return out, true
}

func floatMembers(members []Value) ([]float64, bool) {
	out := make([]float64, 0, len(members))

	for _, m := range members {
		f, ok := m.(*Float)
		if !ok {
			return nil, false
		}

		out = append(out, f.Value)
	}

	return out, true
}

func intMembers(members []Value) ([]int64, bool) {
	out := make([]int64, 0, len(members))

	for _, m := range members {
		i, ok := m.(*Int)
		if !ok {
			return nil, false
		}

		out = append(out, i.Value)
	}

	return out, true
}

func stringMembers(members []Value) ([]string, bool) {
	out := make([]string, 0, len(members))

	for _, m := range members {
		s, ok := m.(*String)
		if !ok {
			return nil, false
		}

		out = append(out, s.Value)
	}

	return out, true
}

func sortNumberMembers(vs []Value) []Value {
	sort.Slice(vs, func(i, j int) bool { return memberString(vs[i]) < memberString(vs[j]) })

	out := vs[:0]
	for i, v := range vs {
		if i == 0 || memberString(v) != memberString(vs[i-1]) {
			out = append(out, v)
		}
	}

	return out
}

func memberString(v Value) string {
	switch n := v.(type) {
	case *Int:
		return strconv.FormatInt(n.Value, 10)
	case *Float:
		return formatFloat(n.Value)
	}

	return ""
}

func dedupeStrings(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}

	return out
}

func dedupeBinaries(sorted [][]byte) [][]byte {
	out := sorted[:0]
	for i, b := range sorted {
		if i == 0 || !bytes.Equal(b, sorted[i-1]) {
			out = append(out, b)
		}
	}

	return out
}
