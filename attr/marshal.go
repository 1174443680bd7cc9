package attr

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// MarshalMap converts a native item into wire form, attribute by attribute.
// The first failing attribute aborts the whole conversion; no partial result
// is returned.
func MarshalMap(item map[string]Value) (map[string]*AttributeValue, error) {
	if item == nil {
		return nil, nil
	}

	out := make(map[string]*AttributeValue, len(item))

	for name, v := range item {
		av, err := Marshal(v)
		if err != nil {
			return nil, err
		}

		out[name] = av
	}

	return out, nil
}

// Marshal converts one native value into its wire form. Timestamps and IDs
// degrade to S on the wire; sets are emitted sorted ascending with no
// duplicates, number sets ordered by their decimal string form.
func Marshal(v Value) (*AttributeValue, error) {
	switch v := v.(type) {
	case *Binary:
		b := v.Value
		if b == nil {
			b = []byte{}
		}

		return &AttributeValue{B: b}, nil
	case *String:
		s := v.Value
		return &AttributeValue{S: &s}, nil
	case *Map:
		m, err := MarshalMap(v.Value)
		if err != nil {
			return nil, err
		}

		if m == nil {
			m = map[string]*AttributeValue{}
		}

		return &AttributeValue{M: m}, nil
	case *Bool:
		b := v.Value
		return &AttributeValue{BOOL: &b}, nil
	case *Int:
		n := strconv.FormatInt(v.Value, 10)
		return &AttributeValue{N: &n}, nil
	case *Float:
		if math.IsNaN(v.Value) || math.IsInf(v.Value, 0) {
			return nil, &ValidationError{Message: "number must be finite"}
		}

		n := formatFloat(v.Value)

		return &AttributeValue{N: &n}, nil
	case *Time:
		s := v.Value.Format(time.RFC3339Nano)
		return &AttributeValue{S: &s}, nil
	case *ID:
		s := v.Value.String()
		return &AttributeValue{S: &s}, nil
	case *List:
		list := make([]*AttributeValue, 0, len(v.Value))

		for _, e := range v.Value {
			av, err := Marshal(e)
			if err != nil {
				return nil, err
			}

			list = append(list, av)
		}

		return &AttributeValue{L: list}, nil
	case *StringSet:
		return &AttributeValue{SS: sortedStrings(v.Value)}, nil
	case *NumberSet:
		ns, err := numberSetStrings(v.Value)
		if err != nil {
			return nil, err
		}

		return &AttributeValue{NS: ns}, nil
	case *BinarySet:
		return &AttributeValue{BS: sortedBinaries(v.Value)}, nil
	case *Null:
		t := true
		return &AttributeValue{NULL: &t}, nil
	case nil:
		return nil, &UnsupportedTypeError{Type: "<nil>"}
	}

	return nil, &UnsupportedTypeError{Type: fmt.Sprintf("%T", v)}
}

// numberSetStrings renders and orders NS members, enforcing one numeric
// family per set: all integers or all floats, never both.
func numberSetStrings(members []Value) ([]string, error) {
	ints, floats := 0, 0
	out := make([]string, 0, len(members))

	for _, m := range members {
		switch n := m.(type) {
		case *Int:
			ints++

			out = append(out, strconv.FormatInt(n.Value, 10))
		case *Float:
			if math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
				return nil, &ValidationError{Message: "number must be finite"}
			}

			floats++

			out = append(out, formatFloat(n.Value))
		default:
			return nil, &ValidationError{Message: "can not mix types in a set"}
		}
	}

	if ints > 0 && floats > 0 {
		return nil, &ValidationError{Message: "can not mix types in a set"}
	}

	sort.Strings(out)

	return dedupeStrings(out), nil
}

func sortedStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)

	return dedupeStrings(out)
}

func sortedBinaries(in [][]byte) [][]byte {
	out := make([][]byte, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i], out[j]) < 0 })

	return dedupeBinaries(out)
}

// formatFloat renders a float with an explicit decimal point so that the
// string parses back as a float, not an integer.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
