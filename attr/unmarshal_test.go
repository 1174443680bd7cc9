package attr

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestToNumberInteger(t *testing.T) {
	n, err := toNumber("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(&Int{Value: 42}, n); diff != "" {
		t.Fatalf("unexpected value: %s", diff)
	}
}

func TestToNumberFloat(t *testing.T) {
	n, err := toNumber("4.2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(&Float{Value: 4.2}, n); diff != "" {
		t.Fatalf("unexpected value: %s", diff)
	}
}

func TestToNumberIntegralFloat(t *testing.T) {
	n, err := toNumber("42.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(&Float{Value: 42}, n); diff != "" {
		t.Fatalf("unexpected value: %s", diff)
	}
}

func TestToNumberInvalid(t *testing.T) {
	for _, s := range []string{"abc", "1e5", "4.2.3", ""} {
		_, err := toNumber(s)

		var npe *NumericParseError
		if !errors.As(err, &npe) {
			t.Fatalf("expected NumericParseError for %q, got %v", s, err)
		}

		if npe.Value != s {
			t.Fatalf("not equal actual=%q expected=%q", npe.Value, s)
		}
	}
}

func TestUnmarshalPlainString(t *testing.T) {
	s := "hello"

	v, err := Unmarshal(&AttributeValue{S: &s})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(Value(&String{Value: "hello"}), v); diff != "" {
		t.Fatalf("unexpected value: %s", diff)
	}
}

func TestUnmarshalStringRecoversID(t *testing.T) {
	s := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

	v, err := Unmarshal(&AttributeValue{S: &s})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, ok := v.(*ID)
	if !ok {
		t.Fatalf("expected *ID, got %T", v)
	}

	if id.Value != uuid.MustParse(s) {
		t.Fatalf("not equal actual=%s expected=%s", id.Value, s)
	}
}

func TestUnmarshalStringWithIDRecoveryDisabled(t *testing.T) {
	s := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

	v, err := Unmarshal(&AttributeValue{S: &s}, DisableIDRecovery)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(Value(&String{Value: s}), v); diff != "" {
		t.Fatalf("unexpected value: %s", diff)
	}
}

func TestUnmarshalStringSetMembersStayStrings(t *testing.T) {
	v, err := Unmarshal(&AttributeValue{SS: []string{"6ba7b810-9dad-11d1-80b4-00c04fd430c8", "x"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &StringSet{Value: []string{"6ba7b810-9dad-11d1-80b4-00c04fd430c8", "x"}}
	if diff := cmp.Diff(Value(want), v); diff != "" {
		t.Fatalf("unexpected value: %s", diff)
	}
}

func TestUnmarshalNumberSetParsesPerElement(t *testing.T) {
	v, err := Unmarshal(&AttributeValue{NS: []string{"1", "2.5"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &NumberSet{Value: []Value{&Int{Value: 1}, &Float{Value: 2.5}}}
	if diff := cmp.Diff(Value(want), v); diff != "" {
		t.Fatalf("unexpected value: %s", diff)
	}

	// A mixed-family set decodes fine but can not be written back; the
	// marshaller requires one numeric family per set.
	_, err = Marshal(v)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUnmarshalNull(t *testing.T) {
	null := true

	v, err := Unmarshal(&AttributeValue{NULL: &null})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := v.(*Null); !ok {
		t.Fatalf("expected *Null, got %T", v)
	}
}

func TestUnmarshalBinarySet(t *testing.T) {
	v, err := Unmarshal(&AttributeValue{BS: [][]byte{{0x01}, {0x02}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &BinarySet{Value: [][]byte{{0x01}, {0x02}}}
	if diff := cmp.Diff(Value(want), v); diff != "" {
		t.Fatalf("unexpected value: %s", diff)
	}
}

func TestUnmarshalUnknownTag(t *testing.T) {
	var av AttributeValue

	err := json.Unmarshal([]byte(`{"X": "foo"}`), &av)

	var uvte *UnsupportedValueTypeError
	if !errors.As(err, &uvte) {
		t.Fatalf("expected UnsupportedValueTypeError, got %v", err)
	}

	if uvte.Tag != "X" {
		t.Fatalf("not equal actual=%q expected=%q", uvte.Tag, "X")
	}
}

func TestUnmarshalEmptyAttributeValue(t *testing.T) {
	_, err := Unmarshal(&AttributeValue{})

	var uvte *UnsupportedValueTypeError
	if !errors.As(err, &uvte) {
		t.Fatalf("expected UnsupportedValueTypeError, got %v", err)
	}
}

func TestUnmarshalNilAttributeValue(t *testing.T) {
	_, err := Unmarshal(nil)

	var uvte *UnsupportedValueTypeError
	if !errors.As(err, &uvte) {
		t.Fatalf("expected UnsupportedValueTypeError, got %v", err)
	}
}

func TestUnmarshalListReturnsNoPartialResult(t *testing.T) {
	bad := "abc"
	s := "ok"

	v, err := Unmarshal(&AttributeValue{L: []*AttributeValue{{S: &s}, {N: &bad}}})
	if err == nil {
		t.Fatalf("expected error")
	}

	if v != nil {
		t.Fatalf("expected no partial result, got %+v", v)
	}

	var npe *NumericParseError
	if !errors.As(err, &npe) {
		t.Fatalf("expected NumericParseError, got %v", err)
	}
}
