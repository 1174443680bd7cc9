package attr

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestRoundTripScalars(t *testing.T) {
	tests := []struct {
		name string
		in   Value
	}{
		{"int", &Int{Value: -7}},
		{"float", &Float{Value: 4.5}},
		{"integral float", &Float{Value: 42}},
		{"bool", &Bool{Value: true}},
		{"string", &String{Value: "plain"}},
		{"binary", &Binary{Value: []byte{0x01, 0x02}}},
		{"null", &Null{}},
	}

	for _, tt := range tests {
		av, err := Marshal(tt.in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}

		got, err := Unmarshal(av)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}

		if diff := cmp.Diff(tt.in, got); diff != "" {
			t.Fatalf("%s: unexpected value: %s", tt.name, diff)
		}
	}
}

func TestRoundTripIntegralFloatKeepsFamily(t *testing.T) {
	av, err := Marshal(&Float{Value: 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Unmarshal(av)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := got.(*Float); !ok {
		t.Fatalf("expected *Float, got %T", got)
	}
}

func TestRoundTripTimestampComesBackAsString(t *testing.T) {
	ts := time.Date(2015, 1, 1, 12, 0, 0, 0, time.UTC)

	av, err := Marshal(&Time{Value: ts})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Unmarshal(av)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &String{Value: "2015-01-01T12:00:00Z"}
	if diff := cmp.Diff(Value(want), got); diff != "" {
		t.Fatalf("unexpected value: %s", diff)
	}
}

func TestRoundTripID(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	av, err := Marshal(&ID{Value: id})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Unmarshal(av)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(Value(&ID{Value: id}), got); diff != "" {
		t.Fatalf("unexpected value: %s", diff)
	}
}

func TestRoundTripSets(t *testing.T) {
	tests := []struct {
		name string
		in   Value
	}{
		{"string set", NewStringSet("b", "a")},
		{"int set", NewIntSet(3, 1)},
		{"float set", NewFloatSet(2.5, 1.5)},
		{"binary set", NewBinarySet([]byte{0x02}, []byte{0x01})},
	}

	for _, tt := range tests {
		av, err := Marshal(tt.in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}

		got, err := Unmarshal(av)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}

		if diff := cmp.Diff(tt.in, got); diff != "" {
			t.Fatalf("%s: unexpected value: %s", tt.name, diff)
		}
	}
}

func TestRoundTripNested(t *testing.T) {
	in := Value(&Map{Value: map[string]Value{
		"name":     &String{Value: "sensor"},
		"readings": &List{Value: []Value{&Float{Value: 1.5}, &Int{Value: 2}}},
		"meta": &Map{Value: map[string]Value{
			"active": &Bool{Value: true},
			"note":   &Null{},
		}},
	}})

	av, err := Marshal(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Unmarshal(av)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("unexpected value: %s", diff)
	}
}

func TestRoundTripWireJSON(t *testing.T) {
	item := map[string]Value{
		"id":    &String{Value: "abc-123"},
		"count": &Int{Value: 3},
		"tags":  NewStringSet("y", "x"),
	}

	wire, err := MarshalMap(item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := json.Marshal(wire)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `{"count":{"N":"3"},"id":{"S":"abc-123"},"tags":{"SS":["x","y"]}}`
	if string(raw) != expected {
		t.Fatalf("not equal actual=%s expected=%s", raw, expected)
	}

	var decoded map[string]*AttributeValue

	err = json.Unmarshal(raw, &decoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := UnmarshalMap(decoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(item, got); diff != "" {
		t.Fatalf("unexpected item: %s", diff)
	}
}
