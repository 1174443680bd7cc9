package attr

import (
	"encoding/json"
	"fmt"
)

// AttributeValue is the wire form of one attribute: a JSON object with
// exactly one of the type tags set. B and BS payloads travel base64-encoded,
// N and NS payloads are decimal strings.
type AttributeValue struct {
	B    []byte                     `json:"B,omitempty"`
	BOOL *bool                      `json:"BOOL,omitempty"`
	BS   [][]byte                   `json:"BS,omitempty"`
	L    []*AttributeValue          `json:"L,omitempty"`
	M    map[string]*AttributeValue `json:"M,omitempty"`
	N    *string                    `json:"N,omitempty"`
	NS   []string                   `json:"NS,omitempty"`
	NULL *bool                      `json:"NULL,omitempty"`
	S    *string                    `json:"S,omitempty"`
	SS   []string                   `json:"SS,omitempty"`
}

// MarshalJSON writes the single-key wire object for whichever tag is set.
func (av *AttributeValue) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, 1)

	switch {
	case av.B != nil:
		out["B"] = av.B
	case av.BS != nil:
		out["BS"] = av.BS
	case av.BOOL != nil:
		out["BOOL"] = *av.BOOL
	case av.L != nil:
		out["L"] = av.L
	case av.M != nil:
		out["M"] = av.M
	case av.NULL != nil:
		out["NULL"] = *av.NULL
	case av.N != nil:
		out["N"] = *av.N
	case av.NS != nil:
		out["NS"] = av.NS
	case av.S != nil:
		out["S"] = *av.S
	case av.SS != nil:
		out["SS"] = av.SS
	default:
		return nil, &UnsupportedValueTypeError{}
	}

	return json.Marshal(out)
}

// UnmarshalJSON enforces the exactly-one-tag invariant and rejects tags
// outside the wire protocol.
func (av *AttributeValue) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if len(raw) != 1 {
		return &ValidationError{
			Message: fmt.Sprintf("attribute value must have exactly one type tag, got %d", len(raw)),
		}
	}

	for tag, payload := range raw {
		if err := av.decodeTag(tag, payload); err != nil {
			return err
		}
	}

	return nil
}

func (av *AttributeValue) decodeTag(tag string, payload json.RawMessage) error {
	var err error

	switch tag {
	case "B":
		err = json.Unmarshal(payload, &av.B)
	case "BOOL":
		av.BOOL = new(bool)
		err = json.Unmarshal(payload, av.BOOL)
	case "BS":
		err = json.Unmarshal(payload, &av.BS)
	case "L":
		err = json.Unmarshal(payload, &av.L)
	case "M":
		err = json.Unmarshal(payload, &av.M)
	case "N":
		av.N = new(string)
		err = json.Unmarshal(payload, av.N)
	case "NS":
		err = json.Unmarshal(payload, &av.NS)
	case "NULL":
		av.NULL = new(bool)
		err = json.Unmarshal(payload, av.NULL)
	case "S":
		av.S = new(string)
		err = json.Unmarshal(payload, av.S)
	case "SS":
		err = json.Unmarshal(payload, &av.SS)
	default:
		return &UnsupportedValueTypeError{Tag: tag}
	}

	return err
}
