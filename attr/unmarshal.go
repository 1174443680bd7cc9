package attr

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// DecodeOptions adjust unmarshalling behavior.
type DecodeOptions struct {
	// DisableIDRecovery turns off the opportunistic UUID parse of S payloads,
	// returning every S as a plain String.
	DisableIDRecovery bool
}

// DisableIDRecovery is a decode option that turns off ID recovery:
//
//	v, err := attr.Unmarshal(av, attr.DisableIDRecovery)
func DisableIDRecovery(o *DecodeOptions) { o.DisableIDRecovery = true }

// UnmarshalMap converts a wire item into native values. The first failing
// attribute aborts the whole conversion.
func UnmarshalMap(item map[string]*AttributeValue, optFns ...func(*DecodeOptions)) (map[string]Value, error) {
	if item == nil {
		return nil, nil
	}

	var opts DecodeOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	out := make(map[string]Value, len(item))

	for name, av := range item {
		v, err := unmarshalValue(av, &opts)
		if err != nil {
			return nil, err
		}

		out[name] = v
	}

	return out, nil
}

// Unmarshal converts one wire value into its native form.
func Unmarshal(av *AttributeValue, optFns ...func(*DecodeOptions)) (Value, error) {
	var opts DecodeOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	return unmarshalValue(av, &opts)
}

func unmarshalValue(av *AttributeValue, opts *DecodeOptions) (Value, error) {
	if av == nil {
		return nil, &UnsupportedValueTypeError{}
	}

	switch {
	case av.B != nil:
		return &Binary{Value: av.B}, nil
	case av.BS != nil:
		return &BinarySet{Value: av.BS}, nil
	case av.BOOL != nil:
		return &Bool{Value: *av.BOOL}, nil
	case av.L != nil:
		list := make([]Value, 0, len(av.L))

		for _, e := range av.L {
			v, err := unmarshalValue(e, opts)
			if err != nil {
				return nil, err
			}

			list = append(list, v)
		}

		return &List{Value: list}, nil
	case av.M != nil:
		m := make(map[string]Value, len(av.M))

		for name, e := range av.M {
			v, err := unmarshalValue(e, opts)
			if err != nil {
				return nil, err
			}

			m[name] = v
		}

		return &Map{Value: m}, nil
	case av.NULL != nil:
		return &Null{}, nil
	case av.N != nil:
		return toNumber(*av.N)
	case av.NS != nil:
		members := make([]Value, 0, len(av.NS))

		for _, s := range av.NS {
			n, err := toNumber(s)
			if err != nil {
				return nil, err
			}

			members = append(members, n)
		}

		return &NumberSet{Value: members}, nil
	case av.S != nil:
		return maybeConvert(*av.S, opts), nil
	case av.SS != nil:
		return &StringSet{Value: append([]string(nil), av.SS...)}, nil
	}

	return nil, &UnsupportedValueTypeError{}
}

// toNumber applies the syntactic dispatch rule: a decimal point means float,
// anything else is parsed as an integer. "42.0" is a float even though its
// value is integral. NS members go through this rule one by one.
func toNumber(s string) (Value, error) {
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, &NumericParseError{Value: s, Err: err}
		}

		return &Float{Value: f}, nil
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, &NumericParseError{Value: s, Err: err}
	}

	return &Int{Value: i}, nil
}

// maybeConvert attempts the canonical UUID parse of an S payload, falling
// back to the plain string. Best effort only: the codec has no schema, so a
// string that merely looks like a UUID comes back as an ID. Timestamps are
// never recovered. Set members are exempt; SS elements stay strings.
func maybeConvert(s string, opts *DecodeOptions) Value {
	if opts.DisableIDRecovery {
		return &String{Value: s}
	}

	if id, err := uuid.Parse(s); err == nil {
		return &ID{Value: id}
	}

	return &String{Value: s}
}
