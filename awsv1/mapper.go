// Package awsv1 converts between the client's wire attribute values and the
// AWS SDK v1 attribute value struct.
package awsv1

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/truora/dynaclient/attr"
)

// FromItem converts an SDK item into wire form.
func FromItem(input map[string]*dynamodb.AttributeValue) map[string]*attr.AttributeValue {
	if input == nil {
		return nil
	}

	output := map[string]*attr.AttributeValue{}

	for name, av := range input {
		output[name] = FromAttributeValue(av)
	}

	return output
}

// ToItem converts a wire item into SDK form.
func ToItem(input map[string]*attr.AttributeValue) map[string]*dynamodb.AttributeValue {
	if input == nil {
		return nil
	}

	output := map[string]*dynamodb.AttributeValue{}

	for name, av := range input {
		output[name] = ToAttributeValue(av)
	}

	return output
}

// FromAttributeValue converts one SDK struct into the wire struct. A nil or
// tagless value maps to nil.
func FromAttributeValue(input *dynamodb.AttributeValue) *attr.AttributeValue {
	if input == nil {
		return nil
	}

	if input.B != nil {
		return &attr.AttributeValue{B: input.B}
	}

	if input.BOOL != nil {
		return &attr.AttributeValue{BOOL: input.BOOL}
	}

	if input.BS != nil {
		return &attr.AttributeValue{BS: input.BS}
	}

	if input.N != nil {
		return &attr.AttributeValue{N: input.N}
	}

	if input.NS != nil {
		return &attr.AttributeValue{NS: toStringSlice(input.NS)}
	}

	if input.NULL != nil {
		return &attr.AttributeValue{NULL: input.NULL}
	}

	if input.S != nil {
		return &attr.AttributeValue{S: input.S}
	}

	if input.SS != nil {
		return &attr.AttributeValue{SS: toStringSlice(input.SS)}
	}

	return fromAttributeValueMapOrList(input)
}

func fromAttributeValueMapOrList(input *dynamodb.AttributeValue) *attr.AttributeValue {
	if input.L != nil {
		output := []*attr.AttributeValue{}

		for _, member := range input.L {
			output = append(output, FromAttributeValue(member))
		}

		return &attr.AttributeValue{L: output}
	}

	if input.M != nil {
		return &attr.AttributeValue{M: FromItem(input.M)}
	}

	return nil
}

// ToAttributeValue converts one wire struct into the SDK struct. A nil or
// tagless value maps to nil.
func ToAttributeValue(input *attr.AttributeValue) *dynamodb.AttributeValue {
	if input == nil {
		return nil
	}

	if input.B != nil {
		return &dynamodb.AttributeValue{B: input.B}
	}

	if input.BOOL != nil {
		return &dynamodb.AttributeValue{BOOL: input.BOOL}
	}

	if input.BS != nil {
		return &dynamodb.AttributeValue{BS: input.BS}
	}

	if input.N != nil {
		return &dynamodb.AttributeValue{N: input.N}
	}

	if input.NS != nil {
		return &dynamodb.AttributeValue{NS: toStringPointerSlice(input.NS)}
	}

	if input.NULL != nil {
		return &dynamodb.AttributeValue{NULL: input.NULL}
	}

	if input.S != nil {
		return &dynamodb.AttributeValue{S: input.S}
	}

	if input.SS != nil {
		return &dynamodb.AttributeValue{SS: toStringPointerSlice(input.SS)}
	}

	return toAttributeValueMapOrList(input)
}

func toAttributeValueMapOrList(input *attr.AttributeValue) *dynamodb.AttributeValue {
	if input.L != nil {
		output := []*dynamodb.AttributeValue{}

		for _, member := range input.L {
			output = append(output, ToAttributeValue(member))
		}

		return &dynamodb.AttributeValue{L: output}
	}

	if input.M != nil {
		return &dynamodb.AttributeValue{M: ToItem(input.M)}
	}

	return nil
}

func toStringSlice(input []*string) []string {
	output := []string{}

	for _, str := range input {
		output = append(output, aws.StringValue(str))
	}

	return output
}

func toStringPointerSlice(input []string) []*string {
	output := []*string{}

	for _, str := range input {
		output = append(output, aws.String(str))
	}

	return output
}
