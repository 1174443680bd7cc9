// Package awsv2 converts between the client's wire attribute values and the
// AWS SDK v2 attribute value union, so items can move between this client
// and SDK-based code without re-encoding through JSON.
package awsv2

import (
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/truora/dynaclient/attr"
)

// FromItem converts an SDK item into wire form.
func FromItem(input map[string]dynamodbtypes.AttributeValue) map[string]*attr.AttributeValue {
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
func ToItem(input map[string]*attr.AttributeValue) map[string]dynamodbtypes.AttributeValue {
	if input == nil {
		return nil
	}

	output := map[string]dynamodbtypes.AttributeValue{}

	for name, av := range input {
		output[name] = ToAttributeValue(av)
	}

	return output
}

// FromAttributeValue converts one SDK union member into the wire struct. A
// nil or unset member maps to nil.
func FromAttributeValue(input dynamodbtypes.AttributeValue) *attr.AttributeValue {
	itemB, ok := input.(*dynamodbtypes.AttributeValueMemberB)
	if ok {
		return &attr.AttributeValue{B: itemB.Value}
	}

	itemBOOL, ok := input.(*dynamodbtypes.AttributeValueMemberBOOL)
	if ok {
		return &attr.AttributeValue{BOOL: &itemBOOL.Value}
	}

	itemBS, ok := input.(*dynamodbtypes.AttributeValueMemberBS)
	if ok {
		return &attr.AttributeValue{BS: itemBS.Value}
	}

	itemN, ok := input.(*dynamodbtypes.AttributeValueMemberN)
	if ok {
		return &attr.AttributeValue{N: &itemN.Value}
	}

	itemNS, ok := input.(*dynamodbtypes.AttributeValueMemberNS)
	if ok {
		return &attr.AttributeValue{NS: itemNS.Value}
	}

	itemNULL, ok := input.(*dynamodbtypes.AttributeValueMemberNULL)
	if ok {
		return &attr.AttributeValue{NULL: &itemNULL.Value}
	}

	itemS, ok := input.(*dynamodbtypes.AttributeValueMemberS)
	if ok {
		return &attr.AttributeValue{S: &itemS.Value}
	}

	itemSS, ok := input.(*dynamodbtypes.AttributeValueMemberSS)
	if ok {
		return &attr.AttributeValue{SS: itemSS.Value}
	}

	return fromAttributeValueMapOrList(input)
}

func fromAttributeValueMapOrList(input dynamodbtypes.AttributeValue) *attr.AttributeValue {
	itemL, ok := input.(*dynamodbtypes.AttributeValueMemberL)
	if ok {
		output := []*attr.AttributeValue{}

		for _, member := range itemL.Value {
			output = append(output, FromAttributeValue(member))
		}

		return &attr.AttributeValue{L: output}
	}

	itemM, ok := input.(*dynamodbtypes.AttributeValueMemberM)
	if ok {
		return &attr.AttributeValue{M: FromItem(itemM.Value)}
	}

	return nil
}

// ToAttributeValue converts one wire struct into the SDK union. A nil or
// tagless value maps to nil.
func ToAttributeValue(input *attr.AttributeValue) dynamodbtypes.AttributeValue {
	if input == nil {
		return nil
	}

	if input.B != nil {
		return &dynamodbtypes.AttributeValueMemberB{Value: input.B}
	}

	if input.BOOL != nil {
		return &dynamodbtypes.AttributeValueMemberBOOL{Value: *input.BOOL}
	}

	if input.BS != nil {
		return &dynamodbtypes.AttributeValueMemberBS{Value: input.BS}
	}

	if input.N != nil {
		return &dynamodbtypes.AttributeValueMemberN{Value: *input.N}
	}

	if input.NS != nil {
		return &dynamodbtypes.AttributeValueMemberNS{Value: input.NS}
	}

	if input.NULL != nil {
		return &dynamodbtypes.AttributeValueMemberNULL{Value: *input.NULL}
	}

	if input.S != nil {
		return &dynamodbtypes.AttributeValueMemberS{Value: *input.S}
	}

	if input.SS != nil {
		return &dynamodbtypes.AttributeValueMemberSS{Value: input.SS}
	}

	return toAttributeValueMapOrList(input)
}

func toAttributeValueMapOrList(input *attr.AttributeValue) dynamodbtypes.AttributeValue {
	if input.L != nil {
		output := []dynamodbtypes.AttributeValue{}

		for _, member := range input.L {
			output = append(output, ToAttributeValue(member))
		}

		return &dynamodbtypes.AttributeValueMemberL{Value: output}
	}

	if input.M != nil {
		return &dynamodbtypes.AttributeValueMemberM{Value: ToItem(input.M)}
	}

	return nil
}
