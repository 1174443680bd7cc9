package awsv2

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"github.com/truora/dynaclient/attr"
)

// MarshalItem encodes a struct-tagged Go value into a wire item through the
// SDK attribute value marshaller, so `dynamodbav` tags keep working when an
// application writes through this client.
func MarshalItem(in interface{}) (map[string]*attr.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(in)
	if err != nil {
		return nil, err
	}

	return FromItem(item), nil
}

// UnmarshalItem decodes a wire item into a struct-tagged Go value through the
// SDK attribute value unmarshaller.
func UnmarshalItem(item map[string]*attr.AttributeValue, out interface{}) error {
	return attributevalue.UnmarshalMap(ToItem(item), out)
}
