package awsv1

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/stretchr/testify/require"

	"github.com/truora/dynaclient/attr"
)

func TestFromAttributeValue(t *testing.T) {
	c := require.New(t)

	av := FromAttributeValue(&dynamodb.AttributeValue{B: []byte("blob")})
	c.Equal([]byte("blob"), av.B)

	av = FromAttributeValue(&dynamodb.AttributeValue{BOOL: aws.Bool(true)})
	c.True(*av.BOOL)

	av = FromAttributeValue(&dynamodb.AttributeValue{N: aws.String("4.2")})
	c.Equal("4.2", *av.N)

	av = FromAttributeValue(&dynamodb.AttributeValue{NS: aws.StringSlice([]string{"1", "2"})})
	c.Equal([]string{"1", "2"}, av.NS)

	av = FromAttributeValue(&dynamodb.AttributeValue{NULL: aws.Bool(true)})
	c.True(*av.NULL)

	av = FromAttributeValue(&dynamodb.AttributeValue{S: aws.String("ash")})
	c.Equal("ash", *av.S)

	av = FromAttributeValue(&dynamodb.AttributeValue{SS: aws.StringSlice([]string{"a", "b"})})
	c.Equal([]string{"a", "b"}, av.SS)

	av = FromAttributeValue(&dynamodb.AttributeValue{BS: [][]byte{[]byte("a")}})
	c.Equal([][]byte{[]byte("a")}, av.BS)

	c.Nil(FromAttributeValue(nil))
	c.Nil(FromAttributeValue(&dynamodb.AttributeValue{}))
}

func TestFromAttributeValueNested(t *testing.T) {
	c := require.New(t)

	av := FromAttributeValue(&dynamodb.AttributeValue{
		L: []*dynamodb.AttributeValue{
			{M: map[string]*dynamodb.AttributeValue{
				"lvl": {N: aws.String("7")},
			}},
		},
	})

	c.Len(av.L, 1)
	c.Equal("7", *av.L[0].M["lvl"].N)
}

func TestToAttributeValue(t *testing.T) {
	c := require.New(t)

	boolTrue := true
	n := "7"
	s := "ash"

	av := ToAttributeValue(&attr.AttributeValue{B: []byte("blob")})
	c.Equal([]byte("blob"), av.B)

	av = ToAttributeValue(&attr.AttributeValue{BOOL: &boolTrue})
	c.True(*av.BOOL)

	av = ToAttributeValue(&attr.AttributeValue{N: &n})
	c.Equal("7", aws.StringValue(av.N))

	av = ToAttributeValue(&attr.AttributeValue{NS: []string{"1", "2"}})
	c.Equal([]string{"1", "2"}, aws.StringValueSlice(av.NS))

	av = ToAttributeValue(&attr.AttributeValue{NULL: &boolTrue})
	c.True(*av.NULL)

	av = ToAttributeValue(&attr.AttributeValue{S: &s})
	c.Equal("ash", aws.StringValue(av.S))

	av = ToAttributeValue(&attr.AttributeValue{SS: []string{"a", "b"}})
	c.Equal([]string{"a", "b"}, aws.StringValueSlice(av.SS))

	av = ToAttributeValue(&attr.AttributeValue{BS: [][]byte{[]byte("a")}})
	c.Equal([][]byte{[]byte("a")}, av.BS)

	c.Nil(ToAttributeValue(nil))
	c.Nil(ToAttributeValue(&attr.AttributeValue{}))
}

func TestItemRoundTrip(t *testing.T) {
	c := require.New(t)

	item, err := attr.MarshalMap(map[string]attr.Value{
		"id":   &attr.String{Value: "25"},
		"lvl":  &attr.Int{Value: 7},
		"tags": attr.NewStringSet("x", "y"),
		"meta": &attr.Map{Value: map[string]attr.Value{
			"shiny": &attr.Bool{Value: false},
		}},
	})
	c.NoError(err)

	back := FromItem(ToItem(item))
	c.Equal(item, back)
}
