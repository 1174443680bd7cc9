package awsv2

import (
	"testing"

	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"

	"github.com/truora/dynaclient/attr"
)

func TestFromAttributeValue(t *testing.T) {
	c := require.New(t)

	av := FromAttributeValue(&dynamodbtypes.AttributeValueMemberB{Value: []byte("blob")})
	c.Equal([]byte("blob"), av.B)

	av = FromAttributeValue(&dynamodbtypes.AttributeValueMemberBOOL{Value: true})
	c.True(*av.BOOL)

	av = FromAttributeValue(&dynamodbtypes.AttributeValueMemberN{Value: "4.2"})
	c.Equal("4.2", *av.N)

	av = FromAttributeValue(&dynamodbtypes.AttributeValueMemberNS{Value: []string{"1", "2"}})
	c.Equal([]string{"1", "2"}, av.NS)

	av = FromAttributeValue(&dynamodbtypes.AttributeValueMemberNULL{Value: true})
	c.True(*av.NULL)

	av = FromAttributeValue(&dynamodbtypes.AttributeValueMemberS{Value: "ash"})
	c.Equal("ash", *av.S)

	av = FromAttributeValue(&dynamodbtypes.AttributeValueMemberSS{Value: []string{"a", "b"}})
	c.Equal([]string{"a", "b"}, av.SS)

	av = FromAttributeValue(&dynamodbtypes.AttributeValueMemberBS{Value: [][]byte{[]byte("a")}})
	c.Equal([][]byte{[]byte("a")}, av.BS)

	c.Nil(FromAttributeValue(nil))
}

func TestFromAttributeValueNested(t *testing.T) {
	c := require.New(t)

	av := FromAttributeValue(&dynamodbtypes.AttributeValueMemberL{
		Value: []dynamodbtypes.AttributeValue{
			&dynamodbtypes.AttributeValueMemberM{
				Value: map[string]dynamodbtypes.AttributeValue{
					"lvl": &dynamodbtypes.AttributeValueMemberN{Value: "7"},
				},
			},
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
	c.Equal([]byte("blob"), av.(*dynamodbtypes.AttributeValueMemberB).Value)

	av = ToAttributeValue(&attr.AttributeValue{BOOL: &boolTrue})
	c.True(av.(*dynamodbtypes.AttributeValueMemberBOOL).Value)

	av = ToAttributeValue(&attr.AttributeValue{N: &n})
	c.Equal("7", av.(*dynamodbtypes.AttributeValueMemberN).Value)

	av = ToAttributeValue(&attr.AttributeValue{NS: []string{"1", "2"}})
	c.Equal([]string{"1", "2"}, av.(*dynamodbtypes.AttributeValueMemberNS).Value)

	av = ToAttributeValue(&attr.AttributeValue{NULL: &boolTrue})
	c.True(av.(*dynamodbtypes.AttributeValueMemberNULL).Value)

	av = ToAttributeValue(&attr.AttributeValue{S: &s})
	c.Equal("ash", av.(*dynamodbtypes.AttributeValueMemberS).Value)

	av = ToAttributeValue(&attr.AttributeValue{SS: []string{"a", "b"}})
	c.Equal([]string{"a", "b"}, av.(*dynamodbtypes.AttributeValueMemberSS).Value)

	av = ToAttributeValue(&attr.AttributeValue{BS: [][]byte{[]byte("a")}})
	c.Equal([][]byte{[]byte("a")}, av.(*dynamodbtypes.AttributeValueMemberBS).Value)

	c.Nil(ToAttributeValue(nil))
	c.Nil(ToAttributeValue(&attr.AttributeValue{}))
}

func TestItemRoundTrip(t *testing.T) {
	c := require.New(t)

	item, err := attr.MarshalMap(map[string]attr.Value{
		"id":    &attr.String{Value: "25"},
		"lvl":   &attr.Int{Value: 7},
		"moves": attr.NewStringSet("thunderbolt", "quick-attack"),
		"meta": &attr.Map{Value: map[string]attr.Value{
			"shiny": &attr.Bool{Value: false},
		}},
	})
	c.NoError(err)

	back := FromItem(ToItem(item))
	c.Equal(item, back)
}
