package awsv2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type pokemon struct {
	ID    string   `dynamodbav:"id"`
	Level int64    `dynamodbav:"lvl"`
	Moves []string `dynamodbav:"moves,stringset"`
}

func TestMarshalItem(t *testing.T) {
	c := require.New(t)

	item, err := MarshalItem(pokemon{
		ID:    "25",
		Level: 7,
		Moves: []string{"thunderbolt", "quick-attack"},
	})
	c.NoError(err)

	c.Equal("25", *item["id"].S)
	c.Equal("7", *item["lvl"].N)
	c.ElementsMatch([]string{"thunderbolt", "quick-attack"}, item["moves"].SS)
}

func TestMarshalItemRejectsUnencodable(t *testing.T) {
	c := require.New(t)

	_, err := MarshalItem(map[string]interface{}{"ch": make(chan int)})
	c.Error(err)
}

func TestUnmarshalItem(t *testing.T) {
	c := require.New(t)

	item, err := MarshalItem(pokemon{ID: "25", Level: 7, Moves: []string{"surf"}})
	c.NoError(err)

	var got pokemon

	c.NoError(UnmarshalItem(item, &got))
	c.Equal(pokemon{ID: "25", Level: 7, Moves: []string{"surf"}}, got)
}
