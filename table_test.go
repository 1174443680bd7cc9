package dynaclient

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/truora/dynaclient/types"
)

func TestCreateTableDefaultsProvisionedThroughput(t *testing.T) {
	c := require.New(t)

	rec := &recordedRequest{}
	srv := newTestServer(t, cannedHandler(t, rec, http.StatusOK,
		`{"TableDescription":{"TableName":"pokemons","TableStatus":"CREATING"}}`))

	client := newTestClient(t, srv.URL)

	input := &types.CreateTableInput{
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: "id", AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: "id", KeyType: types.KeyTypeHash},
		},
		TableName: "pokemons",
	}

	out, err := client.CreateTable(context.Background(), input)
	c.NoError(err)

	body := decodeBody(t, rec.body)
	throughput, ok := body["ProvisionedThroughput"].(map[string]interface{})
	c.True(ok)
	c.Equal(float64(1), throughput["ReadCapacityUnits"])
	c.Equal(float64(1), throughput["WriteCapacityUnits"])

	// the default is applied to a copy, not the caller's input
	c.Nil(input.ProvisionedThroughput)

	c.Equal("pokemons", out.TableDescription.TableName)
	c.Equal(types.TableStatusCreating, out.TableDescription.TableStatus)
}

func TestCreateTableKeepsGivenThroughput(t *testing.T) {
	c := require.New(t)

	rec := &recordedRequest{}
	srv := newTestServer(t, cannedHandler(t, rec, http.StatusOK, `{}`))

	client := newTestClient(t, srv.URL)

	_, err := client.CreateTable(context.Background(), &types.CreateTableInput{
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: "id", AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: "id", KeyType: types.KeyTypeHash},
		},
		ProvisionedThroughput: &types.ProvisionedThroughput{
			ReadCapacityUnits:  5,
			WriteCapacityUnits: 3,
		},
		TableName: "pokemons",
	})
	c.NoError(err)

	body := decodeBody(t, rec.body)
	throughput, ok := body["ProvisionedThroughput"].(map[string]interface{})
	c.True(ok)
	c.Equal(float64(5), throughput["ReadCapacityUnits"])
	c.Equal(float64(3), throughput["WriteCapacityUnits"])
}

func TestCreateTableRejectsInvalidStreamViewType(t *testing.T) {
	c := require.New(t)

	rec := &recordedRequest{}
	srv := newTestServer(t, cannedHandler(t, rec, http.StatusOK, `{}`))

	client := newTestClient(t, srv.URL)

	_, err := client.CreateTable(context.Background(), &types.CreateTableInput{
		KeySchema: []types.KeySchemaElement{
			{AttributeName: "id", KeyType: types.KeyTypeHash},
		},
		StreamSpecification: &types.StreamSpecification{
			StreamEnabled:  true,
			StreamViewType: "EVERYTHING",
		},
		TableName: "pokemons",
	})
	c.Error(err)
	c.Contains(err.Error(), "invalid stream view type")

	terr, ok := err.(types.Error)
	c.True(ok)
	c.Equal(types.ErrCodeValidationException, terr.Code())

	// rejected before any request went out
	c.Zero(rec.calls)
}

func TestCreateTableSendsStreamSpecification(t *testing.T) {
	c := require.New(t)

	rec := &recordedRequest{}
	srv := newTestServer(t, cannedHandler(t, rec, http.StatusOK, `{}`))

	client := newTestClient(t, srv.URL)

	_, err := client.CreateTable(context.Background(), &types.CreateTableInput{
		KeySchema: []types.KeySchemaElement{
			{AttributeName: "id", KeyType: types.KeyTypeHash},
		},
		StreamSpecification: &types.StreamSpecification{
			StreamEnabled:  true,
			StreamViewType: types.StreamViewTypeNewAndOldImages,
		},
		TableName: "pokemons",
	})
	c.NoError(err)

	body := decodeBody(t, rec.body)
	c.Equal(map[string]interface{}{
		"StreamEnabled":  true,
		"StreamViewType": "NEW_AND_OLD_IMAGES",
	}, body["StreamSpecification"])
}

func TestDeleteTable(t *testing.T) {
	c := require.New(t)

	rec := &recordedRequest{}
	srv := newTestServer(t, cannedHandler(t, rec, http.StatusOK,
		`{"TableDescription":{"TableName":"pokemons","TableStatus":"DELETING"}}`))

	client := newTestClient(t, srv.URL)

	out, err := client.DeleteTable(context.Background(), &types.DeleteTableInput{TableName: "pokemons"})
	c.NoError(err)

	c.JSONEq(`{"TableName":"pokemons"}`, string(rec.body))
	c.Equal(types.TableStatusDeleting, out.TableDescription.TableStatus)
}

func TestDescribeTableDecodesDescription(t *testing.T) {
	c := require.New(t)

	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"Table": {
				"AttributeDefinitions": [
					{"AttributeName": "id", "AttributeType": "S"},
					{"AttributeName": "lvl", "AttributeType": "N"}
				],
				"CreationDateTime": 1421866952.062,
				"ItemCount": 151,
				"KeySchema": [
					{"AttributeName": "id", "KeyType": "HASH"},
					{"AttributeName": "lvl", "KeyType": "RANGE"}
				],
				"ProvisionedThroughput": {
					"NumberOfDecreasesToday": 0,
					"ReadCapacityUnits": 5,
					"WriteCapacityUnits": 5
				},
				"TableArn": "arn:aws:dynamodb:us-east-1:123456789012:table/pokemons",
				"TableName": "pokemons",
				"TableSizeBytes": 4096,
				"TableStatus": "ACTIVE"
			}
		}`))
	})

	client := newTestClient(t, srv.URL)

	out, err := client.DescribeTable(context.Background(), &types.DescribeTableInput{TableName: "pokemons"})
	c.NoError(err)

	table := out.Table
	c.Equal("pokemons", table.TableName)
	c.Equal(types.TableStatusActive, table.TableStatus)
	c.Equal(int64(151), table.ItemCount)
	c.Equal(int64(4096), table.TableSizeBytes)
	c.InDelta(1421866952.062, table.CreationDateTime, 0.001)
	c.Len(table.AttributeDefinitions, 2)
	c.Equal(types.KeyTypeRange, table.KeySchema[1].KeyType)
	c.Equal(int64(5), table.ProvisionedThroughput.ReadCapacityUnits)
}

func TestListTablesPagination(t *testing.T) {
	c := require.New(t)

	rec := &recordedRequest{}
	srv := newTestServer(t, cannedHandler(t, rec, http.StatusOK,
		`{"TableNames":["pokemons","trainers"],"LastEvaluatedTableName":"trainers"}`))

	client := newTestClient(t, srv.URL)

	out, err := client.ListTables(context.Background(), &types.ListTablesInput{
		ExclusiveStartTableName: "badges",
		Limit:                   2,
	})
	c.NoError(err)

	c.JSONEq(`{"ExclusiveStartTableName":"badges","Limit":2}`, string(rec.body))
	c.Equal([]string{"pokemons", "trainers"}, out.TableNames)
	c.Equal("trainers", out.LastEvaluatedTableName)
}

func TestUpdateTableRejectsInvalidStreamViewType(t *testing.T) {
	c := require.New(t)

	rec := &recordedRequest{}
	srv := newTestServer(t, cannedHandler(t, rec, http.StatusOK, `{}`))

	client := newTestClient(t, srv.URL)

	_, err := client.UpdateTable(context.Background(), &types.UpdateTableInput{
		StreamSpecification: &types.StreamSpecification{
			StreamEnabled:  true,
			StreamViewType: "NONE",
		},
		TableName: "pokemons",
	})
	c.Error(err)
	c.Contains(err.Error(), "invalid stream view type")
	c.Zero(rec.calls)
}

func TestUpdateTableSendsIndexUpdates(t *testing.T) {
	c := require.New(t)

	rec := &recordedRequest{}
	srv := newTestServer(t, cannedHandler(t, rec, http.StatusOK,
		`{"TableDescription":{"TableName":"pokemons","TableStatus":"UPDATING"}}`))

	client := newTestClient(t, srv.URL)

	out, err := client.UpdateTable(context.Background(), &types.UpdateTableInput{
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: "type", AttributeType: types.ScalarAttributeTypeS},
		},
		GlobalSecondaryIndexUpdates: []types.GlobalSecondaryIndexUpdate{
			{
				Create: &types.CreateGlobalSecondaryIndexAction{
					IndexName: "by-type",
					KeySchema: []types.KeySchemaElement{
						{AttributeName: "type", KeyType: types.KeyTypeHash},
					},
					Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
					ProvisionedThroughput: &types.ProvisionedThroughput{
						ReadCapacityUnits:  1,
						WriteCapacityUnits: 1,
					},
				},
			},
		},
		TableName: "pokemons",
	})
	c.NoError(err)

	body := decodeBody(t, rec.body)
	updates, ok := body["GlobalSecondaryIndexUpdates"].([]interface{})
	c.True(ok)
	c.Len(updates, 1)

	create, ok := updates[0].(map[string]interface{})["Create"].(map[string]interface{})
	c.True(ok)
	c.Equal("by-type", create["IndexName"])

	c.Equal(types.TableStatusUpdating, out.TableDescription.TableStatus)
}
