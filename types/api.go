package types

import (
	"github.com/truora/dynaclient/attr"
)

// Item-bearing fields on the structs below hold native values and are tagged
// "-": the client converts them to and from wire form when it builds the
// request payload and decodes the response envelope.

// Represents the input of a BatchGetItem operation.
type BatchGetItemInput struct {
	RequestItems           map[string]KeysAndAttributes `json:"-"`
	ReturnConsumedCapacity string                       `json:"ReturnConsumedCapacity,omitempty"`
}

type BatchGetItemOutput struct {
	ConsumedCapacity []ConsumedCapacity                 `json:"ConsumedCapacity,omitempty"`
	Responses        map[string][]map[string]attr.Value `json:"-"`
	UnprocessedKeys  map[string]KeysAndAttributes       `json:"-"`
}

// Represents the input of a BatchWriteItem operation.
type BatchWriteItemInput struct {
	RequestItems                map[string][]WriteRequest `json:"-"`
	ReturnConsumedCapacity      string                    `json:"ReturnConsumedCapacity,omitempty"`
	ReturnItemCollectionMetrics string                    `json:"ReturnItemCollectionMetrics,omitempty"`
}

type BatchWriteItemOutput struct {
	ConsumedCapacity      []ConsumedCapacity                 `json:"ConsumedCapacity,omitempty"`
	ItemCollectionMetrics map[string][]ItemCollectionMetrics `json:"-"`
	UnprocessedItems      map[string][]WriteRequest          `json:"-"`
}

// Represents the input of a CreateTable operation. When ProvisionedThroughput
// is nil the client fills in one read and one write capacity unit.
type CreateTableInput struct {
	AttributeDefinitions   []AttributeDefinition  `json:"AttributeDefinitions"`
	GlobalSecondaryIndexes []GlobalSecondaryIndex `json:"GlobalSecondaryIndexes,omitempty"`
	KeySchema              []KeySchemaElement     `json:"KeySchema"`
	LocalSecondaryIndexes  []LocalSecondaryIndex  `json:"LocalSecondaryIndexes,omitempty"`
	ProvisionedThroughput  *ProvisionedThroughput `json:"ProvisionedThroughput,omitempty"`
	StreamSpecification    *StreamSpecification   `json:"StreamSpecification,omitempty"`
	TableName              string                 `json:"TableName"`
}

type CreateTableOutput struct {
	TableDescription *TableDescription `json:"TableDescription,omitempty"`
}

// Represents the input of a DeleteItem operation.
type DeleteItemInput struct {
	ConditionExpression         string                `json:"ConditionExpression,omitempty"`
	ExpressionAttributeNames    map[string]string     `json:"ExpressionAttributeNames,omitempty"`
	ExpressionAttributeValues   map[string]attr.Value `json:"-"`
	Key                         map[string]attr.Value `json:"-"`
	ReturnConsumedCapacity      string                `json:"ReturnConsumedCapacity,omitempty"`
	ReturnItemCollectionMetrics string                `json:"ReturnItemCollectionMetrics,omitempty"`
	ReturnValues                string                `json:"ReturnValues,omitempty"`
	TableName                   string                `json:"TableName"`
}

type DeleteItemOutput struct {
	Attributes            map[string]attr.Value  `json:"-"`
	ConsumedCapacity      *ConsumedCapacity      `json:"ConsumedCapacity,omitempty"`
	ItemCollectionMetrics *ItemCollectionMetrics `json:"-"`
}

// Represents the input of a DeleteTable operation.
type DeleteTableInput struct {
	TableName string `json:"TableName"`
}

type DeleteTableOutput struct {
	TableDescription *TableDescription `json:"TableDescription,omitempty"`
}

// Represents the input of a DescribeTable operation.
type DescribeTableInput struct {
	TableName string `json:"TableName"`
}

type DescribeTableOutput struct {
	Table *TableDescription `json:"Table,omitempty"`
}

// Represents the input of a GetItem operation.
type GetItemInput struct {
	ConsistentRead           bool                  `json:"ConsistentRead,omitempty"`
	ExpressionAttributeNames map[string]string     `json:"ExpressionAttributeNames,omitempty"`
	Key                      map[string]attr.Value `json:"-"`
	ProjectionExpression     string                `json:"ProjectionExpression,omitempty"`
	ReturnConsumedCapacity   string                `json:"ReturnConsumedCapacity,omitempty"`
	TableName                string                `json:"TableName"`
}

type GetItemOutput struct {
	ConsumedCapacity *ConsumedCapacity     `json:"ConsumedCapacity,omitempty"`
	Item             map[string]attr.Value `json:"-"`
}

// Represents the input of a ListTables operation.
type ListTablesInput struct {
	ExclusiveStartTableName string `json:"ExclusiveStartTableName,omitempty"`
	Limit                   int64  `json:"Limit,omitempty"`
}

type ListTablesOutput struct {
	LastEvaluatedTableName string   `json:"LastEvaluatedTableName,omitempty"`
	TableNames             []string `json:"TableNames,omitempty"`
}

// Represents the input of a PutItem operation.
type PutItemInput struct {
	ConditionExpression         string                `json:"ConditionExpression,omitempty"`
	ExpressionAttributeNames    map[string]string     `json:"ExpressionAttributeNames,omitempty"`
	ExpressionAttributeValues   map[string]attr.Value `json:"-"`
	Item                        map[string]attr.Value `json:"-"`
	ReturnConsumedCapacity      string                `json:"ReturnConsumedCapacity,omitempty"`
	ReturnItemCollectionMetrics string                `json:"ReturnItemCollectionMetrics,omitempty"`
	ReturnValues                string                `json:"ReturnValues,omitempty"`
	TableName                   string                `json:"TableName"`
}

type PutItemOutput struct {
	Attributes            map[string]attr.Value  `json:"-"`
	ConsumedCapacity      *ConsumedCapacity      `json:"ConsumedCapacity,omitempty"`
	ItemCollectionMetrics *ItemCollectionMetrics `json:"-"`
}

// Represents the input of a Query operation. ScanIndexForward defaults to
// ascending order when nil.
type QueryInput struct {
	ConsistentRead            bool                  `json:"ConsistentRead,omitempty"`
	ExclusiveStartKey         map[string]attr.Value `json:"-"`
	ExpressionAttributeNames  map[string]string     `json:"ExpressionAttributeNames,omitempty"`
	ExpressionAttributeValues map[string]attr.Value `json:"-"`
	FilterExpression          string                `json:"FilterExpression,omitempty"`
	IndexName                 string                `json:"IndexName,omitempty"`
	KeyConditionExpression    string                `json:"KeyConditionExpression,omitempty"`
	Limit                     int64                 `json:"Limit,omitempty"`
	ProjectionExpression      string                `json:"ProjectionExpression,omitempty"`
	ReturnConsumedCapacity    string                `json:"ReturnConsumedCapacity,omitempty"`
	ScanIndexForward          *bool                 `json:"ScanIndexForward,omitempty"`
	Select                    string                `json:"Select,omitempty"`
	TableName                 string                `json:"TableName"`
}

type QueryOutput struct {
	ConsumedCapacity *ConsumedCapacity       `json:"ConsumedCapacity,omitempty"`
	Count            int64                   `json:"Count"`
	Items            []map[string]attr.Value `json:"-"`
	LastEvaluatedKey map[string]attr.Value   `json:"-"`
	ScannedCount     int64                   `json:"ScannedCount"`
}

// Represents the input of a Scan operation. Segment is a pointer because
// segment zero is a valid value in a parallel scan.
type ScanInput struct {
	ConsistentRead            bool                  `json:"ConsistentRead,omitempty"`
	ExclusiveStartKey         map[string]attr.Value `json:"-"`
	ExpressionAttributeNames  map[string]string     `json:"ExpressionAttributeNames,omitempty"`
	ExpressionAttributeValues map[string]attr.Value `json:"-"`
	FilterExpression          string                `json:"FilterExpression,omitempty"`
	IndexName                 string                `json:"IndexName,omitempty"`
	Limit                     int64                 `json:"Limit,omitempty"`
	ProjectionExpression      string                `json:"ProjectionExpression,omitempty"`
	ReturnConsumedCapacity    string                `json:"ReturnConsumedCapacity,omitempty"`
	Segment                   *int64                `json:"Segment,omitempty"`
	Select                    string                `json:"Select,omitempty"`
	TableName                 string                `json:"TableName"`
	TotalSegments             int64                 `json:"TotalSegments,omitempty"`
}

type ScanOutput struct {
	ConsumedCapacity *ConsumedCapacity       `json:"ConsumedCapacity,omitempty"`
	Count            int64                   `json:"Count"`
	Items            []map[string]attr.Value `json:"-"`
	LastEvaluatedKey map[string]attr.Value   `json:"-"`
	ScannedCount     int64                   `json:"ScannedCount"`
}

// Represents the input of an UpdateItem operation.
type UpdateItemInput struct {
	ConditionExpression         string                `json:"ConditionExpression,omitempty"`
	ExpressionAttributeNames    map[string]string     `json:"ExpressionAttributeNames,omitempty"`
	ExpressionAttributeValues   map[string]attr.Value `json:"-"`
	Key                         map[string]attr.Value `json:"-"`
	ReturnConsumedCapacity      string                `json:"ReturnConsumedCapacity,omitempty"`
	ReturnItemCollectionMetrics string                `json:"ReturnItemCollectionMetrics,omitempty"`
	ReturnValues                string                `json:"ReturnValues,omitempty"`
	TableName                   string                `json:"TableName"`
	UpdateExpression            string                `json:"UpdateExpression,omitempty"`
}

type UpdateItemOutput struct {
	Attributes            map[string]attr.Value  `json:"-"`
	ConsumedCapacity      *ConsumedCapacity      `json:"ConsumedCapacity,omitempty"`
	ItemCollectionMetrics *ItemCollectionMetrics `json:"-"`
}

// Represents the input of an UpdateTable operation.
type UpdateTableInput struct {
	AttributeDefinitions        []AttributeDefinition        `json:"AttributeDefinitions,omitempty"`
	GlobalSecondaryIndexUpdates []GlobalSecondaryIndexUpdate `json:"GlobalSecondaryIndexUpdates,omitempty"`
	ProvisionedThroughput       *ProvisionedThroughput       `json:"ProvisionedThroughput,omitempty"`
	StreamSpecification         *StreamSpecification         `json:"StreamSpecification,omitempty"`
	TableName                   string                       `json:"TableName"`
}

type UpdateTableOutput struct {
	TableDescription *TableDescription `json:"TableDescription,omitempty"`
}
