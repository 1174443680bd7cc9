package types

import (
	"github.com/truora/dynaclient/attr"
)

// AttributeDefinition describes one attribute used by the table's key schema
// or by a secondary index key schema.
type AttributeDefinition struct {
	AttributeName string `json:"AttributeName"`
	AttributeType string `json:"AttributeType"`
}

type KeySchemaElement struct {
	AttributeName string `json:"AttributeName"`
	KeyType       string `json:"KeyType"`
}

type ProvisionedThroughput struct {
	ReadCapacityUnits  int64 `json:"ReadCapacityUnits"`
	WriteCapacityUnits int64 `json:"WriteCapacityUnits"`
}

// ProvisionedThroughputDescription is the read-only form returned inside
// table and index descriptions. Timestamps are epoch seconds.
type ProvisionedThroughputDescription struct {
	LastDecreaseDateTime   float64 `json:"LastDecreaseDateTime,omitempty"`
	LastIncreaseDateTime   float64 `json:"LastIncreaseDateTime,omitempty"`
	NumberOfDecreasesToday int64   `json:"NumberOfDecreasesToday,omitempty"`
	ReadCapacityUnits      int64   `json:"ReadCapacityUnits"`
	WriteCapacityUnits     int64   `json:"WriteCapacityUnits"`
}

type Projection struct {
	NonKeyAttributes []string `json:"NonKeyAttributes,omitempty"`
	ProjectionType   string   `json:"ProjectionType,omitempty"`
}

// Represents the properties of a global secondary index.
type GlobalSecondaryIndex struct {
	IndexName             string                 `json:"IndexName"`
	KeySchema             []KeySchemaElement     `json:"KeySchema"`
	Projection            *Projection            `json:"Projection"`
	ProvisionedThroughput *ProvisionedThroughput `json:"ProvisionedThroughput,omitempty"`
}

// Represents the properties of a local secondary index.
type LocalSecondaryIndex struct {
	IndexName  string             `json:"IndexName"`
	KeySchema  []KeySchemaElement `json:"KeySchema"`
	Projection *Projection        `json:"Projection"`
}

// Represents the properties of a global secondary index.
type GlobalSecondaryIndexDescription struct {
	Backfilling           bool                              `json:"Backfilling,omitempty"`
	IndexArn              string                            `json:"IndexArn,omitempty"`
	IndexName             string                            `json:"IndexName,omitempty"`
	IndexSizeBytes        int64                             `json:"IndexSizeBytes,omitempty"`
	IndexStatus           string                            `json:"IndexStatus,omitempty"`
	ItemCount             int64                             `json:"ItemCount,omitempty"`
	KeySchema             []KeySchemaElement                `json:"KeySchema,omitempty"`
	Projection            *Projection                       `json:"Projection,omitempty"`
	ProvisionedThroughput *ProvisionedThroughputDescription `json:"ProvisionedThroughput,omitempty"`
}

// Represents the properties of a local secondary index.
type LocalSecondaryIndexDescription struct {
	IndexArn       string             `json:"IndexArn,omitempty"`
	IndexName      string             `json:"IndexName,omitempty"`
	IndexSizeBytes int64              `json:"IndexSizeBytes,omitempty"`
	ItemCount      int64              `json:"ItemCount,omitempty"`
	KeySchema      []KeySchemaElement `json:"KeySchema,omitempty"`
	Projection     *Projection        `json:"Projection,omitempty"`
}

type GlobalSecondaryIndexUpdate struct {
	Create *CreateGlobalSecondaryIndexAction `json:"Create,omitempty"`
	Delete *DeleteGlobalSecondaryIndexAction `json:"Delete,omitempty"`
	Update *UpdateGlobalSecondaryIndexAction `json:"Update,omitempty"`
}

// Represents a new global secondary index to be added to an existing table.
type CreateGlobalSecondaryIndexAction struct {
	IndexName             string                 `json:"IndexName"`
	KeySchema             []KeySchemaElement     `json:"KeySchema"`
	Projection            *Projection            `json:"Projection"`
	ProvisionedThroughput *ProvisionedThroughput `json:"ProvisionedThroughput,omitempty"`
}

// Represents a global secondary index to be deleted from an existing table.
type DeleteGlobalSecondaryIndexAction struct {
	IndexName string `json:"IndexName"`
}

// Represents the new provisioned throughput settings to be applied to a global
// secondary index.
type UpdateGlobalSecondaryIndexAction struct {
	IndexName             string                 `json:"IndexName"`
	ProvisionedThroughput *ProvisionedThroughput `json:"ProvisionedThroughput"`
}

type StreamSpecification struct {
	StreamEnabled  bool   `json:"StreamEnabled"`
	StreamViewType string `json:"StreamViewType,omitempty"`
}

// Represents the properties of a table. CreationDateTime is epoch seconds.
type TableDescription struct {
	AttributeDefinitions   []AttributeDefinition             `json:"AttributeDefinitions,omitempty"`
	CreationDateTime       float64                           `json:"CreationDateTime,omitempty"`
	GlobalSecondaryIndexes []GlobalSecondaryIndexDescription `json:"GlobalSecondaryIndexes,omitempty"`
	GlobalTableVersion     string                            `json:"GlobalTableVersion,omitempty"`
	ItemCount              int64                             `json:"ItemCount,omitempty"`
	KeySchema              []KeySchemaElement                `json:"KeySchema,omitempty"`
	LatestStreamArn        string                            `json:"LatestStreamArn,omitempty"`
	LatestStreamLabel      string                            `json:"LatestStreamLabel,omitempty"`
	LocalSecondaryIndexes  []LocalSecondaryIndexDescription  `json:"LocalSecondaryIndexes,omitempty"`
	ProvisionedThroughput  *ProvisionedThroughputDescription `json:"ProvisionedThroughput,omitempty"`
	StreamSpecification    *StreamSpecification              `json:"StreamSpecification,omitempty"`
	TableArn               string                            `json:"TableArn,omitempty"`
	TableId                string                            `json:"TableId,omitempty"`
	TableName              string                            `json:"TableName,omitempty"`
	TableSizeBytes         int64                             `json:"TableSizeBytes,omitempty"`
	TableStatus            string                            `json:"TableStatus,omitempty"`
}

type Capacity struct {
	CapacityUnits float64 `json:"CapacityUnits,omitempty"`
}

// ConsumedCapacity reports the throughput consumed by an operation, broken
// down per table and index when INDEXES detail was requested.
type ConsumedCapacity struct {
	CapacityUnits          float64             `json:"CapacityUnits,omitempty"`
	GlobalSecondaryIndexes map[string]Capacity `json:"GlobalSecondaryIndexes,omitempty"`
	LocalSecondaryIndexes  map[string]Capacity `json:"LocalSecondaryIndexes,omitempty"`
	Table                  *Capacity           `json:"Table,omitempty"`
	TableName              string              `json:"TableName,omitempty"`
}

// ItemCollectionMetrics estimates the size of the item collection touched by
// a write. The collection key comes back in native form.
type ItemCollectionMetrics struct {
	ItemCollectionKey   map[string]attr.Value `json:"-"`
	SizeEstimateRangeGB []float64             `json:"SizeEstimateRangeGB,omitempty"`
}

// KeysAndAttributes names the keys to fetch from one table in a BatchGetItem
// request. Keys travel in native form and are converted at the protocol
// boundary.
type KeysAndAttributes struct {
	ConsistentRead           bool                    `json:"ConsistentRead,omitempty"`
	ExpressionAttributeNames map[string]string       `json:"ExpressionAttributeNames,omitempty"`
	Keys                     []map[string]attr.Value `json:"-"`
	ProjectionExpression     string                  `json:"ProjectionExpression,omitempty"`
}

// WriteRequest is one put or delete inside a BatchWriteItem request. Exactly
// one of the two fields is set.
type WriteRequest struct {
	DeleteRequest *DeleteRequest `json:"DeleteRequest,omitempty"`
	PutRequest    *PutRequest    `json:"PutRequest,omitempty"`
}

type PutRequest struct {
	Item map[string]attr.Value `json:"-"`
}

type DeleteRequest struct {
	Key map[string]attr.Value `json:"-"`
}

// Table statuses reported in TableDescription.TableStatus.
const (
	TableStatusActive   = "ACTIVE"
	TableStatusCreating = "CREATING"
	TableStatusDeleting = "DELETING"
	TableStatusDisabled = "DISABLED"
	TableStatusUpdating = "UPDATING"
)

// Stream view types accepted by StreamSpecification.StreamViewType.
const (
	StreamViewTypeNewImage        = "NEW_IMAGE"
	StreamViewTypeOldImage        = "OLD_IMAGE"
	StreamViewTypeNewAndOldImages = "NEW_AND_OLD_IMAGES"
	StreamViewTypeKeysOnly        = "KEYS_ONLY"
)

const (
	KeyTypeHash  = "HASH"
	KeyTypeRange = "RANGE"
)

const (
	ScalarAttributeTypeB = "B"
	ScalarAttributeTypeN = "N"
	ScalarAttributeTypeS = "S"
)

const (
	ProjectionTypeAll      = "ALL"
	ProjectionTypeInclude  = "INCLUDE"
	ProjectionTypeKeysOnly = "KEYS_ONLY"
)

const (
	ReturnValuesNone       = "NONE"
	ReturnValuesAllOld     = "ALL_OLD"
	ReturnValuesUpdatedOld = "UPDATED_OLD"
	ReturnValuesAllNew     = "ALL_NEW"
	ReturnValuesUpdatedNew = "UPDATED_NEW"
)

const (
	ReturnConsumedCapacityIndexes = "INDEXES"
	ReturnConsumedCapacityTotal   = "TOTAL"
	ReturnConsumedCapacityNone    = "NONE"
)

const (
	ReturnItemCollectionMetricsSize = "SIZE"
	ReturnItemCollectionMetricsNone = "NONE"
)

const (
	SelectAllAttributes          = "ALL_ATTRIBUTES"
	SelectAllProjectedAttributes = "ALL_PROJECTED_ATTRIBUTES"
	SelectSpecificAttributes     = "SPECIFIC_ATTRIBUTES"
	SelectCount                  = "COUNT"
)
