package dynaclient

import (
	"context"

	"github.com/truora/dynaclient/attr"
	"github.com/truora/dynaclient/types"
)

type queryPayload struct {
	*types.QueryInput
	ExclusiveStartKey         map[string]*attr.AttributeValue `json:"ExclusiveStartKey,omitempty"`
	ExpressionAttributeValues map[string]*attr.AttributeValue `json:"ExpressionAttributeValues,omitempty"`
}

type scanPayload struct {
	*types.ScanInput
	ExclusiveStartKey         map[string]*attr.AttributeValue `json:"ExclusiveStartKey,omitempty"`
	ExpressionAttributeValues map[string]*attr.AttributeValue `json:"ExpressionAttributeValues,omitempty"`
}

// queryEnvelope is the reply shape shared by Query and Scan.
type queryEnvelope struct {
	ConsumedCapacity *types.ConsumedCapacity           `json:"ConsumedCapacity"`
	Count            int64                             `json:"Count"`
	Items            []map[string]*attr.AttributeValue `json:"Items"`
	LastEvaluatedKey map[string]*attr.AttributeValue   `json:"LastEvaluatedKey"`
	ScannedCount     int64                             `json:"ScannedCount"`
}

// Query finds items based on primary key values, on the table itself or on
// a secondary index. A non-nil LastEvaluatedKey in the output means more
// results remain; pass it as ExclusiveStartKey to fetch the next page.
func (c *Client) Query(ctx context.Context, input *types.QueryInput) (*types.QueryOutput, error) {
	startKey, err := encodeItem(input.ExclusiveStartKey)
	if err != nil {
		return nil, err
	}

	values, err := encodeItem(input.ExpressionAttributeValues)
	if err != nil {
		return nil, err
	}

	payload := &queryPayload{
		QueryInput:                input,
		ExclusiveStartKey:         startKey,
		ExpressionAttributeValues: values,
	}

	var envelope queryEnvelope

	if err := c.send(ctx, "Query", payload, &envelope); err != nil {
		return nil, err
	}

	items, lastKey, err := c.decodeQueryEnvelope(&envelope)
	if err != nil {
		return nil, err
	}

	return &types.QueryOutput{
		ConsumedCapacity: envelope.ConsumedCapacity,
		Count:            envelope.Count,
		Items:            items,
		LastEvaluatedKey: lastKey,
		ScannedCount:     envelope.ScannedCount,
	}, nil
}

// Scan reads every item in the table or index, subject to FilterExpression.
// Pagination works as in Query; Segment and TotalSegments split the table
// across workers for a parallel scan.
func (c *Client) Scan(ctx context.Context, input *types.ScanInput) (*types.ScanOutput, error) {
	startKey, err := encodeItem(input.ExclusiveStartKey)
	if err != nil {
		return nil, err
	}

	values, err := encodeItem(input.ExpressionAttributeValues)
	if err != nil {
		return nil, err
	}

	payload := &scanPayload{
		ScanInput:                 input,
		ExclusiveStartKey:         startKey,
		ExpressionAttributeValues: values,
	}

	var envelope queryEnvelope

	if err := c.send(ctx, "Scan", payload, &envelope); err != nil {
		return nil, err
	}

	items, lastKey, err := c.decodeQueryEnvelope(&envelope)
	if err != nil {
		return nil, err
	}

	return &types.ScanOutput{
		ConsumedCapacity: envelope.ConsumedCapacity,
		Count:            envelope.Count,
		Items:            items,
		LastEvaluatedKey: lastKey,
		ScannedCount:     envelope.ScannedCount,
	}, nil
}

func (c *Client) decodeQueryEnvelope(envelope *queryEnvelope) ([]map[string]attr.Value, map[string]attr.Value, error) {
	items, err := c.decodeItems(envelope.Items)
	if err != nil {
		return nil, nil, err
	}

	lastKey, err := c.decodeItem(envelope.LastEvaluatedKey)
	if err != nil {
		return nil, nil, err
	}

	return items, lastKey, nil
}
