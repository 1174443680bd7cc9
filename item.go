package dynaclient

import (
	"context"

	"github.com/truora/dynaclient/attr"
	"github.com/truora/dynaclient/types"
)

// Operation payloads embed the public input and shadow its native fields
// with wire counterparts so the whole request serializes in one
// json.Marshal call.

type deleteItemPayload struct {
	*types.DeleteItemInput
	ExpressionAttributeValues map[string]*attr.AttributeValue `json:"ExpressionAttributeValues,omitempty"`
	Key                       map[string]*attr.AttributeValue `json:"Key"`
}

type getItemPayload struct {
	*types.GetItemInput
	Key map[string]*attr.AttributeValue `json:"Key"`
}

type putItemPayload struct {
	*types.PutItemInput
	ExpressionAttributeValues map[string]*attr.AttributeValue `json:"ExpressionAttributeValues,omitempty"`
	Item                      map[string]*attr.AttributeValue `json:"Item"`
}

type updateItemPayload struct {
	*types.UpdateItemInput
	ExpressionAttributeValues map[string]*attr.AttributeValue `json:"ExpressionAttributeValues,omitempty"`
	Key                       map[string]*attr.AttributeValue `json:"Key"`
}

type getItemEnvelope struct {
	ConsumedCapacity *types.ConsumedCapacity         `json:"ConsumedCapacity"`
	Item             map[string]*attr.AttributeValue `json:"Item"`
}

// writeItemEnvelope is the reply shape shared by PutItem, UpdateItem and
// DeleteItem.
type writeItemEnvelope struct {
	Attributes            map[string]*attr.AttributeValue `json:"Attributes"`
	ConsumedCapacity      *types.ConsumedCapacity         `json:"ConsumedCapacity"`
	ItemCollectionMetrics *itemCollectionMetricsWire      `json:"ItemCollectionMetrics"`
}

// DeleteItem deletes a single item by primary key. Set ReturnValues to
// ALL_OLD to receive the attributes the item had before the delete.
func (c *Client) DeleteItem(ctx context.Context, input *types.DeleteItemInput) (*types.DeleteItemOutput, error) {
	key, err := encodeItem(input.Key)
	if err != nil {
		return nil, err
	}

	values, err := encodeItem(input.ExpressionAttributeValues)
	if err != nil {
		return nil, err
	}

	payload := &deleteItemPayload{
		DeleteItemInput:           input,
		ExpressionAttributeValues: values,
		Key:                       key,
	}

	var envelope writeItemEnvelope

	if err := c.send(ctx, "DeleteItem", payload, &envelope); err != nil {
		return nil, err
	}

	attrs, metrics, err := c.decodeWriteItemEnvelope(&envelope)
	if err != nil {
		return nil, err
	}

	return &types.DeleteItemOutput{
		Attributes:            attrs,
		ConsumedCapacity:      envelope.ConsumedCapacity,
		ItemCollectionMetrics: metrics,
	}, nil
}

// GetItem returns the attributes of the item with the given primary key.
// The returned Item is nil when no matching item exists.
func (c *Client) GetItem(ctx context.Context, input *types.GetItemInput) (*types.GetItemOutput, error) {
	key, err := encodeItem(input.Key)
	if err != nil {
		return nil, err
	}

	payload := &getItemPayload{GetItemInput: input, Key: key}

	var envelope getItemEnvelope

	if err := c.send(ctx, "GetItem", payload, &envelope); err != nil {
		return nil, err
	}

	item, err := c.decodeItem(envelope.Item)
	if err != nil {
		return nil, err
	}

	return &types.GetItemOutput{
		ConsumedCapacity: envelope.ConsumedCapacity,
		Item:             item,
	}, nil
}

// PutItem creates a new item or fully replaces an existing one with the
// same primary key.
func (c *Client) PutItem(ctx context.Context, input *types.PutItemInput) (*types.PutItemOutput, error) {
	item, err := encodeItem(input.Item)
	if err != nil {
		return nil, err
	}

	values, err := encodeItem(input.ExpressionAttributeValues)
	if err != nil {
		return nil, err
	}

	payload := &putItemPayload{
		PutItemInput:              input,
		ExpressionAttributeValues: values,
		Item:                      item,
	}

	var envelope writeItemEnvelope

	if err := c.send(ctx, "PutItem", payload, &envelope); err != nil {
		return nil, err
	}

	attrs, metrics, err := c.decodeWriteItemEnvelope(&envelope)
	if err != nil {
		return nil, err
	}

	return &types.PutItemOutput{
		Attributes:            attrs,
		ConsumedCapacity:      envelope.ConsumedCapacity,
		ItemCollectionMetrics: metrics,
	}, nil
}

// UpdateItem edits the attributes of an item by primary key, or creates the
// item when it does not exist yet.
func (c *Client) UpdateItem(ctx context.Context, input *types.UpdateItemInput) (*types.UpdateItemOutput, error) {
	key, err := encodeItem(input.Key)
	if err != nil {
		return nil, err
	}

	values, err := encodeItem(input.ExpressionAttributeValues)
	if err != nil {
		return nil, err
	}

	payload := &updateItemPayload{
		UpdateItemInput:           input,
		ExpressionAttributeValues: values,
		Key:                       key,
	}

	var envelope writeItemEnvelope

	if err := c.send(ctx, "UpdateItem", payload, &envelope); err != nil {
		return nil, err
	}

	attrs, metrics, err := c.decodeWriteItemEnvelope(&envelope)
	if err != nil {
		return nil, err
	}

	return &types.UpdateItemOutput{
		Attributes:            attrs,
		ConsumedCapacity:      envelope.ConsumedCapacity,
		ItemCollectionMetrics: metrics,
	}, nil
}

func (c *Client) decodeWriteItemEnvelope(envelope *writeItemEnvelope) (map[string]attr.Value, *types.ItemCollectionMetrics, error) {
	attrs, err := c.decodeItem(envelope.Attributes)
	if err != nil {
		return nil, nil, err
	}

	metrics, err := c.decodeItemCollectionMetrics(envelope.ItemCollectionMetrics)
	if err != nil {
		return nil, nil, err
	}

	return attrs, metrics, nil
}
