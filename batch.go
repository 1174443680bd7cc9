package dynaclient

import (
	"context"

	"github.com/truora/dynaclient/attr"
	"github.com/truora/dynaclient/types"
)

type batchGetItemPayload struct {
	*types.BatchGetItemInput
	RequestItems map[string]keysAndAttributesWire `json:"RequestItems"`
}

type batchWriteItemPayload struct {
	*types.BatchWriteItemInput
	RequestItems map[string][]writeRequestWire `json:"RequestItems"`
}

type batchGetItemEnvelope struct {
	ConsumedCapacity []types.ConsumedCapacity                     `json:"ConsumedCapacity"`
	Responses        map[string][]map[string]*attr.AttributeValue `json:"Responses"`
	UnprocessedKeys  map[string]keysAndAttributesWire             `json:"UnprocessedKeys"`
}

type batchWriteItemEnvelope struct {
	ConsumedCapacity      []types.ConsumedCapacity               `json:"ConsumedCapacity"`
	ItemCollectionMetrics map[string][]itemCollectionMetricsWire `json:"ItemCollectionMetrics"`
	UnprocessedItems      map[string][]writeRequestWire          `json:"UnprocessedItems"`
}

// BatchGetItem reads up to one hundred items from one or more tables in a
// single request. Keys the service did not get to come back in
// UnprocessedKeys; resubmit them in a follow-up request.
func (c *Client) BatchGetItem(ctx context.Context, input *types.BatchGetItemInput) (*types.BatchGetItemOutput, error) {
	requestItems := make(map[string]keysAndAttributesWire, len(input.RequestItems))

	for table, keys := range input.RequestItems {
		wire, err := encodeKeysAndAttributes(keys)
		if err != nil {
			return nil, err
		}

		requestItems[table] = wire
	}

	payload := &batchGetItemPayload{
		BatchGetItemInput: input,
		RequestItems:      requestItems,
	}

	var envelope batchGetItemEnvelope

	if err := c.send(ctx, "BatchGetItem", payload, &envelope); err != nil {
		return nil, err
	}

	responses, err := c.decodeBatchResponses(envelope.Responses)
	if err != nil {
		return nil, err
	}

	unprocessed, err := c.decodeUnprocessedKeys(envelope.UnprocessedKeys)
	if err != nil {
		return nil, err
	}

	return &types.BatchGetItemOutput{
		ConsumedCapacity: envelope.ConsumedCapacity,
		Responses:        responses,
		UnprocessedKeys:  unprocessed,
	}, nil
}

// BatchWriteItem puts or deletes up to twenty-five items across tables in a
// single request. Writes the service rejected for capacity reasons come
// back in UnprocessedItems; resubmit them in a follow-up request.
func (c *Client) BatchWriteItem(ctx context.Context, input *types.BatchWriteItemInput) (*types.BatchWriteItemOutput, error) {
	requestItems := make(map[string][]writeRequestWire, len(input.RequestItems))

	for table, writes := range input.RequestItems {
		wire, err := encodeWriteRequests(writes)
		if err != nil {
			return nil, err
		}

		requestItems[table] = wire
	}

	payload := &batchWriteItemPayload{
		BatchWriteItemInput: input,
		RequestItems:        requestItems,
	}

	var envelope batchWriteItemEnvelope

	if err := c.send(ctx, "BatchWriteItem", payload, &envelope); err != nil {
		return nil, err
	}

	metrics, err := c.decodeItemCollectionMetricsMap(envelope.ItemCollectionMetrics)
	if err != nil {
		return nil, err
	}

	unprocessed, err := c.decodeUnprocessedItems(envelope.UnprocessedItems)
	if err != nil {
		return nil, err
	}

	return &types.BatchWriteItemOutput{
		ConsumedCapacity:      envelope.ConsumedCapacity,
		ItemCollectionMetrics: metrics,
		UnprocessedItems:      unprocessed,
	}, nil
}

func (c *Client) decodeBatchResponses(in map[string][]map[string]*attr.AttributeValue) (map[string][]map[string]attr.Value, error) {
	if in == nil {
		return nil, nil
	}

	out := make(map[string][]map[string]attr.Value, len(in))

	for table, items := range in {
		native, err := c.decodeItems(items)
		if err != nil {
			return nil, err
		}

		out[table] = native
	}

	return out, nil
}

func (c *Client) decodeUnprocessedKeys(in map[string]keysAndAttributesWire) (map[string]types.KeysAndAttributes, error) {
	if in == nil {
		return nil, nil
	}

	out := make(map[string]types.KeysAndAttributes, len(in))

	for table, wire := range in {
		native, err := c.decodeKeysAndAttributes(wire)
		if err != nil {
			return nil, err
		}

		out[table] = native
	}

	return out, nil
}

func (c *Client) decodeUnprocessedItems(in map[string][]writeRequestWire) (map[string][]types.WriteRequest, error) {
	if in == nil {
		return nil, nil
	}

	out := make(map[string][]types.WriteRequest, len(in))

	for table, wires := range in {
		native, err := c.decodeWriteRequests(wires)
		if err != nil {
			return nil, err
		}

		out[table] = native
	}

	return out, nil
}

func (c *Client) decodeItemCollectionMetricsMap(in map[string][]itemCollectionMetricsWire) (map[string][]types.ItemCollectionMetrics, error) {
	if in == nil {
		return nil, nil
	}

	out := make(map[string][]types.ItemCollectionMetrics, len(in))

	for table, wires := range in {
		metrics := make([]types.ItemCollectionMetrics, 0, len(wires))

		for i := range wires {
			m, err := c.decodeItemCollectionMetrics(&wires[i])
			if err != nil {
				return nil, err
			}

			metrics = append(metrics, *m)
		}

		out[table] = metrics
	}

	return out, nil
}
