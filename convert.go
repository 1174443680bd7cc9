package dynaclient

import (
	"github.com/truora/dynaclient/attr"
	"github.com/truora/dynaclient/types"
)

// Wire twins of the shapes that carry native values. The operation payloads
// swap these in for their native counterparts so the whole request still
// serializes with encoding/json.

type keysAndAttributesWire struct {
	ConsistentRead           bool                              `json:"ConsistentRead,omitempty"`
	ExpressionAttributeNames map[string]string                 `json:"ExpressionAttributeNames,omitempty"`
	Keys                     []map[string]*attr.AttributeValue `json:"Keys,omitempty"`
	ProjectionExpression     string                            `json:"ProjectionExpression,omitempty"`
}

type writeRequestWire struct {
	DeleteRequest *deleteRequestWire `json:"DeleteRequest,omitempty"`
	PutRequest    *putRequestWire    `json:"PutRequest,omitempty"`
}

type putRequestWire struct {
	Item map[string]*attr.AttributeValue `json:"Item"`
}

type deleteRequestWire struct {
	Key map[string]*attr.AttributeValue `json:"Key"`
}

type itemCollectionMetricsWire struct {
	ItemCollectionKey   map[string]*attr.AttributeValue `json:"ItemCollectionKey,omitempty"`
	SizeEstimateRangeGB []float64                       `json:"SizeEstimateRangeGB,omitempty"`
}

// encodeItem converts one native item to wire form.
func encodeItem(item map[string]attr.Value) (map[string]*attr.AttributeValue, error) {
	wire, err := attr.MarshalMap(item)
	if err != nil {
		return nil, types.NewError(types.ErrCodeSerialization, "unable to encode attribute values", err)
	}

	return wire, nil
}

func encodeKeysAndAttributes(in types.KeysAndAttributes) (keysAndAttributesWire, error) {
	keys := make([]map[string]*attr.AttributeValue, 0, len(in.Keys))

	for _, key := range in.Keys {
		wire, err := encodeItem(key)
		if err != nil {
			return keysAndAttributesWire{}, err
		}

		keys = append(keys, wire)
	}

	return keysAndAttributesWire{
		ConsistentRead:           in.ConsistentRead,
		ExpressionAttributeNames: in.ExpressionAttributeNames,
		Keys:                     keys,
		ProjectionExpression:     in.ProjectionExpression,
	}, nil
}

func encodeWriteRequests(in []types.WriteRequest) ([]writeRequestWire, error) {
	out := make([]writeRequestWire, 0, len(in))

	for _, req := range in {
		var wire writeRequestWire

		if req.PutRequest != nil {
			item, err := encodeItem(req.PutRequest.Item)
			if err != nil {
				return nil, err
			}

			wire.PutRequest = &putRequestWire{Item: item}
		}

		if req.DeleteRequest != nil {
			key, err := encodeItem(req.DeleteRequest.Key)
			if err != nil {
				return nil, err
			}

			wire.DeleteRequest = &deleteRequestWire{Key: key}
		}

		out = append(out, wire)
	}

	return out, nil
}

// decodeItem converts one wire item back to native values, honoring the
// client decode options.
func (c *Client) decodeItem(item map[string]*attr.AttributeValue) (map[string]attr.Value, error) {
	native, err := attr.UnmarshalMap(item, c.decodeOpts...)
	if err != nil {
		return nil, types.NewUnmarshalError(err, "unable to decode attribute values", nil)
	}

	return native, nil
}

func (c *Client) decodeItems(items []map[string]*attr.AttributeValue) ([]map[string]attr.Value, error) {
	if items == nil {
		return nil, nil
	}

	out := make([]map[string]attr.Value, 0, len(items))

	for _, item := range items {
		native, err := c.decodeItem(item)
		if err != nil {
			return nil, err
		}

		out = append(out, native)
	}

	return out, nil
}

func (c *Client) decodeKeysAndAttributes(in keysAndAttributesWire) (types.KeysAndAttributes, error) {
	keys, err := c.decodeItems(in.Keys)
	if err != nil {
		return types.KeysAndAttributes{}, err
	}

	return types.KeysAndAttributes{
		ConsistentRead:           in.ConsistentRead,
		ExpressionAttributeNames: in.ExpressionAttributeNames,
		Keys:                     keys,
		ProjectionExpression:     in.ProjectionExpression,
	}, nil
}

func (c *Client) decodeWriteRequests(in []writeRequestWire) ([]types.WriteRequest, error) {
	out := make([]types.WriteRequest, 0, len(in))

	for _, wire := range in {
		var req types.WriteRequest

		if wire.PutRequest != nil {
			item, err := c.decodeItem(wire.PutRequest.Item)
			if err != nil {
				return nil, err
			}

			req.PutRequest = &types.PutRequest{Item: item}
		}

		if wire.DeleteRequest != nil {
			key, err := c.decodeItem(wire.DeleteRequest.Key)
			if err != nil {
				return nil, err
			}

			req.DeleteRequest = &types.DeleteRequest{Key: key}
		}

		out = append(out, req)
	}

	return out, nil
}

func (c *Client) decodeItemCollectionMetrics(in *itemCollectionMetricsWire) (*types.ItemCollectionMetrics, error) {
	if in == nil {
		return nil, nil
	}

	key, err := c.decodeItem(in.ItemCollectionKey)
	if err != nil {
		return nil, err
	}

	return &types.ItemCollectionMetrics{
		ItemCollectionKey:   key,
		SizeEstimateRangeGB: in.SizeEstimateRangeGB,
	}, nil
}
