package dynaclient

import (
	"context"
	"fmt"

	"github.com/truora/dynaclient/types"
)

// CreateTable adds a new table to the account. Table creation is
// asynchronous on the service side; the returned description reports the
// CREATING status until the table becomes ACTIVE.
//
// When input carries no provisioned throughput, a minimal one read unit and
// one write unit is requested.
func (c *Client) CreateTable(ctx context.Context, input *types.CreateTableInput) (*types.CreateTableOutput, error) {
	in := *input

	if in.ProvisionedThroughput == nil {
		in.ProvisionedThroughput = &types.ProvisionedThroughput{
			ReadCapacityUnits:  1,
			WriteCapacityUnits: 1,
		}
	}

	if err := validateStreamSpecification(in.StreamSpecification); err != nil {
		return nil, err
	}

	out := &types.CreateTableOutput{}

	if err := c.send(ctx, "CreateTable", &in, out); err != nil {
		return nil, err
	}

	return out, nil
}

// DeleteTable removes a table and all of its items.
func (c *Client) DeleteTable(ctx context.Context, input *types.DeleteTableInput) (*types.DeleteTableOutput, error) {
	out := &types.DeleteTableOutput{}

	if err := c.send(ctx, "DeleteTable", input, out); err != nil {
		return nil, err
	}

	return out, nil
}

// DescribeTable returns information about the table, including the current
// status, creation time, primary key schema and indexes.
func (c *Client) DescribeTable(ctx context.Context, input *types.DescribeTableInput) (*types.DescribeTableOutput, error) {
	out := &types.DescribeTableOutput{}

	if err := c.send(ctx, "DescribeTable", input, out); err != nil {
		return nil, err
	}

	return out, nil
}

// ListTables returns a page of table names associated with the account and
// endpoint.
func (c *Client) ListTables(ctx context.Context, input *types.ListTablesInput) (*types.ListTablesOutput, error) {
	out := &types.ListTablesOutput{}

	if err := c.send(ctx, "ListTables", input, out); err != nil {
		return nil, err
	}

	return out, nil
}

// UpdateTable modifies the provisioned throughput, global secondary indexes
// or stream settings of a table.
func (c *Client) UpdateTable(ctx context.Context, input *types.UpdateTableInput) (*types.UpdateTableOutput, error) {
	if err := validateStreamSpecification(input.StreamSpecification); err != nil {
		return nil, err
	}

	out := &types.UpdateTableOutput{}

	if err := c.send(ctx, "UpdateTable", input, out); err != nil {
		return nil, err
	}

	return out, nil
}

// validateStreamSpecification rejects enabled streams with a view type the
// service does not know before the request goes out.
func validateStreamSpecification(spec *types.StreamSpecification) error {
	if spec == nil || !spec.StreamEnabled {
		return nil
	}

	switch spec.StreamViewType {
	case types.StreamViewTypeNewImage,
		types.StreamViewTypeOldImage,
		types.StreamViewTypeNewAndOldImages,
		types.StreamViewTypeKeysOnly:
		return nil
	}

	return types.NewError(types.ErrCodeValidationException,
		fmt.Sprintf("invalid stream view type: %q", spec.StreamViewType), nil)
}
