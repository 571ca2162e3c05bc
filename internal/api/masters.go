package api

import (
	"context"
	"fmt"
	"net/http"
)

// Master tables share one conventional CRUD surface; the caller passes the
// table's base path (for example "/party-type-master"). Records stay
// dynamic because each table uses its own field prefix.

// ListMaster returns a page of master records from the given table.
func (c *Client) ListMaster(ctx context.Context, basePath string, params ListParams) (*List[MasterRecord], error) {
	var result List[MasterRecord]
	if err := c.do(ctx, http.MethodGet, basePath, listQuery(params), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMaster fetches one master record.
func (c *Client) GetMaster(ctx context.Context, basePath string, id int) (MasterRecord, error) {
	var record MasterRecord
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", basePath, id), nil, nil, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// CreateMaster inserts a record built from the schema-driven form.
func (c *Client) CreateMaster(ctx context.Context, basePath string, fields map[string]any) (MasterRecord, error) {
	var created MasterRecord
	if err := c.do(ctx, http.MethodPost, basePath, nil, fields, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateMaster replaces a record's editable fields.
func (c *Client) UpdateMaster(ctx context.Context, basePath string, id int, fields map[string]any) (MasterRecord, error) {
	var updated MasterRecord
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", basePath, id), nil, fields, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteMaster removes a record.
func (c *Client) DeleteMaster(ctx context.Context, basePath string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", basePath, id), nil, nil, nil)
}

// ToggleMasterActive flips a record's active flag.
func (c *Client) ToggleMasterActive(ctx context.Context, basePath string, id int) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d/toggle-active", basePath, id), nil, nil, nil)
}
