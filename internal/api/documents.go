package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// ListDocuments returns a page of documents. Filters accept status and
// partyId the way the list screen sends them.
func (c *Client) ListDocuments(ctx context.Context, params ListParams) (*List[Document], error) {
	var result List[Document]
	if err := c.do(ctx, http.MethodGet, "/documents", listQuery(params), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetDocument fetches one document by id.
func (c *Client) GetDocument(ctx context.Context, id int) (*Document, error) {
	var doc Document
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/documents/%d", id), nil, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetDocumentCounts fetches the total/expiring/expired tallies.
func (c *Client) GetDocumentCounts(ctx context.Context, params ListParams) (*DocumentCounts, error) {
	var counts DocumentCounts
	if err := c.do(ctx, http.MethodGet, "/documents/stats/counts", listQuery(params), nil, &counts); err != nil {
		return nil, err
	}
	return &counts, nil
}

// ListExpiringDocuments returns documents nearing expiry.
func (c *Client) ListExpiringDocuments(ctx context.Context, params ListParams) (*List[Document], error) {
	var result List[Document]
	if err := c.do(ctx, http.MethodGet, "/documents/expiring", listQuery(params), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListExpiredDocuments returns documents already past expiry.
func (c *Client) ListExpiredDocuments(ctx context.Context) (*List[Document], error) {
	var result List[Document]
	if err := c.do(ctx, http.MethodGet, "/documents/expired", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateDocument submits a multipart payload: form fields plus the scanned
// attachment. attachment may be nil for a metadata-only record.
func (c *Client) CreateDocument(ctx context.Context, fields map[string]string, fileName string, attachment io.Reader) (*Document, error) {
	var created Document
	if err := c.doMultipart(ctx, http.MethodPost, "/documents", fields, "document", fileName, attachment, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateDocument replaces a document via the same multipart contract.
func (c *Client) UpdateDocument(ctx context.Context, id int, fields map[string]string, fileName string, attachment io.Reader) (*Document, error) {
	var updated Document
	if err := c.doMultipart(ctx, http.MethodPut, fmt.Sprintf("/documents/%d", id), fields, "document", fileName, attachment, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteDocument removes a document.
func (c *Client) DeleteDocument(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/documents/%d", id), nil, nil, nil)
}
