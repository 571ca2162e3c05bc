package api

import (
	"context"
	"fmt"
	"net/http"
)

// ListLedgers returns a page of ledger entries.
func (c *Client) ListLedgers(ctx context.Context, params ListParams) (*List[Ledger], error) {
	var result List[Ledger]
	if err := c.do(ctx, http.MethodGet, "/ledgers", listQuery(params), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetLedger fetches one entry by id.
func (c *Client) GetLedger(ctx context.Context, id int) (*Ledger, error) {
	var entry Ledger
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/ledgers/%d", id), nil, nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetLedgerSummary fetches the agency-wide credit/debit totals.
func (c *Client) GetLedgerSummary(ctx context.Context) (*LedgerSummary, error) {
	var summary LedgerSummary
	if err := c.do(ctx, http.MethodGet, "/ledgers/summary", nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetPartyLedger returns the entries for one party.
func (c *Client) GetPartyLedger(ctx context.Context, partyID int, params ListParams) (*List[Ledger], error) {
	var result List[Ledger]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/ledgers/party/%d/details", partyID), listQuery(params), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPartyLedgerSummary returns the totals for one party.
func (c *Client) GetPartyLedgerSummary(ctx context.Context, partyID int) (*LedgerSummary, error) {
	var summary LedgerSummary
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/ledgers/party/%d/summary", partyID), nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// CreateLedger records a new entry.
func (c *Client) CreateLedger(ctx context.Context, entry Ledger) (*Ledger, error) {
	var created Ledger
	if err := c.do(ctx, http.MethodPost, "/ledgers", nil, entry, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateLedger replaces an entry.
func (c *Client) UpdateLedger(ctx context.Context, id int, entry Ledger) (*Ledger, error) {
	var updated Ledger
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/ledgers/%d", id), nil, entry, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteLedger removes an entry.
func (c *Client) DeleteLedger(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/ledgers/%d", id), nil, nil, nil)
}
