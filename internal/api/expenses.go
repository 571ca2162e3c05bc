package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// ListExpenses returns a page of expenses.
func (c *Client) ListExpenses(ctx context.Context, params ListParams) (*List[Expense], error) {
	var result List[Expense]
	if err := c.do(ctx, http.MethodGet, "/expenses", listQuery(params), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetExpense fetches one expense by id.
func (c *Client) GetExpense(ctx context.Context, id int) (*Expense, error) {
	var expense Expense
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/expenses/%d", id), nil, nil, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

// GetExpenseSummary fetches period totals, optionally filtered.
func (c *Client) GetExpenseSummary(ctx context.Context, params ListParams) (*ExpenseSummary, error) {
	var summary ExpenseSummary
	if err := c.do(ctx, http.MethodGet, "/expenses/summary", listQuery(params), nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// CreateExpense submits a multipart payload with an optional receipt scan.
func (c *Client) CreateExpense(ctx context.Context, fields map[string]string, fileName string, receipt io.Reader) (*Expense, error) {
	var created Expense
	if err := c.doMultipart(ctx, http.MethodPost, "/expenses", fields, "receipt", fileName, receipt, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateExpense replaces an expense via the same multipart contract.
func (c *Client) UpdateExpense(ctx context.Context, id int, fields map[string]string, fileName string, receipt io.Reader) (*Expense, error) {
	var updated Expense
	if err := c.doMultipart(ctx, http.MethodPut, fmt.Sprintf("/expenses/%d", id), fields, "receipt", fileName, receipt, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteExpense removes an expense.
func (c *Client) DeleteExpense(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/expenses/%d", id), nil, nil, nil)
}
