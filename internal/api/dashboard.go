package api

import (
	"context"
	"net/http"
)

// GetDashboardStats fetches the headline numbers for the home screen.
func (c *Client) GetDashboardStats(ctx context.Context, params ListParams) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", listQuery(params), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetMonthlyRevenue fetches the revenue series.
func (c *Client) GetMonthlyRevenue(ctx context.Context, params ListParams) ([]RevenuePoint, error) {
	var points []RevenuePoint
	if err := c.do(ctx, http.MethodGet, "/dashboard/monthly-revenue", listQuery(params), nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// GetExpenseBreakdown fetches per-category expense totals.
func (c *Client) GetExpenseBreakdown(ctx context.Context, params ListParams) ([]ExpenseSlice, error) {
	var slices []ExpenseSlice
	if err := c.do(ctx, http.MethodGet, "/dashboard/expense-breakdown", listQuery(params), nil, &slices); err != nil {
		return nil, err
	}
	return slices, nil
}

// GetDocumentStatus fetches the valid/expiring/expired split.
func (c *Client) GetDocumentStatus(ctx context.Context) (*DocumentStatus, error) {
	var status DocumentStatus
	if err := c.do(ctx, http.MethodGet, "/dashboard/document-status", nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
