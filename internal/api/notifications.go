package api

import (
	"context"
	"fmt"
	"net/http"
)

// ListNotifications returns a page of notifications.
func (c *Client) ListNotifications(ctx context.Context, params ListParams) (*List[Notification], error) {
	var result List[Notification]
	if err := c.do(ctx, http.MethodGet, "/notifications", listQuery(params), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetNotification fetches one notification by id.
func (c *Client) GetNotification(ctx context.Context, id int) (*Notification, error) {
	var notification Notification
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/notifications/%d", id), nil, nil, &notification); err != nil {
		return nil, err
	}
	return &notification, nil
}

// GetUnreadCount returns the badge count.
func (c *Client) GetUnreadCount(ctx context.Context) (int, error) {
	var payload struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/notifications/unread-count", nil, nil, &payload); err != nil {
		return 0, err
	}
	return payload.Count, nil
}

// MarkNotificationRead flags one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/notifications/%d/read", id), nil, nil, nil)
}

// MarkAllNotificationsRead clears the unread badge.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPatch, "/notifications/read-all", nil, nil, nil)
}

// DeleteNotification removes one notification.
func (c *Client) DeleteNotification(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/notifications/%d", id), nil, nil, nil)
}

// DeleteAllNotifications empties the notification list.
func (c *Client) DeleteAllNotifications(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/notifications/delete-all", nil, nil, nil)
}
