// Package notify forwards backend expiry notifications to Slack when
// the operator has opted in. Everything is gated on configuration; the
// default build sends nothing.
package notify

import (
	"context"
	"fmt"
	"os"

	"github.com/slack-go/slack"
	"github.com/spf13/viper"

	"rtoctl/internal/api"
)

// Event types
const (
	EventExpiry  = "on_expiry"
	EventExpired = "on_expired"
)

type slackPoster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Manager forwards document-expiry notifications to a Slack channel.
type Manager struct {
	client    slackPoster
	channelID string
	logger    func(string, ...interface{})
}

// NewManager creates a notification manager from viper configuration.
// With slack disabled or no bot token present it stays inert.
func NewManager(logger func(string, ...interface{})) *Manager {
	m := &Manager{logger: logger}

	if !viper.GetBool("notifications.slack.enabled") {
		return m
	}

	botToken := os.Getenv("SLACK_BOT_USER_TOKEN")
	if botToken == "" {
		if m.logger != nil {
			m.logger("Warning: SLACK_BOT_USER_TOKEN not set, slack notifications disabled")
		}
		return m
	}

	m.client = slack.New(botToken)
	m.channelID = viper.GetString("notifications.slack.channel")
	return m
}

// Enabled reports whether forwarding will actually send anything.
func (m *Manager) Enabled() bool {
	return m.client != nil
}

// Notify posts one message if the event kind is enabled. threadTS groups
// follow-ups under an earlier message; the returned timestamp can be fed
// back in for that purpose.
func (m *Manager) Notify(ctx context.Context, eventType, message, threadTS string) (string, error) {
	if m.client == nil || !viper.GetBool("notifications.slack.events."+eventType) {
		return "", nil
	}

	channelID := m.channelID
	if channelID == "" {
		channelID = "#general"
	}

	opts := []slack.MsgOption{
		slack.MsgOptionText(message, false),
	}
	if threadTS != "" {
		opts = append(opts, slack.MsgOptionTS(threadTS))
	}

	_, newTS, err := m.client.PostMessageContext(ctx, channelID, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to post slack message: %w", err)
	}
	return newTS, nil
}

// ForwardExpiries posts one thread per batch of expiry notifications:
// a summary line first, then each item as a threaded reply.
func (m *Manager) ForwardExpiries(ctx context.Context, items []api.Notification) error {
	if m.client == nil || len(items) == 0 {
		return nil
	}

	ts, err := m.Notify(ctx, EventExpiry, fmt.Sprintf("%d document(s) approaching expiry", len(items)), "")
	if err != nil {
		return err
	}

	for _, n := range items {
		line := n.Message
		if n.Party != "" {
			line = fmt.Sprintf("%s (%s)", n.Message, n.Party)
		}
		if _, err := m.Notify(ctx, EventExpiry, line, ts); err != nil {
			return err
		}
	}
	return nil
}
