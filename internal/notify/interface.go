package notify

import "context"

// Notifier is the interface for sending notifications.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
