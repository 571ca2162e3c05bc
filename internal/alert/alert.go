// Package alert is the process-wide broker for user-facing feedback. Any
// code path can push a toast or block on a confirmation without knowing
// how either is rendered; a single always-mounted renderer drains the
// queue and decides the presentation.
package alert

import "time"

// Kind classifies an alert for styling and default titles.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// DefaultDuration is applied when Notify is called with a zero duration.
const DefaultDuration = 3000 * time.Millisecond

// DurationNone disables the auto-dismiss timer without marking the alert
// persistent. Any non-positive duration behaves the same; no zero-delay
// timer is ever scheduled.
const DurationNone = -1 * time.Millisecond

// Alert is one unit of feedback. Records are immutable after creation
// except through Broker.Update.
type Alert struct {
	ID          string
	Message     string
	Kind        Kind
	Title       string
	Duration    time.Duration
	Persistent  bool
	ActionLabel string
	CancelLabel string
	CreatedAt   time.Time

	onAction func()
	onClose  func()
	handled  bool
}

// IsConfirmation reports whether the renderer must present this alert as
// a blocking modal instead of a transient toast.
func (a *Alert) IsConfirmation() bool {
	return a.Persistent && a.ActionLabel != ""
}

// Options tunes a Notify call. The zero value gives a plain auto-
// dismissing toast with the kind's default title.
type Options struct {
	Title       string
	Duration    time.Duration
	Persistent  bool
	ActionLabel string
	CancelLabel string
	OnAction    func()
	OnClose     func()
}

// ConfirmOptions tunes a Confirm call.
type ConfirmOptions struct {
	Title        string
	ConfirmLabel string
	CancelLabel  string
}

// Patch is a partial update applied by Broker.Update; nil fields are left
// alone.
type Patch struct {
	Message    *string
	Title      *string
	Kind       *Kind
	Persistent *bool
	Duration   *time.Duration
}

func defaultTitle(kind Kind) string {
	switch kind {
	case KindSuccess:
		return "Success"
	case KindError:
		return "Error"
	case KindWarning:
		return "Warning"
	default:
		return "Info"
	}
}
