package alert

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"rtoctl/internal/telemetry"
)

// Broker owns the ordered alert collection. Insertion order is display
// order; every mutation goes through the broker so the renderer only ever
// observes consistent snapshots.
type Broker struct {
	mu       sync.Mutex
	alerts   []*Alert
	timers   map[string]*time.Timer
	onChange func()
}

// NewBroker creates an empty broker.
func NewBroker() *Broker {
	return &Broker{
		timers: make(map[string]*time.Timer),
	}
}

// SetOnChange installs the hook fired after every collection mutation.
// The renderer uses it to schedule a redraw; it runs outside the broker's
// lock so it may call back into the broker.
func (b *Broker) SetOnChange(fn func()) {
	b.mu.Lock()
	b.onChange = fn
	b.mu.Unlock()
}

// Notify appends a new alert and returns its id immediately. Unless the
// alert is persistent, auto-removal is scheduled after its duration; a
// zero duration means DefaultDuration and a negative one disables the
// timer entirely.
func (b *Broker) Notify(message string, kind Kind, opts Options) string {
	a := &Alert{
		ID:          uuid.NewString(),
		Message:     message,
		Kind:        kind,
		Title:       opts.Title,
		Duration:    opts.Duration,
		Persistent:  opts.Persistent,
		ActionLabel: opts.ActionLabel,
		CancelLabel: opts.CancelLabel,
		CreatedAt:   time.Now(),
		onAction:    opts.OnAction,
		onClose:     opts.OnClose,
	}
	if a.Title == "" {
		a.Title = defaultTitle(kind)
	}
	if a.Duration == 0 {
		a.Duration = DefaultDuration
	}

	b.mu.Lock()
	b.alerts = append(b.alerts, a)
	if !a.Persistent && a.Duration > 0 {
		id := a.ID
		b.timers[id] = time.AfterFunc(a.Duration, func() {
			b.Remove(id)
		})
	}
	b.mu.Unlock()

	telemetry.AlertsShown.WithLabelValues(string(kind)).Inc()
	b.changed()
	return a.ID
}

// Success shows a green auto-dismissing toast.
func (b *Broker) Success(message string) string {
	return b.Notify(message, KindSuccess, Options{})
}

// Error shows a red auto-dismissing toast.
func (b *Broker) Error(message string) string {
	return b.Notify(message, KindError, Options{})
}

// Warning shows a yellow auto-dismissing toast.
func (b *Broker) Warning(message string) string {
	return b.Notify(message, KindWarning, Options{})
}

// Info shows a blue auto-dismissing toast.
func (b *Broker) Info(message string) string {
	return b.Notify(message, KindInfo, Options{})
}

// Confirm pushes a blocking confirmation and returns a channel that
// settles exactly once: true when the user takes the action, false when
// they dismiss or cancel. The channel is buffered, so the result is never
// lost even if the caller reads late.
func (b *Broker) Confirm(message string, opts ConfirmOptions) <-chan bool {
	result := make(chan bool, 1)
	var once sync.Once
	resolve := func(accepted bool) {
		once.Do(func() { result <- accepted })
	}

	title := opts.Title
	if title == "" {
		title = "Confirm"
	}
	confirmLabel := opts.ConfirmLabel
	if confirmLabel == "" {
		confirmLabel = "Confirm"
	}
	cancelLabel := opts.CancelLabel
	if cancelLabel == "" {
		cancelLabel = "Cancel"
	}

	var id string
	id = b.Notify(message, KindWarning, Options{
		Title:       title,
		Persistent:  true,
		ActionLabel: confirmLabel,
		CancelLabel: cancelLabel,
		OnAction: func() {
			b.removeInternal(id, true)
			resolve(true)
		},
		OnClose: func() {
			resolve(false)
		},
	})
	return result
}

// Accept takes the action path of a confirmation: the alert's onAction
// runs once and the alert leaves the collection with its onClose
// suppressed.
func (b *Broker) Accept(id string) {
	b.mu.Lock()
	var action func()
	for _, a := range b.alerts {
		if a.ID == id && !a.handled {
			a.handled = true
			action = a.onAction
			break
		}
	}
	b.mu.Unlock()

	if action != nil {
		action()
	}
	b.removeInternal(id, true)
}

// Remove dismisses an alert through the normal path: its pending timer is
// cancelled and its onClose runs, at most once. Removing an unknown id is
// a no-op.
func (b *Broker) Remove(id string) {
	b.removeInternal(id, false)
}

func (b *Broker) removeInternal(id string, skipOnClose bool) {
	b.mu.Lock()
	var removed *Alert
	for i, a := range b.alerts {
		if a.ID == id {
			removed = a
			b.alerts = append(b.alerts[:i], b.alerts[i+1:]...)
			break
		}
	}
	if timer, ok := b.timers[id]; ok {
		timer.Stop()
		delete(b.timers, id)
	}

	var closeFn func()
	if removed != nil && !skipOnClose && !removed.handled && removed.onClose != nil {
		removed.handled = true
		closeFn = removed.onClose
	}
	b.mu.Unlock()

	if closeFn != nil {
		closeFn()
	}
	if removed != nil {
		b.changed()
	}
}

// Clear drops every alert without invoking any callback. Used only for
// full resets such as sign-out.
func (b *Broker) Clear() {
	b.mu.Lock()
	for id, timer := range b.timers {
		timer.Stop()
		delete(b.timers, id)
	}
	had := len(b.alerts) > 0
	b.alerts = nil
	b.mu.Unlock()

	if had {
		b.changed()
	}
}

// Update shallow-merges patch into the alert matching id; unknown ids are
// ignored. Used to mutate a persistent loading alert in place.
func (b *Broker) Update(id string, patch Patch) {
	b.mu.Lock()
	var found bool
	for _, a := range b.alerts {
		if a.ID != id {
			continue
		}
		found = true
		if patch.Message != nil {
			a.Message = *patch.Message
		}
		if patch.Title != nil {
			a.Title = *patch.Title
		}
		if patch.Kind != nil {
			a.Kind = *patch.Kind
		}
		if patch.Persistent != nil {
			a.Persistent = *patch.Persistent
		}
		if patch.Duration != nil {
			a.Duration = *patch.Duration
		}
		break
	}
	b.mu.Unlock()

	if found {
		b.changed()
	}
}

// ShowLoading pushes a persistent info alert the caller later mutates or
// removes by id.
func (b *Broker) ShowLoading(message string) string {
	return b.Notify(message, KindInfo, Options{
		Title:      "Loading...",
		Persistent: true,
	})
}

// HideLoading removes a loading alert.
func (b *Broker) HideLoading(id string) {
	b.Remove(id)
}

// Alerts returns a snapshot of the collection in insertion order.
func (b *Broker) Alerts() []*Alert {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*Alert, len(b.alerts))
	copy(out, b.alerts)
	return out
}

// Len reports the current queue length.
func (b *Broker) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.alerts)
}

func (b *Broker) changed() {
	b.mu.Lock()
	fn := b.onChange
	b.mu.Unlock()
	if fn != nil {
		fn()
	}
}
