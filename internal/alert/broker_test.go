package alert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_NotifyDefaults(t *testing.T) {
	b := NewBroker()

	id := b.Notify("Saved", KindSuccess, Options{})

	alerts := b.Alerts()
	require.Len(t, alerts, 1)
	a := alerts[0]
	assert.Equal(t, id, a.ID)
	assert.Equal(t, KindSuccess, a.Kind)
	assert.Equal(t, "Success", a.Title)
	assert.Equal(t, DefaultDuration, a.Duration)
	assert.False(t, a.Persistent)
	assert.False(t, a.IsConfirmation())
}

func TestBroker_KindWrappers(t *testing.T) {
	b := NewBroker()

	b.Success("s")
	b.Error("e")
	b.Warning("w")
	b.Info("i")

	alerts := b.Alerts()
	require.Len(t, alerts, 4)
	assert.Equal(t, "Success", alerts[0].Title)
	assert.Equal(t, "Error", alerts[1].Title)
	assert.Equal(t, "Warning", alerts[2].Title)
	assert.Equal(t, "Info", alerts[3].Title)
}

func TestBroker_InsertionOrderAndUniqueIDs(t *testing.T) {
	b := NewBroker()

	seen := make(map[string]bool)
	var ids []string
	for i := 0; i < 50; i++ {
		id := b.Info("msg")
		assert.False(t, seen[id], "ids must never repeat")
		seen[id] = true
		ids = append(ids, id)
	}

	alerts := b.Alerts()
	require.Len(t, alerts, 50)
	for i, a := range alerts {
		assert.Equal(t, ids[i], a.ID, "collection order must equal call order")
	}
}

func TestBroker_AutoDismiss(t *testing.T) {
	b := NewBroker()

	b.Notify("quick", KindInfo, Options{Duration: 20 * time.Millisecond})
	assert.Equal(t, 1, b.Len())

	assert.Eventually(t, func() bool { return b.Len() == 0 },
		500*time.Millisecond, 5*time.Millisecond)
}

func TestBroker_NonPositiveDurationNeverDismisses(t *testing.T) {
	b := NewBroker()

	b.Notify("sticky", KindInfo, Options{Duration: DurationNone})

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, b.Len(), "negative duration must mean no auto-dismiss")

	b.Remove(b.Alerts()[0].ID)
	assert.Equal(t, 0, b.Len())
}

func TestBroker_PersistentSuppressesTimer(t *testing.T) {
	b := NewBroker()

	b.Notify("loading", KindInfo, Options{Persistent: true, Duration: 10 * time.Millisecond})

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, 1, b.Len())
}

func TestBroker_RemoveIdempotent(t *testing.T) {
	b := NewBroker()

	closed := 0
	id := b.Notify("bye", KindInfo, Options{
		Persistent: true,
		OnClose:    func() { closed++ },
	})

	b.Remove(id)
	b.Remove(id)
	b.Remove("no-such-id")

	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 1, closed, "onClose must run at most once")
}

func TestBroker_RemoveCancelsTimer(t *testing.T) {
	b := NewBroker()

	closed := 0
	id := b.Notify("racy", KindInfo, Options{
		Duration: 20 * time.Millisecond,
		OnClose:  func() { closed++ },
	})
	b.Remove(id)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, closed, "timer firing after manual removal must not re-run onClose")
}

func TestBroker_ClearInvokesNoCallbacks(t *testing.T) {
	b := NewBroker()

	closed := 0
	b.Notify("a", KindInfo, Options{Persistent: true, OnClose: func() { closed++ }})
	b.Notify("b", KindInfo, Options{OnClose: func() { closed++ }})

	b.Clear()

	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, closed)
}

func TestBroker_Update(t *testing.T) {
	b := NewBroker()

	id := b.ShowLoading("Saving party...")
	require.True(t, b.Alerts()[0].Persistent)

	msg := "Saved"
	kind := KindSuccess
	b.Update(id, Patch{Message: &msg, Kind: &kind})

	a := b.Alerts()[0]
	assert.Equal(t, "Saved", a.Message)
	assert.Equal(t, KindSuccess, a.Kind)
	assert.Equal(t, "Loading...", a.Title, "unpatched fields stay put")

	// unknown id is a no-op
	b.Update("ghost", Patch{Message: &msg})
	assert.Equal(t, 1, b.Len())

	b.HideLoading(id)
	assert.Equal(t, 0, b.Len())
}

func TestBroker_ConfirmAccept(t *testing.T) {
	b := NewBroker()

	result := b.Confirm("Delete this party?", ConfirmOptions{
		Title:        "Delete Party",
		ConfirmLabel: "Delete",
	})

	alerts := b.Alerts()
	require.Len(t, alerts, 1)
	a := alerts[0]
	assert.True(t, a.IsConfirmation())
	assert.Equal(t, "Delete Party", a.Title)
	assert.Equal(t, "Delete", a.ActionLabel)
	assert.Equal(t, "Cancel", a.CancelLabel)

	b.Accept(a.ID)

	select {
	case accepted := <-result:
		assert.True(t, accepted)
	case <-time.After(time.Second):
		t.Fatal("confirm never settled")
	}
	assert.Equal(t, 0, b.Len())
}

func TestBroker_ConfirmDismiss(t *testing.T) {
	b := NewBroker()

	result := b.Confirm("Sure?", ConfirmOptions{})
	id := b.Alerts()[0].ID

	b.Remove(id)

	select {
	case accepted := <-result:
		assert.False(t, accepted)
	case <-time.After(time.Second):
		t.Fatal("confirm never settled")
	}
}

func TestBroker_ConfirmSettlesExactlyOnce(t *testing.T) {
	b := NewBroker()

	result := b.Confirm("Sure?", ConfirmOptions{})
	id := b.Alerts()[0].ID

	b.Accept(id)
	b.Remove(id) // late dismiss must not produce a second resolution

	assert.True(t, <-result)
	select {
	case v, ok := <-result:
		if ok {
			t.Fatalf("unexpected second resolution: %v", v)
		}
	case <-time.After(20 * time.Millisecond):
		// nothing else arrived, as required
	}
}

func TestBroker_OnChangeFires(t *testing.T) {
	b := NewBroker()

	changes := 0
	b.SetOnChange(func() { changes++ })

	id := b.Info("hello")
	assert.Equal(t, 1, changes)

	b.Remove(id)
	assert.Equal(t, 2, changes)

	b.Remove(id) // no-op removals stay silent
	assert.Equal(t, 2, changes)
}

func TestBroker_ConfirmationPartition(t *testing.T) {
	b := NewBroker()

	b.Info("toast")
	b.Confirm("modal?", ConfirmOptions{})
	b.Notify("sticky toast", KindInfo, Options{Persistent: true})

	var toasts, confirms int
	for _, a := range b.Alerts() {
		if a.IsConfirmation() {
			confirms++
		} else {
			toasts++
		}
	}
	assert.Equal(t, 2, toasts, "persistent without actionLabel is still a toast")
	assert.Equal(t, 1, confirms)
}
