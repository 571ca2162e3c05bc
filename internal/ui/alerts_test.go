package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtoctl/internal/alert"
)

func init() {
	// Use TrueColor to properly test hex color codes
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestRenderToasts_Order(t *testing.T) {
	b := alert.NewBroker()
	b.Notify("first", alert.KindSuccess, alert.Options{Persistent: true})
	b.Notify("second", alert.KindError, alert.Options{Persistent: true})

	out := renderToasts(b)
	require.NotEmpty(t, out)
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
	assert.Contains(t, out, "Success")
	assert.Contains(t, out, "Error")
}

func TestRenderToasts_SkipsConfirmations(t *testing.T) {
	b := alert.NewBroker()
	b.Confirm("delete it?", alert.ConfirmOptions{})
	b.Notify("toast", alert.KindInfo, alert.Options{Persistent: true})

	out := renderToasts(b)
	assert.NotContains(t, out, "delete it?")
	assert.Contains(t, out, "toast")
}

func TestTopConfirmation(t *testing.T) {
	b := alert.NewBroker()
	_, ok := topConfirmation(b)
	assert.False(t, ok)

	b.Confirm("older?", alert.ConfirmOptions{Title: "Older"})
	b.Confirm("newer?", alert.ConfirmOptions{Title: "Newer"})

	a, ok := topConfirmation(b)
	require.True(t, ok)
	assert.Equal(t, "Older", a.Title, "oldest confirmation blocks first")
}

func TestRenderConfirmation(t *testing.T) {
	b := alert.NewBroker()
	b.Confirm("Delete party Sharma Motors?", alert.ConfirmOptions{
		Title:        "Delete Party",
		ConfirmLabel: "Delete",
	})

	a, ok := topConfirmation(b)
	require.True(t, ok)
	out := renderConfirmation(a)
	assert.Contains(t, out, "Delete Party")
	assert.Contains(t, out, "Delete party Sharma Motors?")
	assert.Contains(t, out, "Delete")
	assert.Contains(t, out, "Cancel")
}

func TestHandleConfirmationKey(t *testing.T) {
	b := alert.NewBroker()

	// No modal: keys pass through.
	consumed := handleConfirmationKey(b, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, consumed)

	result := b.Confirm("sure?", alert.ConfirmOptions{})

	// Unrelated keys are swallowed while the modal is up.
	assert.True(t, handleConfirmationKey(b, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}))
	assert.Equal(t, 1, b.Len())

	// Enter accepts.
	assert.True(t, handleConfirmationKey(b, tea.KeyMsg{Type: tea.KeyEnter}))
	assert.True(t, <-result)
	assert.Equal(t, 0, b.Len())

	// Esc dismisses.
	result = b.Confirm("again?", alert.ConfirmOptions{})
	assert.True(t, handleConfirmationKey(b, tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, <-result)
}
