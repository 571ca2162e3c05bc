package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rtoctl/internal/alert"
)

// The alert layer is mounted once at the root: toasts stack above the
// active screen, and the oldest pending confirmation renders as a modal
// that swallows input until it is answered.

func toastStyle(kind alert.Kind) lipgloss.Style {
	switch kind {
	case alert.KindSuccess:
		return toastSuccessStyle
	case alert.KindError:
		return toastErrorStyle
	case alert.KindWarning:
		return toastWarningStyle
	}
	return toastInfoStyle
}

// renderToasts renders every non-confirmation alert in insertion order.
func renderToasts(b *alert.Broker) string {
	var lines []string
	for _, a := range b.Alerts() {
		if a.IsConfirmation() {
			continue
		}
		style := toastStyle(a.Kind)
		lines = append(lines, style.Render(a.Title)+" "+a.Message)
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// topConfirmation returns the oldest unanswered confirmation, if any.
func topConfirmation(b *alert.Broker) (alert.Alert, bool) {
	for _, a := range b.Alerts() {
		if a.IsConfirmation() {
			return *a, true
		}
	}
	return alert.Alert{}, false
}

// renderConfirmation renders the blocking modal for one confirmation.
func renderConfirmation(a alert.Alert) string {
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render(a.Title))
	b.WriteString("\n")
	b.WriteString(a.Message)
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("enter") + " " + a.ActionLabel)
	b.WriteString("   ")
	b.WriteString(labelStyle.Render("esc") + " " + a.CancelLabel)
	return modalStyle.Render(b.String())
}

// handleConfirmationKey routes enter/esc to the topmost confirmation.
// It reports whether the key was consumed by the modal.
func handleConfirmationKey(b *alert.Broker, msg tea.KeyMsg) bool {
	a, ok := topConfirmation(b)
	if !ok {
		return false
	}
	switch msg.Type {
	case tea.KeyEnter:
		b.Accept(a.ID)
		return true
	case tea.KeyEsc:
		b.Remove(a.ID)
		return true
	}
	// Any other key is swallowed while a modal is up.
	return true
}

// alertConfirmDelete builds the standard destructive-action prompt.
func alertConfirmDelete(title string) alert.ConfirmOptions {
	return alert.ConfirmOptions{Title: title, ConfirmLabel: "Delete"}
}

// alertConfirmOptions builds a prompt with a custom action label.
func alertConfirmOptions(title, action string) alert.ConfirmOptions {
	return alert.ConfirmOptions{Title: title, ConfirmLabel: action}
}
