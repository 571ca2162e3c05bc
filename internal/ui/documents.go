package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rtoctl/internal/api"
	"rtoctl/internal/validation"
)

type documentsMode int

const (
	documentsModeList documentsMode = iota
	documentsModeForm
)

var docFormLabels = []string{"Document Number", "Type ID", "Party ID", "Vehicle No", "Issue Date (YYYY-MM-DD)", "Expiry Date (YYYY-MM-DD)", "Description", "Attachment Path"}

type documentsModel struct {
	deps    deps
	mode    documentsMode
	loading bool
	list    *api.List[api.Document]
	counts  *api.DocumentCounts
	cursor  int
	filter  string // "", "expiring", "expired"

	inputs []textinput.Model
	focus  int
}

func newDocumentsModel(d deps) documentsModel {
	return documentsModel{deps: d, loading: true}
}

func (m documentsModel) Init() tea.Cmd {
	return m.load()
}

func (m documentsModel) load() tea.Cmd {
	client := m.deps.client
	filter := m.filter
	return func() tea.Msg {
		ctx := context.Background()
		var (
			list *api.List[api.Document]
			err  error
		)
		switch filter {
		case "expiring":
			list, err = client.ListExpiringDocuments(ctx, api.ListParams{Limit: 50})
		case "expired":
			list, err = client.ListExpiredDocuments(ctx)
		default:
			list, err = client.ListDocuments(ctx, api.ListParams{Limit: 50})
		}
		if err != nil {
			return errMsg{err: err}
		}
		counts, err := client.GetDocumentCounts(ctx, api.ListParams{})
		if err != nil {
			return errMsg{err: err}
		}
		return documentsLoadedMsg{list: list, counts: counts}
	}
}

func (m documentsModel) startForm() documentsModel {
	m.mode = documentsModeForm
	m.inputs = make([]textinput.Model, len(docFormLabels))
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 200
		ti.Width = 40
		m.inputs[i] = ti
	}
	m.focus = 0
	m.inputs[0].Focus()
	return m
}

// submitForm uploads the document, attaching the file when a path was
// given. The attachment travels as one multipart part next to the
// regular fields.
func (m documentsModel) submitForm() tea.Cmd {
	fields := map[string]string{
		"docNumber":      m.inputs[0].Value(),
		"docTypeId":      m.inputs[1].Value(),
		"docPartyId":     m.inputs[2].Value(),
		"docVehicleNo":   m.inputs[3].Value(),
		"docIssueDate":   m.inputs[4].Value(),
		"docExpiryDate":  m.inputs[5].Value(),
		"docDescription": m.inputs[6].Value(),
	}
	path := m.inputs[7].Value()
	d := m.deps
	return func() tea.Msg {
		if err := validation.Required("docNumber", fields["docNumber"]); err != nil {
			return errMsg{err: err}
		}
		ctx := context.Background()
		if path == "" {
			if _, err := d.client.CreateDocument(ctx, fields, "", nil); err != nil {
				return errMsg{err: err}
			}
		} else {
			f, err := os.Open(path)
			if err != nil {
				return errMsg{err: fmt.Errorf("opening attachment: %w", err)}
			}
			defer f.Close()
			if _, err := d.client.CreateDocument(ctx, fields, filepath.Base(path), f); err != nil {
				return errMsg{err: err}
			}
		}
		d.broker.Success("Document saved")
		return documentsReloadMsg{}
	}
}

func (m documentsModel) deleteSelected() tea.Cmd {
	if m.list == nil || m.cursor >= len(m.list.Items) {
		return nil
	}
	doc := m.list.Items[m.cursor]
	d := m.deps
	return func() tea.Msg {
		ok := <-d.broker.Confirm(
			fmt.Sprintf("Delete document %s?", doc.Number),
			alertConfirmDelete("Delete Document"),
		)
		if !ok {
			return nil
		}
		if err := d.client.DeleteDocument(context.Background(), doc.ID); err != nil {
			return errMsg{err: err}
		}
		d.broker.Success("Document deleted")
		return documentsReloadMsg{}
	}
}

type documentsReloadMsg struct{}

func (m documentsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case documentsLoadedMsg:
		m.loading = false
		m.list = msg.list
		m.counts = msg.counts
		if m.list != nil && m.cursor >= len(m.list.Items) {
			m.cursor = 0
		}
		return m, nil

	case documentsReloadMsg:
		m.mode = documentsModeList
		m.loading = true
		return m, m.load()

	case errMsg:
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		if m.mode == documentsModeForm {
			return m.updateForm(msg)
		}
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.list != nil && m.cursor < len(m.list.Items)-1 {
				m.cursor++
			}
		case "n":
			return m.startForm(), textinput.Blink
		case "d":
			return m, m.deleteSelected()
		case "e":
			m.filter = "expiring"
			m.loading = true
			return m, m.load()
		case "x":
			m.filter = "expired"
			m.loading = true
			return m, m.load()
		case "a":
			m.filter = ""
			m.loading = true
			return m, m.load()
		case "r":
			m.loading = true
			return m, m.load()
		case "esc":
			return m, func() tea.Msg { return navigate(ScreenDashboard) }
		}
	}
	return m, nil
}

func (m documentsModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = documentsModeList
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % len(m.inputs)
		m.inputs[m.focus].Focus()
		return m, nil
	case tea.KeyUp:
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + len(m.inputs) - 1) % len(m.inputs)
		m.inputs[m.focus].Focus()
		return m, nil
	case tea.KeyEnter:
		if m.focus < len(m.inputs)-1 {
			m.inputs[m.focus].Blur()
			m.focus++
			m.inputs[m.focus].Focus()
			return m, nil
		}
		return m, m.submitForm()
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m documentsModel) View() string {
	var b strings.Builder

	if m.mode == documentsModeForm {
		b.WriteString(titleStyle.Render("New Document"))
		b.WriteString("\n\n")
		for i, label := range docFormLabels {
			b.WriteString(labelStyle.Render(label) + "\n")
			b.WriteString(m.inputs[i].View() + "\n")
		}
		b.WriteString(helpStyle.Render("enter submit | esc cancel"))
		return b.String()
	}

	title := "Documents"
	if m.filter != "" {
		title = "Documents (" + m.filter + ")"
	}
	b.WriteString(titleStyle.Render(title))
	if m.counts != nil {
		b.WriteString(fmt.Sprintf("  %d total, %d expiring, %d expired", m.counts.Total, m.counts.Expiring, m.counts.Expired))
	}
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}
	if m.list == nil || len(m.list.Items) == 0 {
		b.WriteString(detailTextStyle.Render("No documents found.") + "\n")
	}
	if m.list != nil {
		for i, doc := range m.list.Items {
			line := fmt.Sprintf("%-16s %-12s expires %s", doc.Number, doc.VehicleNo, doc.ExpiryDate)
			if i == m.cursor {
				b.WriteString(selectedItemStyle.Render("> "+line) + "\n")
			} else {
				b.WriteString(itemStyle.Render(line) + "\n")
			}
		}
	}

	b.WriteString(helpStyle.Render("n new | d delete | e expiring | x expired | a all | esc back"))
	return b.String()
}
