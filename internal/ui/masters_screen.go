package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rtoctl/internal/api"
	"rtoctl/internal/masters"
)

// mastersModel is one screen for all five master tables. The schema
// registry drives the tab list, the row rendering and the edit form, so
// none of the tables has bespoke UI code.
type mastersModel struct {
	deps    deps
	schemas []masters.Schema
	tab     int
	loading bool
	records []api.MasterRecord
	cursor  int

	editing bool
	editID  int // 0 means creating
	inputs  []textinput.Model
	focus   int
}

func newMastersModel(d deps) mastersModel {
	return mastersModel{deps: d, schemas: masters.All(), loading: true}
}

func (m mastersModel) schema() masters.Schema {
	return m.schemas[m.tab]
}

func (m mastersModel) Init() tea.Cmd {
	return m.load()
}

func (m mastersModel) load() tea.Cmd {
	client := m.deps.client
	s := m.schema()
	tab := m.tab
	return func() tea.Msg {
		list, err := client.ListMaster(context.Background(), s.BasePath, api.ListParams{Limit: 100})
		if err != nil {
			return errMsg{err: err}
		}
		return mastersLoadedMsg{kindIdx: tab, records: list.Items}
	}
}

func (m mastersModel) selected() (api.MasterRecord, bool) {
	if m.cursor < 0 || m.cursor >= len(m.records) {
		return nil, false
	}
	return m.records[m.cursor], true
}

func (m mastersModel) recordID(rec api.MasterRecord) int {
	id, _ := rec.Int(m.schema().IDKey)
	return id
}

func (m mastersModel) startForm(rec api.MasterRecord) mastersModel {
	s := m.schema()
	m.editing = true
	m.editID = 0
	m.inputs = make([]textinput.Model, len(s.Fields))
	for i, f := range s.Fields {
		ti := textinput.New()
		ti.CharLimit = 200
		ti.Width = 40
		if rec != nil {
			switch f.Type {
			case masters.FieldSwitch:
				if b, ok := rec.Bool(f.Name); ok && b {
					ti.SetValue("true")
				} else {
					ti.SetValue("false")
				}
			default:
				ti.SetValue(rec.String(f.Name))
			}
		}
		m.inputs[i] = ti
	}
	if rec != nil {
		m.editID = m.recordID(rec)
	}
	m.focus = 0
	m.inputs[0].Focus()
	return m
}

func (m mastersModel) submitForm() tea.Cmd {
	s := m.schema()
	values := map[string]string{}
	fields := map[string]any{}
	for i, f := range s.Fields {
		v := m.inputs[i].Value()
		values[f.Name] = v
		switch f.Type {
		case masters.FieldSwitch:
			fields[f.Name] = v == "true" || v == "yes" || v == "y"
		default:
			fields[f.Name] = v
		}
	}
	id := m.editID
	d := m.deps
	return func() tea.Msg {
		if err := s.Validate(values); err != nil {
			return errMsg{err: err}
		}
		ctx := context.Background()
		var err error
		if id == 0 {
			_, err = d.client.CreateMaster(ctx, s.BasePath, fields)
		} else {
			_, err = d.client.UpdateMaster(ctx, s.BasePath, id, fields)
		}
		if err != nil {
			return errMsg{err: err}
		}
		d.broker.Success("Saved")
		return mastersReloadMsg{}
	}
}

func (m mastersModel) deleteSelected() tea.Cmd {
	rec, ok := m.selected()
	if !ok {
		return nil
	}
	s := m.schema()
	if pre, _ := rec.Bool(s.IsPredefinedKey); pre {
		broker := m.deps.broker
		return func() tea.Msg {
			broker.Warning("Predefined records cannot be deleted")
			return nil
		}
	}
	id := m.recordID(rec)
	name := rec.String(s.NameKey)
	d := m.deps
	return func() tea.Msg {
		ok := <-d.broker.Confirm(
			fmt.Sprintf("Delete %q?", name),
			alertConfirmDelete("Delete "+s.Title),
		)
		if !ok {
			return nil
		}
		if err := d.client.DeleteMaster(context.Background(), s.BasePath, id); err != nil {
			return errMsg{err: err}
		}
		d.broker.Success("Deleted")
		return mastersReloadMsg{}
	}
}

func (m mastersModel) toggleSelected() tea.Cmd {
	rec, ok := m.selected()
	if !ok {
		return nil
	}
	s := m.schema()
	id := m.recordID(rec)
	client := m.deps.client
	return func() tea.Msg {
		if err := client.ToggleMasterActive(context.Background(), s.BasePath, id); err != nil {
			return errMsg{err: err}
		}
		return mastersReloadMsg{}
	}
}

type mastersReloadMsg struct{}

func (m mastersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case mastersLoadedMsg:
		if msg.kindIdx != m.tab {
			return m, nil // stale load from a previous tab
		}
		m.loading = false
		m.records = msg.records
		if m.cursor >= len(m.records) {
			m.cursor = 0
		}
		return m, nil

	case mastersReloadMsg:
		m.editing = false
		m.loading = true
		return m, m.load()

	case errMsg:
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateForm(msg)
		}
		switch msg.String() {
		case "tab":
			m.tab = (m.tab + 1) % len(m.schemas)
			m.cursor = 0
			m.loading = true
			return m, m.load()
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.records)-1 {
				m.cursor++
			}
		case "n":
			return m.startForm(nil), textinput.Blink
		case "e":
			if rec, ok := m.selected(); ok {
				if pre, _ := rec.Bool(m.schema().IsPredefinedKey); pre {
					m.deps.broker.Warning("Predefined records cannot be edited")
					return m, nil
				}
				return m.startForm(rec), textinput.Blink
			}
		case "t":
			return m, m.toggleSelected()
		case "d":
			return m, m.deleteSelected()
		case "r":
			m.loading = true
			return m, m.load()
		case "esc":
			return m, func() tea.Msg { return navigate(ScreenDashboard) }
		}
	}
	return m, nil
}

func (m mastersModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
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

func (m mastersModel) View() string {
	var b strings.Builder
	s := m.schema()

	if m.editing {
		verb := "New"
		if m.editID != 0 {
			verb = "Edit"
		}
		b.WriteString(titleStyle.Render(verb + " " + s.Title))
		b.WriteString("\n\n")
		for i, f := range s.Fields {
			label := f.Label
			if f.Type == masters.FieldSwitch {
				label += " (true/false)"
			}
			b.WriteString(labelStyle.Render(label) + "\n")
			b.WriteString(m.inputs[i].View() + "\n")
		}
		b.WriteString(helpStyle.Render("enter submit | esc cancel"))
		return b.String()
	}

	var tabs []string
	for i, sc := range m.schemas {
		if i == m.tab {
			tabs = append(tabs, titleStyle.Render(sc.Title))
		} else {
			tabs = append(tabs, sc.Title)
		}
	}
	b.WriteString(strings.Join(tabs, " | "))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}
	if len(m.records) == 0 {
		b.WriteString(detailTextStyle.Render("No records.") + "\n")
	}
	for i, rec := range m.records {
		name := rec.String(s.NameKey)
		var marks []string
		if pre, _ := rec.Bool(s.IsPredefinedKey); pre {
			marks = append(marks, "predefined")
		}
		if active, ok := rec.Bool(s.IsActiveKey); ok && !active {
			marks = append(marks, "inactive")
		}
		line := name
		if len(marks) > 0 {
			line += " [" + strings.Join(marks, ", ") + "]"
		}
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(itemStyle.Render(line) + "\n")
		}
	}

	b.WriteString(helpStyle.Render("tab switch table | n new | e edit | t toggle active | d delete | esc back"))
	return b.String()
}
