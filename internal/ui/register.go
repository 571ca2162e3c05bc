package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rtoctl/internal/api"
	"rtoctl/internal/validation"
)

const (
	regFieldName = iota
	regFieldEmail
	regFieldMobile
	regFieldBusiness
	regFieldPassword
	regFieldConfirm
)

var regLabels = []string{"Name", "Email", "Mobile", "Business Name", "Password", "Confirm Password"}

type registerModel struct {
	deps   deps
	inputs []textinput.Model
	focus  int
	busy   bool
}

func newRegisterModel(d deps) registerModel {
	inputs := make([]textinput.Model, len(regLabels))
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 156
		ti.Width = 40
		if i == regFieldPassword || i == regFieldConfirm {
			ti.EchoMode = textinput.EchoPassword
		}
		inputs[i] = ti
	}
	inputs[regFieldName].Focus()

	return registerModel{deps: d, inputs: inputs}
}

func (m registerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m registerModel) submit() tea.Cmd {
	req := api.RegisterRequest{
		Name:     m.inputs[regFieldName].Value(),
		Email:    m.inputs[regFieldEmail].Value(),
		Mobile:   m.inputs[regFieldMobile].Value(),
		Business: m.inputs[regFieldBusiness].Value(),
		Password: m.inputs[regFieldPassword].Value(),
	}
	confirm := m.inputs[regFieldConfirm].Value()
	d := m.deps
	return func() tea.Msg {
		if err := validation.Register(req.Name, req.Email, req.Mobile, req.Password, confirm); err != nil {
			return errMsg{err: err}
		}
		if _, err := d.session.Register(context.Background(), req); err != nil {
			return errMsg{err: err}
		}
		d.broker.Success("Account created")
		return navigate(ScreenDashboard)
	}
}

func (m registerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyTab, tea.KeyDown:
			m.focus = (m.focus + 1) % len(m.inputs)
			return m.refocus(), nil
		case tea.KeyUp:
			m.focus = (m.focus + len(m.inputs) - 1) % len(m.inputs)
			return m.refocus(), nil
		case tea.KeyEnter:
			if m.focus < len(m.inputs)-1 {
				m.focus++
				return m.refocus(), nil
			}
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, m.submit()
		case tea.KeyEsc:
			return m, func() tea.Msg { return navigate(ScreenLogin) }
		}

	case errMsg:
		m.busy = false
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m registerModel) refocus() registerModel {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m registerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Create Account"))
	b.WriteString("\n\n")
	for i, label := range regLabels {
		b.WriteString(labelStyle.Render(label) + "\n")
		b.WriteString(m.inputs[i].View() + "\n")
	}
	b.WriteString("\n")
	if m.busy {
		b.WriteString("Creating account...\n")
	}
	b.WriteString(helpStyle.Render("enter submit | esc back to sign in"))
	return b.String()
}
