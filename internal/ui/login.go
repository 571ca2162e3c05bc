package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rtoctl/internal/validation"
)

const (
	loginFieldEmail = iota
	loginFieldPassword
)

type loginModel struct {
	deps   deps
	inputs []textinput.Model
	focus  int
	busy   bool
}

func newLoginModel(d deps) loginModel {
	email := textinput.New()
	email.Placeholder = "agent@rto.example"
	email.CharLimit = 156
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 156
	password.Width = 40

	return loginModel{
		deps:   d,
		inputs: []textinput.Model{email, password},
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

type loginDoneMsg struct{}

func (m loginModel) submit() tea.Cmd {
	email := m.inputs[loginFieldEmail].Value()
	password := m.inputs[loginFieldPassword].Value()
	d := m.deps
	return func() tea.Msg {
		if err := validation.Login(email, password); err != nil {
			return errMsg{err: err}
		}
		if _, err := d.session.Login(context.Background(), email, password); err != nil {
			return errMsg{err: err}
		}
		d.broker.Success("Welcome back")
		return navigate(ScreenDashboard)
	}
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		case tea.KeyCtrlR:
			return m, func() tea.Msg { return navigate(ScreenRegister) }
		}

	case errMsg:
		m.busy = false
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) refocus() loginModel {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sign In"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Email") + "\n")
	b.WriteString(m.inputs[loginFieldEmail].View() + "\n\n")
	b.WriteString(labelStyle.Render("Password") + "\n")
	b.WriteString(m.inputs[loginFieldPassword].View() + "\n\n")
	if m.busy {
		b.WriteString("Signing in...\n")
	}
	b.WriteString(helpStyle.Render("enter submit | ctrl+r register | ctrl+c quit"))
	return b.String()
}
