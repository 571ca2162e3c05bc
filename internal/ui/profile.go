package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rtoctl/internal/api"
	"rtoctl/internal/validation"
)

var profileLabels = []string{"Name", "Email", "Mobile", "Business Name", "Business Address"}

type profileModel struct {
	deps    deps
	inputs  []textinput.Model
	focus   int
	editing bool
}

func newProfileModel(d deps) profileModel {
	inputs := make([]textinput.Model, len(profileLabels))
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 200
		ti.Width = 40
		inputs[i] = ti
	}
	m := profileModel{deps: d, inputs: inputs}
	if u := d.session.User(); u != nil {
		m.inputs[0].SetValue(u.Name)
		m.inputs[1].SetValue(u.Email)
		m.inputs[2].SetValue(u.Mobile)
		m.inputs[3].SetValue(u.Business)
		m.inputs[4].SetValue(u.Address)
	}
	return m
}

func (m profileModel) Init() tea.Cmd {
	return nil
}

// save pushes the edited profile to the server, then lets the session
// manager replace the cached user so storage and memory stay in step.
func (m profileModel) save() tea.Cmd {
	u := m.deps.session.User()
	if u == nil {
		return nil
	}
	updated := api.User{
		ID:       u.ID,
		Name:     m.inputs[0].Value(),
		Email:    m.inputs[1].Value(),
		Mobile:   m.inputs[2].Value(),
		Business: m.inputs[3].Value(),
		Address:  m.inputs[4].Value(),
	}
	d := m.deps
	return func() tea.Msg {
		if err := validation.Required("name", updated.Name); err != nil {
			return errMsg{err: err}
		}
		if err := validation.Email("email", updated.Email); err != nil {
			return errMsg{err: err}
		}
		ctx := context.Background()
		saved, err := d.client.UpdateProfile(ctx, updated)
		if err != nil {
			return errMsg{err: err}
		}
		d.session.UpdateUser(*saved)
		return savedMsg{message: "Profile updated"}
	}
}

func (m profileModel) logout() tea.Cmd {
	d := m.deps
	return func() tea.Msg {
		ok := <-d.broker.Confirm("Sign out of this device?", alertConfirmOptions("Sign Out", "Sign Out"))
		if !ok {
			return nil
		}
		d.session.Logout()
		return navigate(ScreenLogin)
	}
}

func (m profileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.editing {
			switch msg.String() {
			case "e":
				m.editing = true
				m.focus = 0
				m.inputs[0].Focus()
				return m, textinput.Blink
			case "q":
				return m, m.logout()
			case "esc":
				return m, func() tea.Msg { return navigate(ScreenDashboard) }
			}
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEsc:
			m.editing = false
			m.inputs[m.focus].Blur()
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
			m.editing = false
			return m, m.save()
		}

		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd

	case savedMsg:
		return m, nil
	}
	return m, nil
}

func (m profileModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Profile"))
	b.WriteString("\n\n")

	for i, label := range profileLabels {
		b.WriteString(labelStyle.Render(label) + "\n")
		if m.editing {
			b.WriteString(m.inputs[i].View() + "\n")
		} else {
			b.WriteString(detailTextStyle.Render(m.inputs[i].Value()) + "\n")
		}
	}
	b.WriteString("\n")
	if m.editing {
		b.WriteString(helpStyle.Render("enter save | esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("e edit | q sign out | esc back"))
	}
	return b.String()
}
