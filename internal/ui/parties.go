package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rtoctl/internal/api"
)

type partiesModel struct {
	deps    deps
	search  textinput.Model
	list    *api.List[api.Party]
	cursor  int
	page    int
	loading bool
}

func newPartiesModel(d deps) partiesModel {
	search := textinput.New()
	search.Placeholder = "search parties"
	search.Width = 30
	return partiesModel{deps: d, search: search, page: 1, loading: true}
}

func (m partiesModel) Init() tea.Cmd {
	return m.load()
}

func (m partiesModel) load() tea.Cmd {
	client := m.deps.client
	params := api.ListParams{Page: m.page, Limit: 20, Search: m.search.Value()}
	return func() tea.Msg {
		list, err := client.ListParties(context.Background(), params)
		if err != nil {
			return errMsg{err: err}
		}
		return partiesLoadedMsg{list: list}
	}
}

func (m partiesModel) deleteSelected() tea.Cmd {
	if m.list == nil || m.cursor >= len(m.list.Items) {
		return nil
	}
	party := m.list.Items[m.cursor]
	d := m.deps
	return func() tea.Msg {
		ok := <-d.broker.Confirm(
			fmt.Sprintf("Delete %s? This also removes its vehicles and ledger entries.", party.Name),
			alertConfirmDelete("Delete Party"),
		)
		if !ok {
			return nil
		}
		if err := d.client.DeleteParty(context.Background(), party.ID); err != nil {
			return errMsg{err: err}
		}
		d.broker.Success("Party deleted")
		return partiesReloadMsg{}
	}
}

type partiesReloadMsg struct{}

func (m partiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case partiesLoadedMsg:
		m.loading = false
		m.list = msg.list
		if m.cursor >= len(msg.list.Items) {
			m.cursor = 0
		}
		return m, nil

	case partiesReloadMsg:
		m.loading = true
		return m, m.load()

	case errMsg:
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			switch msg.Type {
			case tea.KeyEnter, tea.KeyEsc:
				m.search.Blur()
				m.page = 1
				m.loading = true
				return m, m.load()
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
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
		case "/":
			m.search.Focus()
			return m, textinput.Blink
		case "n":
			if m.list != nil && m.list.Pagination.HasMore {
				m.page++
				m.loading = true
				return m, m.load()
			}
		case "b":
			if m.page > 1 {
				m.page--
				m.loading = true
				return m, m.load()
			}
		case "d":
			return m, m.deleteSelected()
		case "r":
			m.loading = true
			return m, m.load()
		case "enter":
			if m.list != nil && m.cursor < len(m.list.Items) {
				id := m.list.Items[m.cursor].ID
				return m, func() tea.Msg {
					return navigateMsg{screen: ScreenPartyDetails, partyID: id}
				}
			}
		case "esc":
			return m, func() tea.Msg { return navigate(ScreenDashboard) }
		}
	}
	return m, nil
}

func (m partiesModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Parties"))
	b.WriteString("  " + m.search.View() + "\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}
	if m.list == nil || len(m.list.Items) == 0 {
		b.WriteString(detailTextStyle.Render("No parties found.") + "\n")
	} else {
		for i, p := range m.list.Items {
			line := fmt.Sprintf("%-24s %-12s %10.2f %s", p.Name, p.ContactNo, p.CurrentBalance, p.BalanceType)
			if i == m.cursor {
				b.WriteString(selectedItemStyle.Render("> "+line) + "\n")
			} else {
				b.WriteString(itemStyle.Render(line) + "\n")
			}
		}
		b.WriteString(fmt.Sprintf("\npage %d, %d total\n", m.page, m.list.Pagination.Total))
	}

	b.WriteString(helpStyle.Render("enter details | / search | n/b page | d delete | esc back"))
	return b.String()
}
