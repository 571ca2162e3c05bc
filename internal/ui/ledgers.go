package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"rtoctl/internal/api"
)

type ledgersModel struct {
	deps    deps
	loading bool
	table   table.Model
	summary *api.LedgerSummary
	entries []api.Ledger
}

func newLedgersModel(d deps) ledgersModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 8},
		{Title: "Amount", Width: 12},
		{Title: "Balance", Width: 12},
		{Title: "Description", Width: 32},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	return ledgersModel{deps: d, table: t, loading: true}
}

func (m ledgersModel) Init() tea.Cmd {
	return m.load()
}

func (m ledgersModel) load() tea.Cmd {
	client := m.deps.client
	return func() tea.Msg {
		ctx := context.Background()
		list, err := client.ListLedgers(ctx, api.ListParams{Limit: 100})
		if err != nil {
			return errMsg{err: err}
		}
		summary, err := client.GetLedgerSummary(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return ledgersLoadedMsg{list: list, summary: summary}
	}
}

func (m ledgersModel) deleteSelected() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.entries) {
		return nil
	}
	entry := m.entries[idx]
	d := m.deps
	return func() tea.Msg {
		ok := <-d.broker.Confirm(
			fmt.Sprintf("Delete %s entry of %.2f?", entry.Type, entry.Amount),
			alertConfirmDelete("Delete Entry"),
		)
		if !ok {
			return nil
		}
		if err := d.client.DeleteLedger(context.Background(), entry.ID); err != nil {
			return errMsg{err: err}
		}
		d.broker.Success("Entry deleted")
		return ledgersReloadMsg{}
	}
}

type ledgersReloadMsg struct{}

func (m ledgersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ledgersLoadedMsg:
		m.loading = false
		m.summary = msg.summary
		m.entries = msg.list.Items
		rows := make([]table.Row, len(m.entries))
		for i, e := range m.entries {
			rows[i] = table.Row{
				e.Date,
				e.Type,
				fmt.Sprintf("%.2f", e.Amount),
				fmt.Sprintf("%.2f", e.BalanceAfter),
				e.Description,
			}
		}
		m.table.SetRows(rows)
		return m, nil

	case ledgersReloadMsg:
		m.loading = true
		return m, m.load()

	case errMsg:
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "d":
			return m, m.deleteSelected()
		case "r":
			m.loading = true
			return m, m.load()
		case "esc":
			return m, func() tea.Msg { return navigate(ScreenDashboard) }
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ledgersModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Ledgers"))
	if m.summary != nil {
		b.WriteString(fmt.Sprintf("  credit %.2f, debit %.2f, balance %.2f",
			m.summary.TotalCredit, m.summary.TotalDebit, m.summary.Balance))
	}
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}

	b.WriteString(paneStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("d delete | r refresh | esc back"))
	return b.String()
}
