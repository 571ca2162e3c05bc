package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rtoctl/internal/api"
)

type dashboardModel struct {
	deps    deps
	spinner spinner.Model
	loading bool
	stats   *api.DashboardStats
	status  *api.DocumentStatus
}

func newDashboardModel(d deps) dashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return dashboardModel{deps: d, spinner: sp, loading: true}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m dashboardModel) load() tea.Cmd {
	client := m.deps.client
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := client.GetDashboardStats(ctx, api.ListParams{})
		if err != nil {
			return errMsg{err: err}
		}
		status, err := client.GetDocumentStatus(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return dashboardLoadedMsg{stats: stats, status: status}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.stats = msg.stats
		m.status = msg.status
		return m, nil

	case errMsg:
		m.loading = false
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "p":
			return m, func() tea.Msg { return navigate(ScreenParties) }
		case "o":
			return m, func() tea.Msg { return navigate(ScreenDocuments) }
		case "x":
			return m, func() tea.Msg { return navigate(ScreenExpenses) }
		case "l":
			return m, func() tea.Msg { return navigate(ScreenLedgers) }
		case "i":
			return m, func() tea.Msg { return navigate(ScreenNotifications) }
		case "m":
			return m, func() tea.Msg { return navigate(ScreenMasters) }
		case "u":
			return m, func() tea.Msg { return navigate(ScreenProfile) }
		case "r":
			m.loading = true
			return m, m.load()
		}
	}
	return m, nil
}

func statCard(label string, value string) string {
	return statCardStyle.Render(label + "\n" + statValueStyle.Render(value))
}

func (m dashboardModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Dashboard"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading...\n")
		return b.String()
	}

	if m.stats != nil {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			statCard("Parties", fmt.Sprintf("%d", m.stats.TotalParties)),
			statCard("Vehicles", fmt.Sprintf("%d", m.stats.TotalVehicles)),
			statCard("Documents", fmt.Sprintf("%d", m.stats.TotalDocuments)),
			statCard("Expiring", fmt.Sprintf("%d", m.stats.ExpiringSoon)),
		)
		b.WriteString(row + "\n")
		b.WriteString(detailTextStyle.Render(fmt.Sprintf(
			"Revenue this month: %.2f   Expenses this month: %.2f",
			m.stats.MonthlyRevenue, m.stats.MonthlyExpenses)))
		b.WriteString("\n")
	}
	if m.status != nil {
		b.WriteString(detailTextStyle.Render(fmt.Sprintf(
			"Documents: %d valid, %d expiring, %d expired",
			m.status.Valid, m.status.Expiring, m.status.Expired)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("p parties | o documents | x expenses | l ledgers | i notifications | m masters | u profile | r refresh"))
	return b.String()
}
