package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"rtoctl/internal/api"
)

type notificationsModel struct {
	deps    deps
	loading bool
	list    *api.List[api.Notification]
	unread  int
	cursor  int
}

func newNotificationsModel(d deps) notificationsModel {
	return notificationsModel{deps: d, loading: true}
}

func (m notificationsModel) Init() tea.Cmd {
	return m.load()
}

func (m notificationsModel) load() tea.Cmd {
	client := m.deps.client
	return func() tea.Msg {
		ctx := context.Background()
		list, err := client.ListNotifications(ctx, api.ListParams{Limit: 50})
		if err != nil {
			return errMsg{err: err}
		}
		unread, err := client.GetUnreadCount(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return notificationsLoadedMsg{list: list, unread: unread}
	}
}

type notificationsReloadMsg struct{}

func (m notificationsModel) markRead() tea.Cmd {
	if m.list == nil || m.cursor >= len(m.list.Items) {
		return nil
	}
	n := m.list.Items[m.cursor]
	client := m.deps.client
	return func() tea.Msg {
		if err := client.MarkNotificationRead(context.Background(), n.ID); err != nil {
			return errMsg{err: err}
		}
		return notificationsReloadMsg{}
	}
}

func (m notificationsModel) markAllRead() tea.Cmd {
	client := m.deps.client
	broker := m.deps.broker
	return func() tea.Msg {
		if err := client.MarkAllNotificationsRead(context.Background()); err != nil {
			return errMsg{err: err}
		}
		broker.Success("All notifications marked read")
		return notificationsReloadMsg{}
	}
}

func (m notificationsModel) deleteAll() tea.Cmd {
	d := m.deps
	return func() tea.Msg {
		ok := <-d.broker.Confirm("Delete all notifications?", alertConfirmDelete("Delete All"))
		if !ok {
			return nil
		}
		if err := d.client.DeleteAllNotifications(context.Background()); err != nil {
			return errMsg{err: err}
		}
		d.broker.Success("Notifications cleared")
		return notificationsReloadMsg{}
	}
}

func (m notificationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationsLoadedMsg:
		m.loading = false
		m.list = msg.list
		m.unread = msg.unread
		if m.list != nil && m.cursor >= len(m.list.Items) {
			m.cursor = 0
		}
		return m, nil

	case notificationsReloadMsg:
		m.loading = true
		return m, m.load()

	case errMsg:
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.list != nil && m.cursor < len(m.list.Items)-1 {
				m.cursor++
			}
		case "enter":
			return m, m.markRead()
		case "a":
			return m, m.markAllRead()
		case "D":
			return m, m.deleteAll()
		case "r":
			m.loading = true
			return m, m.load()
		case "esc":
			return m, func() tea.Msg { return navigate(ScreenDashboard) }
		}
	}
	return m, nil
}

func (m notificationsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Notifications"))
	b.WriteString(fmt.Sprintf("  %d unread", m.unread))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}
	if m.list == nil || len(m.list.Items) == 0 {
		b.WriteString(detailTextStyle.Render("Nothing here.") + "\n")
	}
	if m.list != nil {
		for i, n := range m.list.Items {
			marker := "*"
			if n.IsRead {
				marker = " "
			}
			line := fmt.Sprintf("%s %s", marker, n.Message)
			if n.Party != "" {
				line += " (" + n.Party + ")"
			}
			if i == m.cursor {
				b.WriteString(selectedItemStyle.Render("> "+line) + "\n")
			} else {
				b.WriteString(itemStyle.Render(line) + "\n")
			}
		}
	}

	b.WriteString(helpStyle.Render("enter mark read | a mark all | D delete all | esc back"))
	return b.String()
}
