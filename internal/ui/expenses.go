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

var expenseFormLabels = []string{"Category ID", "Amount", "Date (YYYY-MM-DD)", "Payment Mode ID", "Description", "Receipt Path"}

type expensesModel struct {
	deps    deps
	loading bool
	editing bool
	list    *api.List[api.Expense]
	summary *api.ExpenseSummary
	cursor  int

	inputs []textinput.Model
	focus  int
}

func newExpensesModel(d deps) expensesModel {
	return expensesModel{deps: d, loading: true}
}

func (m expensesModel) Init() tea.Cmd {
	return m.load()
}

func (m expensesModel) load() tea.Cmd {
	client := m.deps.client
	return func() tea.Msg {
		ctx := context.Background()
		list, err := client.ListExpenses(ctx, api.ListParams{Limit: 50})
		if err != nil {
			return errMsg{err: err}
		}
		summary, err := client.GetExpenseSummary(ctx, api.ListParams{})
		if err != nil {
			return errMsg{err: err}
		}
		return expensesLoadedMsg{list: list, summary: summary}
	}
}

func (m expensesModel) startForm() expensesModel {
	m.editing = true
	m.inputs = make([]textinput.Model, len(expenseFormLabels))
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

func (m expensesModel) submitForm() tea.Cmd {
	fields := map[string]string{
		"expCategoryId":    m.inputs[0].Value(),
		"expAmount":        m.inputs[1].Value(),
		"expDate":          m.inputs[2].Value(),
		"expPaymentModeId": m.inputs[3].Value(),
		"expDescription":   m.inputs[4].Value(),
	}
	path := m.inputs[5].Value()
	d := m.deps
	return func() tea.Msg {
		if err := validation.Required("expAmount", fields["expAmount"]); err != nil {
			return errMsg{err: err}
		}
		ctx := context.Background()
		if path == "" {
			if _, err := d.client.CreateExpense(ctx, fields, "", nil); err != nil {
				return errMsg{err: err}
			}
		} else {
			f, err := os.Open(path)
			if err != nil {
				return errMsg{err: fmt.Errorf("opening receipt: %w", err)}
			}
			defer f.Close()
			if _, err := d.client.CreateExpense(ctx, fields, filepath.Base(path), f); err != nil {
				return errMsg{err: err}
			}
		}
		d.broker.Success("Expense saved")
		return expensesReloadMsg{}
	}
}

func (m expensesModel) deleteSelected() tea.Cmd {
	if m.list == nil || m.cursor >= len(m.list.Items) {
		return nil
	}
	exp := m.list.Items[m.cursor]
	d := m.deps
	return func() tea.Msg {
		ok := <-d.broker.Confirm(
			fmt.Sprintf("Delete expense of %.2f?", exp.Amount),
			alertConfirmDelete("Delete Expense"),
		)
		if !ok {
			return nil
		}
		if err := d.client.DeleteExpense(context.Background(), exp.ID); err != nil {
			return errMsg{err: err}
		}
		d.broker.Success("Expense deleted")
		return expensesReloadMsg{}
	}
}

type expensesReloadMsg struct{}

func (m expensesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case expensesLoadedMsg:
		m.loading = false
		m.list = msg.list
		m.summary = msg.summary
		return m, nil

	case expensesReloadMsg:
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
		case "r":
			m.loading = true
			return m, m.load()
		case "esc":
			return m, func() tea.Msg { return navigate(ScreenDashboard) }
		}
	}
	return m, nil
}

func (m expensesModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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

func (m expensesModel) View() string {
	var b strings.Builder

	if m.editing {
		b.WriteString(titleStyle.Render("New Expense"))
		b.WriteString("\n\n")
		for i, label := range expenseFormLabels {
			b.WriteString(labelStyle.Render(label) + "\n")
			b.WriteString(m.inputs[i].View() + "\n")
		}
		b.WriteString(helpStyle.Render("enter submit | esc cancel"))
		return b.String()
	}

	b.WriteString(titleStyle.Render("Expenses"))
	if m.summary != nil {
		b.WriteString(fmt.Sprintf("  total %.2f", m.summary.Total))
	}
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}
	if m.list == nil || len(m.list.Items) == 0 {
		b.WriteString(detailTextStyle.Render("No expenses recorded.") + "\n")
	}
	if m.list != nil {
		for i, e := range m.list.Items {
			line := fmt.Sprintf("%-12s %10.2f  %s", e.Date, e.Amount, e.Description)
			if i == m.cursor {
				b.WriteString(selectedItemStyle.Render("> "+line) + "\n")
			} else {
				b.WriteString(itemStyle.Render(line) + "\n")
			}
		}
	}

	b.WriteString(helpStyle.Render("n new | d delete | r refresh | esc back"))
	return b.String()
}
