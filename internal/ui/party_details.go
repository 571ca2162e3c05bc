package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rtoctl/internal/api"
	"rtoctl/internal/validation"
)

type partyDetailsMode int

const (
	partyDetailsModeList partyDetailsMode = iota
	partyDetailsModeForm
)

type partyDetailsModel struct {
	deps     deps
	partyID  int
	loading  bool
	party    *api.Party
	balance  *api.PartyBalance
	vehicles []api.Vehicle
	cursor   int

	mode        partyDetailsMode
	numberInput textinput.Model
	editingID   int
}

func newPartyDetailsModel(d deps, partyID int) partyDetailsModel {
	number := textinput.New()
	number.Placeholder = "MH12AB1234"
	number.CharLimit = 20
	number.Width = 24

	return partyDetailsModel{deps: d, partyID: partyID, loading: true, numberInput: number}
}

func (m partyDetailsModel) Init() tea.Cmd {
	return m.load()
}

func (m partyDetailsModel) load() tea.Cmd {
	client := m.deps.client
	id := m.partyID
	return func() tea.Msg {
		ctx := context.Background()
		party, err := client.GetParty(ctx, id)
		if err != nil {
			return errMsg{err: err}
		}
		balance, err := client.GetPartyBalance(ctx, id)
		if err != nil {
			return errMsg{err: err}
		}
		vehicles, err := client.ListPartyVehicles(ctx, id, api.ListParams{Limit: 50})
		if err != nil {
			return errMsg{err: err}
		}
		return partyDetailsLoadedMsg{party: party, balance: balance, vehicles: vehicles.Items}
	}
}

// openVehicleForm switches to the inline form; a non-nil vehicle means
// edit, nil means create.
func (m partyDetailsModel) openVehicleForm(veh *api.Vehicle) partyDetailsModel {
	m.mode = partyDetailsModeForm
	m.editingID = 0
	m.numberInput.SetValue("")
	if veh != nil {
		m.editingID = veh.ID
		m.numberInput.SetValue(veh.Number)
	}
	m.numberInput.Focus()
	return m
}

func (m partyDetailsModel) saveVehicle() tea.Cmd {
	number := strings.TrimSpace(m.numberInput.Value())
	id := m.editingID
	partyID := m.partyID
	d := m.deps
	return func() tea.Msg {
		if err := validation.Required("Vehicle number", number); err != nil {
			return errMsg{err: err}
		}
		veh := api.Vehicle{Number: number, PartyID: partyID}
		ctx := context.Background()
		var err error
		if id > 0 {
			_, err = d.client.UpdateVehicle(ctx, id, veh)
		} else {
			_, err = d.client.CreateVehicle(ctx, veh)
		}
		if err != nil {
			return errMsg{err: err}
		}
		if id > 0 {
			d.broker.Success("Vehicle updated")
		} else {
			d.broker.Success("Vehicle added")
		}
		return partyDetailsReloadMsg{}
	}
}

func (m partyDetailsModel) deleteVehicle() tea.Cmd {
	if m.cursor >= len(m.vehicles) {
		return nil
	}
	veh := m.vehicles[m.cursor]
	d := m.deps
	return func() tea.Msg {
		ok := <-d.broker.Confirm(
			fmt.Sprintf("Remove vehicle %s?", veh.Number),
			alertConfirmDelete("Remove Vehicle"),
		)
		if !ok {
			return nil
		}
		if err := d.client.DeleteVehicle(context.Background(), veh.ID); err != nil {
			return errMsg{err: err}
		}
		d.broker.Success("Vehicle removed")
		return partyDetailsReloadMsg{}
	}
}

type partyDetailsReloadMsg struct{}

func (m partyDetailsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case partyDetailsLoadedMsg:
		m.loading = false
		m.party = msg.party
		m.balance = msg.balance
		m.vehicles = msg.vehicles
		return m, nil

	case partyDetailsReloadMsg:
		m.loading = true
		m.mode = partyDetailsModeList
		return m, m.load()

	case errMsg:
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		if m.mode == partyDetailsModeForm {
			switch msg.Type {
			case tea.KeyEnter:
				return m, m.saveVehicle()
			case tea.KeyEsc:
				m.mode = partyDetailsModeList
				return m, nil
			}
			var cmd tea.Cmd
			m.numberInput, cmd = m.numberInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.vehicles)-1 {
				m.cursor++
			}
		case "n":
			return m.openVehicleForm(nil), textinput.Blink
		case "e":
			if m.cursor < len(m.vehicles) {
				return m.openVehicleForm(&m.vehicles[m.cursor]), textinput.Blink
			}
		case "d":
			return m, m.deleteVehicle()
		case "l":
			return m, func() tea.Msg { return navigate(ScreenLedgers) }
		case "r":
			m.loading = true
			return m, m.load()
		case "esc":
			return m, func() tea.Msg { return navigate(ScreenParties) }
		}
	}
	return m, nil
}

func (m partyDetailsModel) View() string {
	var b strings.Builder
	if m.loading || m.party == nil {
		b.WriteString("Loading...\n")
		return b.String()
	}

	if m.mode == partyDetailsModeForm {
		title := "New Vehicle"
		if m.editingID > 0 {
			title = "Edit Vehicle"
		}
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("Vehicle Number") + "\n")
		b.WriteString(m.numberInput.View() + "\n\n")
		b.WriteString(helpStyle.Render("enter save | esc cancel"))
		return b.String()
	}

	b.WriteString(detailTitleStyle.Render(m.party.Name))
	b.WriteString("\n")
	b.WriteString(detailTextStyle.Render(fmt.Sprintf("Type: %s", m.party.TypeName)) + "\n")
	b.WriteString(detailTextStyle.Render(fmt.Sprintf("Contact: %s", m.party.ContactNo)) + "\n")
	if m.party.Address != "" {
		b.WriteString(detailTextStyle.Render(fmt.Sprintf("Address: %s", m.party.Address)) + "\n")
	}
	if m.balance != nil {
		b.WriteString(detailTextStyle.Render(fmt.Sprintf("Balance: %.2f %s", m.balance.Balance, m.balance.Type)) + "\n")
	}

	b.WriteString("\n" + titleStyle.Render("Vehicles") + "\n")
	if len(m.vehicles) == 0 {
		b.WriteString(detailTextStyle.Render("No vehicles on file.") + "\n")
	}
	for i, v := range m.vehicles {
		line := v.Number
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(itemStyle.Render(line) + "\n")
		}
	}

	b.WriteString(helpStyle.Render("n add vehicle | e edit | d remove | l ledgers | r refresh | esc back"))
	return b.String()
}
