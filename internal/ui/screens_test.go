package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtoctl/internal/alert"
	"rtoctl/internal/api"
)

func testDeps() deps {
	return deps{broker: alert.NewBroker(), client: api.NewClient("http://127.0.0.1:1")}
}

func rawRecord(t *testing.T, fields map[string]any) api.MasterRecord {
	t.Helper()
	data, err := json.Marshal(fields)
	require.NoError(t, err)
	var rec api.MasterRecord
	require.NoError(t, json.Unmarshal(data, &rec))
	return rec
}

func TestLoginModel_TabCyclesFocus(t *testing.T) {
	m := newLoginModel(testDeps())
	require.True(t, m.inputs[loginFieldEmail].Focused())

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = model.(loginModel)
	assert.True(t, m.inputs[loginFieldPassword].Focused())
	assert.False(t, m.inputs[loginFieldEmail].Focused())

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = model.(loginModel)
	assert.True(t, m.inputs[loginFieldEmail].Focused())
}

func TestLoginModel_View(t *testing.T) {
	m := newLoginModel(testDeps())
	view := m.View()
	assert.Contains(t, view, "Sign In")
	assert.Contains(t, view, "Email")
	assert.Contains(t, view, "Password")
}

func TestRegisterModel_View(t *testing.T) {
	m := newRegisterModel(testDeps())
	view := m.View()
	for _, label := range regLabels {
		assert.Contains(t, view, label)
	}
}

func TestPartiesModel_CursorStaysInRange(t *testing.T) {
	m := newPartiesModel(testDeps())
	model, _ := m.Update(partiesLoadedMsg{list: &api.List[api.Party]{
		Items: []api.Party{{ID: 1, Name: "Sharma Motors"}, {ID: 2, Name: "City Cabs"}},
	}})
	m = model.(partiesModel)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = model.(partiesModel)
	assert.Equal(t, 1, m.cursor)

	// cannot go past the last row
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = model.(partiesModel)
	assert.Equal(t, 1, m.cursor)

	assert.Contains(t, m.View(), "Sharma Motors")
}

func TestPartyDetailsModel_VehicleFormRoundTrip(t *testing.T) {
	m := newPartyDetailsModel(testDeps(), 7)
	model, _ := m.Update(partyDetailsLoadedMsg{
		party:    &api.Party{ID: 7, Name: "Sharma Motors"},
		vehicles: []api.Vehicle{{ID: 21, Number: "MH12AB1234", PartyID: 7}},
	})
	m = model.(partyDetailsModel)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = model.(partyDetailsModel)
	require.Equal(t, partyDetailsModeForm, m.mode)
	assert.Contains(t, m.View(), "New Vehicle")
	assert.Empty(t, m.numberInput.Value())

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(partyDetailsModel)
	assert.Equal(t, partyDetailsModeList, m.mode)

	// Edit prefills the selected vehicle.
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	m = model.(partyDetailsModel)
	require.Equal(t, partyDetailsModeForm, m.mode)
	assert.Equal(t, 21, m.editingID)
	assert.Equal(t, "MH12AB1234", m.numberInput.Value())
	assert.Contains(t, m.View(), "Edit Vehicle")
}

func TestPartyDetailsModel_SaveVehicle(t *testing.T) {
	var gotMethod, gotPath, gotNumber string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		gotNumber, _ = body["vehNumber"].(string)
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"vehId": 21}})
	}))
	defer server.Close()

	d := testDeps()
	d.client = api.NewClient(server.URL)
	m := newPartyDetailsModel(d, 7)

	m = m.openVehicleForm(nil)
	m.numberInput.SetValue("MH12AB1234")
	msg := m.saveVehicle()()
	assert.IsType(t, partyDetailsReloadMsg{}, msg)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/parties/vehicles", gotPath)
	assert.Equal(t, "MH12AB1234", gotNumber)

	m = m.openVehicleForm(&api.Vehicle{ID: 21, Number: "MH12AB1234"})
	m.numberInput.SetValue("MH14XY9999")
	msg = m.saveVehicle()()
	assert.IsType(t, partyDetailsReloadMsg{}, msg)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/parties/vehicles/21", gotPath)

	// An empty number never reaches the wire.
	m = m.openVehicleForm(nil)
	msg = m.saveVehicle()()
	assert.IsType(t, errMsg{}, msg)
}

func TestMastersModel_TabSwitchesSchema(t *testing.T) {
	m := newMastersModel(testDeps())
	assert.Equal(t, "Party Types", m.schema().Title)

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = model.(mastersModel)
	assert.Equal(t, "Document Types", m.schema().Title)
	assert.True(t, m.loading)
}

func TestMastersModel_StaleLoadIgnored(t *testing.T) {
	m := newMastersModel(testDeps())
	m.tab = 1

	rec := rawRecord(t, map[string]any{"ptmId": 1, "ptmName": "Dealer"})
	model, _ := m.Update(mastersLoadedMsg{kindIdx: 0, records: []api.MasterRecord{rec}})
	m = model.(mastersModel)

	assert.True(t, m.loading, "load result for another tab must be dropped")
	assert.Empty(t, m.records)
}

func TestMastersModel_PredefinedGuard(t *testing.T) {
	d := testDeps()
	m := newMastersModel(d)
	rec := rawRecord(t, map[string]any{
		"ptmId": 1, "ptmName": "Dealer", "ptmIsPredefined": true, "ptmIsActive": true,
	})
	model, _ := m.Update(mastersLoadedMsg{kindIdx: 0, records: []api.MasterRecord{rec}})
	m = model.(mastersModel)

	// Edit on a predefined record raises a warning instead of a form.
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	m = model.(mastersModel)
	assert.False(t, m.editing)
	require.Equal(t, 1, d.broker.Len())
	assert.Contains(t, d.broker.Alerts()[0].Message, "cannot be edited")

	// Delete resolves to a warning without a confirmation prompt.
	cmd := m.deleteSelected()
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, 2, d.broker.Len())
}

func TestMastersModel_ViewMarksRecords(t *testing.T) {
	m := newMastersModel(testDeps())
	recs := []api.MasterRecord{
		rawRecord(t, map[string]any{"ptmId": 1, "ptmName": "Dealer", "ptmIsPredefined": true, "ptmIsActive": true}),
		rawRecord(t, map[string]any{"ptmId": 2, "ptmName": "Agent", "ptmIsPredefined": false, "ptmIsActive": false}),
	}
	model, _ := m.Update(mastersLoadedMsg{kindIdx: 0, records: recs})
	m = model.(mastersModel)

	view := m.View()
	assert.Contains(t, view, "Dealer [predefined]")
	assert.Contains(t, view, "Agent [inactive]")
}

func TestDocumentsModel_FormRoundTrip(t *testing.T) {
	m := newDocumentsModel(testDeps())
	m.loading = false

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = model.(documentsModel)
	require.Equal(t, documentsModeForm, m.mode)
	assert.Contains(t, m.View(), "New Document")

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(documentsModel)
	assert.Equal(t, documentsModeList, m.mode)
}

func TestNotificationsModel_UnreadMarker(t *testing.T) {
	m := newNotificationsModel(testDeps())
	model, _ := m.Update(notificationsLoadedMsg{
		list: &api.List[api.Notification]{Items: []api.Notification{
			{ID: 1, Message: "Insurance expiring", IsRead: false, Party: "Sharma Motors"},
			{ID: 2, Message: "PUC renewed", IsRead: true},
		}},
		unread: 1,
	})
	m = model.(notificationsModel)

	view := m.View()
	assert.Contains(t, view, "1 unread")
	assert.Contains(t, view, "* Insurance expiring (Sharma Motors)")
}
