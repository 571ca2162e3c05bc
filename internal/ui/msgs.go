package ui

import (
	"rtoctl/internal/api"
	"rtoctl/internal/session"
)

// Messages shared across screen models.

type sessionStateMsg struct{ state session.State }

type alertsChangedMsg struct{}

type navigateMsg struct {
	screen  Screen
	partyID int // carried for ScreenPartyDetails
}

type errMsg struct{ err error }

type partiesLoadedMsg struct{ list *api.List[api.Party] }

type partyDetailsLoadedMsg struct {
	party    *api.Party
	balance  *api.PartyBalance
	vehicles []api.Vehicle
}

type documentsLoadedMsg struct {
	list   *api.List[api.Document]
	counts *api.DocumentCounts
}

type expensesLoadedMsg struct {
	list    *api.List[api.Expense]
	summary *api.ExpenseSummary
}

type ledgersLoadedMsg struct {
	list    *api.List[api.Ledger]
	summary *api.LedgerSummary
}

type notificationsLoadedMsg struct {
	list   *api.List[api.Notification]
	unread int
}

type mastersLoadedMsg struct {
	kindIdx int
	records []api.MasterRecord
}

type dashboardLoadedMsg struct {
	stats  *api.DashboardStats
	status *api.DocumentStatus
}

type savedMsg struct{ message string }

func navigate(s Screen) navigateMsg { return navigateMsg{screen: s} }
