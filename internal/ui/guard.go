package ui

import "rtoctl/internal/session"

// Screen identifies one screen of the application.
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenLogin
	ScreenRegister
	ScreenDashboard
	ScreenParties
	ScreenPartyDetails
	ScreenDocuments
	ScreenExpenses
	ScreenLedgers
	ScreenNotifications
	ScreenMasters
	ScreenProfile
)

func (s Screen) String() string {
	switch s {
	case ScreenSplash:
		return "splash"
	case ScreenLogin:
		return "login"
	case ScreenRegister:
		return "register"
	case ScreenDashboard:
		return "dashboard"
	case ScreenParties:
		return "parties"
	case ScreenPartyDetails:
		return "partyDetails"
	case ScreenDocuments:
		return "documents"
	case ScreenExpenses:
		return "expenses"
	case ScreenLedgers:
		return "ledgers"
	case ScreenNotifications:
		return "notifications"
	case ScreenMasters:
		return "masters"
	case ScreenProfile:
		return "profile"
	}
	return "unknown"
}

// RequiresAuth reports whether a screen belongs to the protected group.
func (s Screen) RequiresAuth() bool {
	switch s {
	case ScreenSplash, ScreenLogin, ScreenRegister:
		return false
	}
	return true
}

// Resolve is the route guard: given the session state and a requested
// screen it returns the screen that should actually show. While the
// session is still restoring everything resolves to the splash screen,
// so no redirect fires off a stale default.
func Resolve(state session.State, requested Screen) Screen {
	switch state {
	case session.StateInitializing:
		return ScreenSplash
	case session.StateUnauthenticated:
		if requested.RequiresAuth() || requested == ScreenSplash {
			return ScreenLogin
		}
		return requested
	case session.StateAuthenticated:
		if !requested.RequiresAuth() {
			return ScreenDashboard
		}
		return requested
	}
	return ScreenSplash
}
