package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rtoctl/internal/session"
)

func TestScreenRequiresAuth(t *testing.T) {
	assert.False(t, ScreenSplash.RequiresAuth())
	assert.False(t, ScreenLogin.RequiresAuth())
	assert.False(t, ScreenRegister.RequiresAuth())

	for _, s := range []Screen{
		ScreenDashboard, ScreenParties, ScreenPartyDetails, ScreenDocuments,
		ScreenExpenses, ScreenLedgers, ScreenNotifications, ScreenMasters, ScreenProfile,
	} {
		assert.True(t, s.RequiresAuth(), "%s must be protected", s)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		state     session.State
		requested Screen
		want      Screen
	}{
		{"restoring pins splash", session.StateInitializing, ScreenDashboard, ScreenSplash},
		{"restoring even for login", session.StateInitializing, ScreenLogin, ScreenSplash},
		{"unauthenticated redirected to login", session.StateUnauthenticated, ScreenParties, ScreenLogin},
		{"unauthenticated keeps login", session.StateUnauthenticated, ScreenLogin, ScreenLogin},
		{"unauthenticated keeps register", session.StateUnauthenticated, ScreenRegister, ScreenRegister},
		{"unauthenticated leaves splash", session.StateUnauthenticated, ScreenSplash, ScreenLogin},
		{"authenticated keeps protected", session.StateAuthenticated, ScreenLedgers, ScreenLedgers},
		{"authenticated redirected off login", session.StateAuthenticated, ScreenLogin, ScreenDashboard},
		{"authenticated redirected off register", session.StateAuthenticated, ScreenRegister, ScreenDashboard},
		{"authenticated leaves splash", session.StateAuthenticated, ScreenSplash, ScreenDashboard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.state, tt.requested))
		})
	}
}
