package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rtoctl/internal/alert"
	"rtoctl/internal/api"
	"rtoctl/internal/session"
)

// deps bundles the shared services every screen needs.
type deps struct {
	session *session.Manager
	broker  *alert.Broker
	client  *api.Client
}

// App is the root model. It owns the route guard, the always-mounted
// alert layer and the currently active screen.
type App struct {
	deps deps

	screen Screen
	model  tea.Model

	width  int
	height int
}

// NewApp builds the root model around an initialized session manager.
func NewApp(sess *session.Manager, broker *alert.Broker, client *api.Client) App {
	d := deps{session: sess, broker: broker, client: client}
	return App{
		deps:   d,
		screen: ScreenSplash,
		model:  newSplashModel(),
	}
}

// Run starts the program and pumps broker and session changes back into
// it.
func Run(sess *session.Manager, broker *alert.Broker, client *api.Client) error {
	app := NewApp(sess, broker, client)
	p := tea.NewProgram(app, tea.WithAltScreen())
	broker.SetOnChange(func() {
		go p.Send(alertsChangedMsg{})
	})
	watchSession(sess, p.Send)
	_, err := p.Run()
	return err
}

// watchSession republishes every session transition as a message so the
// guard re-resolves the active screen. A 401 that invalidates the
// session mid-use lands the user back on the login screen this way.
func watchSession(sess *session.Manager, send func(tea.Msg)) {
	sess.Subscribe(func(s session.State) {
		go send(sessionStateMsg{state: s})
	})
}

func (m App) Init() tea.Cmd {
	return tea.Batch(m.model.Init(), m.restoreCmd())
}

// restoreCmd rehydrates the session from local storage, then reports the
// resulting state so the guard can leave the splash screen.
func (m App) restoreCmd() tea.Cmd {
	sess := m.deps.session
	return func() tea.Msg {
		sess.Restore(context.Background())
		return sessionStateMsg{state: sess.CurrentState()}
	}
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if key.Matches(msg, appKeys.Quit) {
			return m, tea.Quit
		}
		if handleConfirmationKey(m.deps.broker, msg) {
			return m, nil
		}

	case alertsChangedMsg:
		return m, nil

	case errMsg:
		// Toast the failure, then let the active screen see it too so it
		// can reset its loading and busy flags.
		m.deps.broker.Error(msg.err.Error())
		var cmd tea.Cmd
		m.model, cmd = m.model.Update(msg)
		return m, cmd

	case savedMsg:
		m.deps.broker.Success(msg.message)
		return m, nil

	case sessionStateMsg:
		return m.goTo(navigateMsg{screen: m.screen})

	case navigateMsg:
		return m.goTo(msg)
	}

	var cmd tea.Cmd
	m.model, cmd = m.model.Update(msg)
	return m, cmd
}

// goTo runs the requested navigation through the guard. Redundant
// navigation is a no-op so the active screen keeps its state.
func (m App) goTo(msg navigateMsg) (tea.Model, tea.Cmd) {
	target := Resolve(m.deps.session.CurrentState(), msg.screen)
	if target == m.screen && target != ScreenPartyDetails {
		return m, nil
	}

	m.screen = target
	switch target {
	case ScreenSplash:
		m.model = newSplashModel()
	case ScreenLogin:
		m.model = newLoginModel(m.deps)
	case ScreenRegister:
		m.model = newRegisterModel(m.deps)
	case ScreenDashboard:
		m.model = newDashboardModel(m.deps)
	case ScreenParties:
		m.model = newPartiesModel(m.deps)
	case ScreenPartyDetails:
		m.model = newPartyDetailsModel(m.deps, msg.partyID)
	case ScreenDocuments:
		m.model = newDocumentsModel(m.deps)
	case ScreenExpenses:
		m.model = newExpensesModel(m.deps)
	case ScreenLedgers:
		m.model = newLedgersModel(m.deps)
	case ScreenNotifications:
		m.model = newNotificationsModel(m.deps)
	case ScreenMasters:
		m.model = newMastersModel(m.deps)
	case ScreenProfile:
		m.model = newProfileModel(m.deps)
	}
	return m, m.model.Init()
}

func (m App) View() string {
	var b strings.Builder

	title := "rtoctl"
	if u := m.deps.session.User(); u != nil {
		title = fmt.Sprintf("rtoctl | %s", u.Name)
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	if toasts := renderToasts(m.deps.broker); toasts != "" {
		b.WriteString(toasts)
	}

	if a, ok := topConfirmation(m.deps.broker); ok {
		b.WriteString(renderConfirmation(a))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.model.View())
	return b.String()
}

// Screen returns the active screen; the guard's decisions surface here.
func (m App) Screen() Screen { return m.screen }

// splashModel shows while the stored session is being restored.
type splashModel struct{}

func newSplashModel() splashModel { return splashModel{} }

func (s splashModel) Init() tea.Cmd                           { return nil }
func (s splashModel) Update(tea.Msg) (tea.Model, tea.Cmd)     { return s, nil }
func (s splashModel) View() string                            { return detailTextStyle.Render("Restoring session...") + "\n" }
