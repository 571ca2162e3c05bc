// Package session owns the authentication state of the running client:
// the current user, the bearer token, and their persistence to durable
// local storage. Exactly one Manager exists per process; the application
// wires it at startup and passes the reference down.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"rtoctl/internal/api"
	"rtoctl/internal/db"
	apperrors "rtoctl/internal/errors"
	"rtoctl/internal/telemetry"
)

// Storage keys. Only this package reads or writes them.
const (
	keyToken = "token"
	keyUser  = "user"
)

// State is the session lifecycle position the route guard reacts to.
type State int

const (
	StateInitializing State = iota
	StateUnauthenticated
	StateAuthenticated
)

// Manager is the single source of truth for "who is logged in".
type Manager struct {
	mu    sync.RWMutex
	store db.Store
	api   *api.Client

	user    *api.User
	token   string
	loading bool

	listeners []func(State)
}

// NewManager wires a manager over its store and API client. The client's
// token source and 401 hook are installed here so every request carries
// the current credential and any authentication-rejected response clears
// it, independent of which operation was in flight.
func NewManager(store db.Store, client *api.Client) *Manager {
	m := &Manager{
		store:   store,
		api:     client,
		loading: true,
	}
	client.SetTokenSource(m.Token)
	client.OnUnauthorized(m.invalidate)
	return m
}

// Restore loads persisted credentials. It runs once at startup; storage
// errors are logged and swallowed, leaving the session unauthenticated.
// It always terminates the loading window, success or not.
func (m *Manager) Restore(ctx context.Context) {
	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
		m.notify()
	}()

	token, tokenOK, err := m.store.Get(keyToken)
	if err != nil {
		telemetry.LogError("Failed to restore session", &apperrors.StorageError{Op: "read token", Err: err})
		return
	}
	rawUser, userOK, err := m.store.Get(keyUser)
	if err != nil {
		telemetry.LogError("Failed to restore session", &apperrors.StorageError{Op: "read user", Err: err})
		return
	}
	if !tokenOK || !userOK {
		return
	}

	var user api.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		telemetry.LogError("Stored user record is corrupt", err)
		return
	}

	m.mu.Lock()
	m.token = token
	m.user = &user
	m.mu.Unlock()
	telemetry.SessionState.Set(1)
	telemetry.LogInfo("Session restored", "user", user.Email)
}

// Login authenticates against the backend. On success the credentials are
// persisted first, then memory is updated, then the user is returned. On
// failure nothing changes and the typed error propagates to the caller.
func (m *Manager) Login(ctx context.Context, email, password string) (*api.User, error) {
	result, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	m.adopt(result)
	telemetry.LogInfo("Logged in", "user", result.User.Email)
	return &result.User, nil
}

// Register creates an account; the contract mirrors Login.
func (m *Manager) Register(ctx context.Context, req api.RegisterRequest) (*api.User, error) {
	result, err := m.api.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	m.adopt(result)
	telemetry.LogInfo("Registered", "user", result.User.Email)
	return &result.User, nil
}

// Logout clears storage first, then memory. Calling it while already
// logged out is a no-op.
func (m *Manager) Logout() {
	m.clear()
	telemetry.LogInfo("Logged out")
}

// UpdateUser replaces the in-memory profile and re-persists it. The token
// is untouched and no API call happens here; the caller owns the network
// round trip.
func (m *Manager) UpdateUser(user api.User) {
	if raw, err := json.Marshal(user); err == nil {
		if err := m.store.Set(keyUser, string(raw)); err != nil {
			telemetry.LogError("Failed to persist profile", &apperrors.StorageError{Op: "write user", Err: err})
		}
	}
	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()
	m.notify()
}

// Token returns the current bearer credential, empty when logged out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// User returns the current profile, nil when logged out.
func (m *Manager) User() *api.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// IsAuthenticated reports whether a token is held.
func (m *Manager) IsAuthenticated() bool {
	return m.Token() != ""
}

// IsLoading reports whether the initial restore is still running. The
// route guard makes no decision while this is true.
func (m *Manager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// CurrentState folds loading and authentication into the guard's input.
func (m *Manager) CurrentState() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	switch {
	case m.loading:
		return StateInitializing
	case m.token != "":
		return StateAuthenticated
	default:
		return StateUnauthenticated
	}
}

// Subscribe registers a listener invoked after every state transition.
func (m *Manager) Subscribe(fn func(State)) {
	m.mu.Lock()
	m.listeners = append(m.listeners, fn)
	m.mu.Unlock()
}

// adopt persists a fresh auth result and then updates memory.
func (m *Manager) adopt(result *api.AuthResult) {
	if err := m.store.Set(keyToken, result.Token); err != nil {
		telemetry.LogError("Failed to persist token", &apperrors.StorageError{Op: "write token", Err: err})
	}
	if raw, err := json.Marshal(result.User); err == nil {
		if err := m.store.Set(keyUser, string(raw)); err != nil {
			telemetry.LogError("Failed to persist user", &apperrors.StorageError{Op: "write user", Err: err})
		}
	}

	m.mu.Lock()
	m.token = result.Token
	user := result.User
	m.user = &user
	m.mu.Unlock()

	telemetry.SessionState.Set(1)
	m.notify()
}

// invalidate reacts to a 401 from any API call: storage and memory are
// cleared together so they never diverge, and listeners hear about it so
// the route guard can redirect immediately.
func (m *Manager) invalidate() {
	telemetry.LogInfo("Credentials rejected by server, clearing session")
	m.clear()
}

func (m *Manager) clear() {
	if err := m.store.Delete(keyToken); err != nil {
		telemetry.LogError("Failed to clear token", &apperrors.StorageError{Op: "delete token", Err: err})
	}
	if err := m.store.Delete(keyUser); err != nil {
		telemetry.LogError("Failed to clear user", &apperrors.StorageError{Op: "delete user", Err: err})
	}

	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()

	telemetry.SessionState.Set(0)
	m.notify()
}

func (m *Manager) notify() {
	state := m.CurrentState()
	m.mu.RLock()
	listeners := make([]func(State), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.RUnlock()
	for _, fn := range listeners {
		fn(state)
	}
}
