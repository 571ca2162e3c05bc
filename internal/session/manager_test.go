package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtoctl/internal/api"
	"rtoctl/internal/db"
	apperrors "rtoctl/internal/errors"
)

func newTestManager(t *testing.T, handler http.Handler) (*Manager, *db.SQLiteStore) {
	t.Helper()
	store, err := db.NewSQLiteStore(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	baseURL := "http://127.0.0.1:1"
	if handler != nil {
		server := httptest.NewServer(handler)
		t.Cleanup(server.Close)
		baseURL = server.URL
	}

	return NewManager(store, api.NewClient(baseURL)), store
}

func authHandler(t *testing.T, token string, user map[string]any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"token": token, "user": user},
		})
	})
}

func TestManager_InitialState(t *testing.T) {
	m, _ := newTestManager(t, nil)
	assert.Equal(t, StateInitializing, m.CurrentState())
	assert.True(t, m.IsLoading())
	assert.False(t, m.IsAuthenticated())
}

func TestManager_RestoreEmptyStorage(t *testing.T) {
	m, _ := newTestManager(t, nil)

	m.Restore(context.Background())

	assert.False(t, m.IsLoading())
	assert.Equal(t, StateUnauthenticated, m.CurrentState())
	assert.Nil(t, m.User())
}

func TestManager_LoginPersistsThenRestores(t *testing.T) {
	handler := authHandler(t, "tok-1", map[string]any{"userId": 1, "userName": "Agent", "userEmail": "a@rto.in"})
	m, store := newTestManager(t, handler)
	m.Restore(context.Background())

	user, err := m.Login(context.Background(), "a@rto.in", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Agent", user.Name)
	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, "tok-1", m.Token())

	// round-trip: storage now reproduces the exact credentials
	token, ok, err := store.Get("token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-1", token)

	rawUser, ok, err := store.Get("user")
	require.NoError(t, err)
	assert.True(t, ok)
	var stored api.User
	require.NoError(t, json.Unmarshal([]byte(rawUser), &stored))
	assert.Equal(t, "a@rto.in", stored.Email)

	// a fresh manager over the same store recovers the session
	m2 := NewManager(store, api.NewClient("http://127.0.0.1:1"))
	m2.Restore(context.Background())
	assert.Equal(t, StateAuthenticated, m2.CurrentState())
	assert.Equal(t, "tok-1", m2.Token())
	require.NotNil(t, m2.User())
	assert.Equal(t, "Agent", m2.User().Name)
}

func TestManager_LoginRejection(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	})
	m, store := newTestManager(t, handler)
	m.Restore(context.Background())

	_, err := m.Login(context.Background(), "user@x.com", "wrongpass")
	require.Error(t, err)

	var authErr *apperrors.AuthenticationError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, "Invalid credentials", authErr.Message)

	// prior state untouched, nothing persisted
	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, m.User())
	_, ok, _ := store.Get("token")
	assert.False(t, ok)
}

func TestManager_Register(t *testing.T) {
	handler := authHandler(t, "reg-tok", map[string]any{"userId": 2, "userName": "Fresh"})
	m, _ := newTestManager(t, handler)
	m.Restore(context.Background())

	user, err := m.Register(context.Background(), api.RegisterRequest{
		Name: "Fresh", Email: "f@rto.in", Mobile: "9876543210", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Fresh", user.Name)
	assert.Equal(t, StateAuthenticated, m.CurrentState())
}

func TestManager_LogoutClearsBothKeys(t *testing.T) {
	handler := authHandler(t, "tok", map[string]any{"userId": 1})
	m, store := newTestManager(t, handler)
	m.Restore(context.Background())

	_, err := m.Login(context.Background(), "a@rto.in", "pw")
	require.NoError(t, err)

	m.Logout()

	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, m.User())
	_, ok, _ := store.Get("token")
	assert.False(t, ok)
	_, ok, _ = store.Get("user")
	assert.False(t, ok)

	// idempotent
	m.Logout()
	assert.Equal(t, StateUnauthenticated, m.CurrentState())
}

func TestManager_UpdateUser(t *testing.T) {
	handler := authHandler(t, "tok", map[string]any{"userId": 1, "userName": "Old"})
	m, store := newTestManager(t, handler)
	m.Restore(context.Background())
	_, err := m.Login(context.Background(), "a@rto.in", "pw")
	require.NoError(t, err)

	m.UpdateUser(api.User{ID: 1, Name: "New Name", Email: "a@rto.in"})

	assert.Equal(t, "New Name", m.User().Name)
	assert.Equal(t, "tok", m.Token(), "token must be untouched")

	rawUser, ok, err := store.Get("user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, rawUser, "New Name")
}

func TestManager_UnauthorizedResponseClearsSession(t *testing.T) {
	step := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		step++
		if step == 1 {
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{"token": "tok", "user": map[string]any{"userId": 1}},
			})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "token expired"})
	})

	store, err := db.NewSQLiteStore(filepath.Join(t.TempDir(), "s.db"))
	require.NoError(t, err)
	defer store.Close()
	server := httptest.NewServer(handler)
	defer server.Close()

	client := api.NewClient(server.URL)
	m := NewManager(store, client)
	m.Restore(context.Background())

	var states []State
	m.Subscribe(func(s State) { states = append(states, s) })

	_, err = m.Login(context.Background(), "a@rto.in", "pw")
	require.NoError(t, err)

	// any authenticated call that comes back 401 clears the session
	_, err = client.ListParties(context.Background(), api.ListParams{})
	require.Error(t, err)

	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, m.User())
	_, ok, _ := store.Get("token")
	assert.False(t, ok, "401 must clear stored credentials")

	require.NotEmpty(t, states)
	assert.Equal(t, StateAuthenticated, states[0])
	assert.Equal(t, StateUnauthenticated, states[len(states)-1])
}

func TestManager_RestoreCorruptUser(t *testing.T) {
	store, err := db.NewSQLiteStore(filepath.Join(t.TempDir(), "s.db"))
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Set("token", "tok"))
	require.NoError(t, store.Set("user", "{not json"))

	m := NewManager(store, api.NewClient("http://127.0.0.1:1"))
	m.Restore(context.Background())

	// degrades to unauthenticated instead of crashing
	assert.False(t, m.IsLoading())
	assert.Equal(t, StateUnauthenticated, m.CurrentState())
}
