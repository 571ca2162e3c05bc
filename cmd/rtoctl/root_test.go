package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtoctl/internal/alert"
	"rtoctl/internal/api"
	"rtoctl/internal/db"
	"rtoctl/internal/session"
)

// withTestServices points newServices at a temp store and test server
// for the duration of one test.
func withTestServices(t *testing.T, handler http.Handler) {
	t.Helper()
	baseURL := "http://127.0.0.1:1"
	if handler != nil {
		server := httptest.NewServer(handler)
		t.Cleanup(server.Close)
		baseURL = server.URL
	}
	dir := t.TempDir()

	orig := newServices
	newServices = func() (*services, error) {
		store, err := db.NewSQLiteStore(filepath.Join(dir, "cli.db"))
		if err != nil {
			return nil, err
		}
		client := api.NewClient(baseURL)
		return &services{
			store:   store,
			client:  client,
			session: session.NewManager(store, client),
			broker:  alert.NewBroker(),
		}, nil
	}
	t.Cleanup(func() { newServices = orig })
}

// captureExit swaps the process exit for a recorder.
func captureExit(t *testing.T) *int {
	t.Helper()
	code := -1
	orig := exit
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = orig })
	return &code
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	cmd.SetContext(context.Background())
	cmd.Run(cmd, args)
	return out.String(), errOut.String()
}

func seedSession(t *testing.T) {
	t.Helper()
	svc, err := newServices()
	require.NoError(t, err)
	defer svc.Close()
	require.NoError(t, svc.store.Set("token", "tok-1"))
	user, _ := json.Marshal(map[string]any{"userId": 1, "userName": "Agent", "userEmail": "a@rto.in", "userMobile": "9876543210"})
	require.NoError(t, svc.store.Set("user", string(user)))
}

func TestWhoami_NotSignedIn(t *testing.T) {
	withTestServices(t, nil)
	code := captureExit(t)

	_, errOut := runCommand(t, whoamiCmd)

	assert.Equal(t, 1, *code)
	assert.Contains(t, errOut, "not signed in")
}

func TestWhoami_SignedIn(t *testing.T) {
	withTestServices(t, nil)
	seedSession(t)
	code := captureExit(t)

	out, _ := runCommand(t, whoamiCmd)

	assert.Equal(t, -1, *code, "must not exit")
	assert.Contains(t, out, "Agent <a@rto.in>")
}

func TestParties_ListsRows(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/parties", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"items": []map[string]any{
					{"partyId": 1, "partyName": "Sharma Motors", "partyType": "Dealer", "partyContactNo": "9876543210", "partyCurrentBalance": 1500.5, "partyBalanceType": "credit", "partyNumberofvehicles": 3},
				},
				"pagination": map[string]any{"total": 1, "hasMore": false},
			},
		})
	})
	withTestServices(t, mux)
	seedSession(t)
	code := captureExit(t)

	out, _ := runCommand(t, partiesCmd)

	assert.Equal(t, -1, *code)
	assert.Contains(t, out, "Sharma Motors")
	assert.Contains(t, out, "1 total")
}

func TestDashboard_PrintsStats(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/dashboard/stats", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
			"totalParties": 12, "totalVehicles": 30, "totalDocuments": 44,
			"monthlyRevenue": 90000.0, "monthlyExpenses": 12000.0,
		}})
	})
	mux.HandleFunc("/dashboard/document-status", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
			"valid": 40, "expiring": 3, "expired": 1,
		}})
	})
	mux.HandleFunc("/dashboard/monthly-revenue", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{
			{"month": "2026-07", "revenue": 82000.0},
			{"month": "2026-08", "revenue": 90000.0},
		}})
	})
	mux.HandleFunc("/dashboard/expense-breakdown", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{
			{"category": "Office Rent", "amount": 8000.0},
		}})
	})
	withTestServices(t, mux)
	seedSession(t)
	code := captureExit(t)

	out, _ := runCommand(t, dashboardCmd)

	assert.Equal(t, -1, *code)
	assert.Contains(t, out, "Parties:    12")
	assert.Contains(t, out, "44 (40 valid, 3 expiring, 1 expired)")
	assert.Contains(t, out, "2026-08")
	assert.Contains(t, out, "Office Rent")
}

func TestVehicles_ListsRows(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/parties/7/vehicles", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"items": []map[string]any{
					{"vehId": 21, "vehNumber": "MH12AB1234", "partyId": 7},
				},
				"pagination": map[string]any{"total": 1, "hasMore": false},
			},
		})
	})
	withTestServices(t, mux)
	seedSession(t)
	code := captureExit(t)

	require.NoError(t, vehiclesCmd.Flags().Set("party", "7"))
	t.Cleanup(func() { vehiclesCmd.Flags().Set("party", "0") })
	out, _ := runCommand(t, vehiclesCmd)

	assert.Equal(t, -1, *code)
	assert.Contains(t, out, "MH12AB1234")
	assert.Contains(t, out, "1 total")
}

func TestVehiclesAdd_PostsVehicle(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/parties/vehicles", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "MH12AB1234", body["vehNumber"])
		assert.Equal(t, float64(7), body["partyId"])
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
			"vehId": 21, "vehNumber": "MH12AB1234", "partyId": 7,
		}})
	})
	withTestServices(t, mux)
	seedSession(t)
	code := captureExit(t)

	require.NoError(t, vehiclesAddCmd.Flags().Set("party", "7"))
	require.NoError(t, vehiclesAddCmd.Flags().Set("number", "MH12AB1234"))
	t.Cleanup(func() {
		vehiclesAddCmd.Flags().Set("party", "0")
		vehiclesAddCmd.Flags().Set("number", "")
	})
	out, _ := runCommand(t, vehiclesAddCmd)

	assert.Equal(t, -1, *code)
	assert.Contains(t, out, "registered with id 21")
}

func TestVehiclesUpdate_PutsVehicle(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/parties/vehicles/21", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
			"vehId": 21, "vehNumber": "MH14XY9999",
		}})
	})
	withTestServices(t, mux)
	seedSession(t)
	code := captureExit(t)

	require.NoError(t, vehiclesUpdateCmd.Flags().Set("number", "MH14XY9999"))
	t.Cleanup(func() { vehiclesUpdateCmd.Flags().Set("number", "") })
	out, _ := runCommand(t, vehiclesUpdateCmd, "21")

	assert.Equal(t, -1, *code)
	assert.Contains(t, out, "Vehicle 21 is now MH14XY9999")
}

func TestMasters_Describe(t *testing.T) {
	withTestServices(t, nil)
	code := captureExit(t)

	require.NoError(t, mastersCmd.Flags().Set("describe", "true"))
	t.Cleanup(func() { mastersCmd.Flags().Set("describe", "false") })

	out, _ := runCommand(t, mastersCmd)

	assert.Equal(t, -1, *code)
	assert.Contains(t, out, "Party Types")
	assert.Contains(t, out, "Notification Types")
}

func TestLogout_Idempotent(t *testing.T) {
	withTestServices(t, nil)
	code := captureExit(t)

	out, _ := runCommand(t, logoutCmd)

	assert.Equal(t, -1, *code)
	assert.Contains(t, out, "Signed out.")
}

func TestValidateConfigWiring(t *testing.T) {
	// Root init binds persistent flags into viper.
	require.NoError(t, rootCmd.PersistentFlags().Set("base-url", "https://flag.example/api"))
	t.Cleanup(func() { rootCmd.PersistentFlags().Set("base-url", "") })
	assert.Equal(t, "https://flag.example/api", viper.GetString("api.base_url"))
}
