package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rtoctl/internal/alert"
	"rtoctl/internal/api"
	"rtoctl/internal/config"
	"rtoctl/internal/db"
	"rtoctl/internal/session"
	"rtoctl/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rtoctl",
	Short: "rtoctl: terminal client for the RTO agency back office",
	Long: `rtoctl is a terminal client for an RTO agency back office. It manages
parties, vehicles, documents, ledgers and expenses against the agency's
REST API, with a local session so you stay signed in between runs.`,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			fmt.Fprintf(os.Stderr, "Attempting graceful shutdown...\n")
			exit(1)
		}
	}()

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'rtoctl --help' for usage.")
		exit(1)
	}
}

func init() {
	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		// Default behavior: launch the TUI
		runApp(cmd)
	}
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("base-url", "", "API base URL (overrides config and RTOCTL_API_BASE_URL)")
	rootCmd.PersistentFlags().String("storage", "", "Path of the local session database")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("storage.path", rootCmd.PersistentFlags().Lookup("storage"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)

	// Validate configuration values
	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}

	telemetry.InitLogger(viper.GetBool("verbose"), "")

	if viper.GetBool("metrics_enabled") {
		go func() {
			port := viper.GetInt("metrics_port")
			if err := telemetry.StartMetricsServer(port); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to start metrics server: %v\n", err)
			}
		}()
	}
}

// services bundles everything a command needs to talk to the backend.
type services struct {
	store   *db.SQLiteStore
	client  *api.Client
	session *session.Manager
	broker  *alert.Broker
}

func (s *services) Close() {
	if s.store != nil {
		s.store.Close()
	}
}

// newServices opens the local store and wires the session manager onto
// the API client. Swapped out in tests.
var newServices = func() (*services, error) {
	store, err := db.NewSQLiteStore(viper.GetString("storage.path"))
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}
	client := api.NewClient(viper.GetString("api.base_url"))
	sess := session.NewManager(store, client)
	return &services{
		store:   store,
		client:  client,
		session: sess,
		broker:  alert.NewBroker(),
	}, nil
}

// requireSession restores the stored session and fails if nobody is
// signed in.
func requireSession(cmd *cobra.Command, svc *services) bool {
	svc.session.Restore(cmd.Context())
	if !svc.session.IsAuthenticated() {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error: not signed in. Run 'rtoctl login' first.")
		return false
	}
	return true
}
