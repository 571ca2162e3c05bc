package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) {
	// explicit .env loading; missing file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("RTOCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// Set defaults
	viper.SetDefault("api.base_url", "http://localhost:5000/api")
	viper.SetDefault("api.timeout", 10)
	viper.SetDefault("storage.path", defaultStoragePath())
	viper.SetDefault("metrics_port", 2112)
	viper.SetDefault("metrics_enabled", false)
	viper.SetDefault("verbose", false)

	// Notification Defaults
	slackEnabled := false
	if os.Getenv("SLACK_BOT_USER_TOKEN") != "" {
		slackEnabled = true
	}
	viper.SetDefault("notifications.slack.enabled", slackEnabled)
	viper.SetDefault("notifications.slack.channel", "#general")
	viper.SetDefault("notifications.slack.events.on_expiry", true)
	viper.SetDefault("notifications.slack.events.on_expired", true)

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func defaultStoragePath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "rtoctl.db"
	}
	return dir + string(os.PathSeparator) + ".rtoctl.db"
}
