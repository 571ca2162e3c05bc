package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error if any are invalid.
// This function should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	// Validate the API base URL shape
	if raw := viper.GetString("api.base_url"); raw != "" {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, fmt.Sprintf("api.base_url must be an absolute URL, got: %q", raw))
		}
	} else {
		errors = append(errors, "api.base_url must not be empty")
	}

	// Validate API timeout (seconds, must be positive)
	if viper.IsSet("api.timeout") {
		if t := viper.GetInt("api.timeout"); t <= 0 {
			errors = append(errors, fmt.Sprintf("api.timeout must be positive, got: %d", t))
		}
	}

	// Validate storage path
	if viper.GetString("storage.path") == "" {
		errors = append(errors, "storage.path must not be empty")
	}

	// Validate metrics_port (if set, must be in valid range 1-65535)
	if viper.IsSet("metrics_port") {
		port := viper.GetInt("metrics_port")
		if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("metrics_port must be between 1 and 65535, got: %d", port))
		}
	}

	// Slack forwarding needs a channel when enabled
	if viper.GetBool("notifications.slack.enabled") {
		if viper.GetString("notifications.slack.channel") == "" {
			errors = append(errors, "notifications.slack.channel must be set when slack notifications are enabled")
		}
	}

	// If there are any errors, return them
	if len(errors) > 0 {
		errorMsg := errors[0]
		for i := 1; i < len(errors); i++ {
			errorMsg += "\n  " + errors[i]
		}
		return fmt.Errorf("configuration validation failed:\n  %s", errorMsg)
	}

	return nil
}

// ValidateAndExit validates the configuration and exits with a non-zero code if validation fails.
// This is a convenience function that prints errors to stderr and exits.
func ValidateAndExit() {
	if err := ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
