package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	Load("")

	if got := viper.GetString("api.base_url"); got != "http://localhost:5000/api" {
		t.Errorf("api.base_url default = %q", got)
	}
	if got := viper.GetInt("api.timeout"); got != 10 {
		t.Errorf("api.timeout default = %d", got)
	}
	if viper.GetBool("notifications.slack.enabled") {
		t.Error("slack should default to disabled without a token")
	}
	if viper.GetString("storage.path") == "" {
		t.Error("storage.path default must not be empty")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	content := "api:\n  base_url: https://rto.example/api\nverbose: true\n"
	if err := os.WriteFile(cfg, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	Load(cfg)

	if got := viper.GetString("api.base_url"); got != "https://rto.example/api" {
		t.Errorf("api.base_url = %q", got)
	}
	if !viper.GetBool("verbose") {
		t.Error("verbose should be true from file")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("RTOCTL_API_BASE_URL", "https://env.example/api")

	Load("")

	if got := viper.GetString("api.base_url"); got != "https://env.example/api" {
		t.Errorf("api.base_url = %q, want env override", got)
	}
}
