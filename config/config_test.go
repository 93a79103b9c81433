package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testClientConfig struct {
	ClientConfig `yaml:",inline" mapstructure:",squash"`

	Token string `yaml:"token" mapstructure:"token"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "ipinfo.yml", `
name: ipinfo
environment: production
token: tok-123
logging:
  level: warn
transport:
  base_url: https://ipinfo.io
  timeout: 5s
`)

	var cfg testClientConfig
	if err := Load("ipinfo", &cfg, WithConfigFile(file)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Name != "ipinfo" || cfg.Environment != "production" {
		t.Errorf("base fields = %q/%q", cfg.Name, cfg.Environment)
	}
	if cfg.Token != "tok-123" {
		t.Errorf("Token = %q", cfg.Token)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if cfg.Transport.BaseURL != "https://ipinfo.io" {
		t.Errorf("Transport.BaseURL = %q", cfg.Transport.BaseURL)
	}
	if cfg.Transport.Timeout != 5*time.Second {
		t.Errorf("Transport.Timeout = %v", cfg.Transport.Timeout)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "cfg.yml", `
transport:
  base_url: https://api.example.com
`)

	var cfg testClientConfig
	if err := Load("myclient", &cfg, WithConfigFile(file)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Name != "myclient" {
		t.Errorf("Name = %q, want client name fallback", cfg.Name)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q", cfg.Environment)
	}
	if !cfg.Debug {
		t.Error("Debug should default on in development")
	}
	if cfg.Transport.Timeout != 30*time.Second {
		t.Errorf("Transport.Timeout = %v, want 30s default", cfg.Transport.Timeout)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "cfg.yml", `
name: ipinfo
transport:
  base_url: https://file.example.com
`)

	t.Setenv("IPINFO_TRANSPORT_BASE_URL", "https://env.example.com")
	t.Setenv("IPINFO_TOKEN", "from-env")

	var cfg testClientConfig
	if err := Load("ipinfo", &cfg, WithConfigFile(file)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Transport.BaseURL != "https://env.example.com" {
		t.Errorf("Transport.BaseURL = %q, want env value", cfg.Transport.BaseURL)
	}
	if cfg.Token != "from-env" {
		t.Errorf("Token = %q, want env value", cfg.Token)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "cfg.yml", "name: dotenvclient\n")
	envFile := writeFile(t, dir, ".env", "DOTENVCLIENT_TOKEN=secret-from-dotenv\n")
	t.Cleanup(func() { _ = os.Unsetenv("DOTENVCLIENT_TOKEN") })

	var cfg testClientConfig
	if err := Load("dotenvclient", &cfg, WithConfigFile(cfgFile), WithEnvFile(envFile)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Token != "secret-from-dotenv" {
		t.Errorf("Token = %q", cfg.Token)
	}
}

func TestLoadRejectsInvalidEnvironment(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "cfg.yml", `
name: x
environment: outer-space
`)

	var cfg testClientConfig
	if err := Load("x", &cfg, WithConfigFile(file)); err == nil {
		t.Error("expected validation error for unknown environment")
	}
}

func TestLoadMissingFileIsFine(t *testing.T) {
	var cfg testClientConfig
	if err := Load("nosuchclient", &cfg); err != nil {
		t.Fatalf("Load without files: %v", err)
	}
	if cfg.Name != "nosuchclient" {
		t.Errorf("Name = %q", cfg.Name)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	got := envKeyVariants("transport_base_url")
	want := map[string]bool{
		"transport.base_url": false,
		"transport.base.url": false,
	}
	for _, v := range got {
		if _, ok := want[v]; ok {
			want[v] = true
		}
	}
	for k, covered := range want {
		if !covered {
			t.Errorf("variant %q missing from %v", k, got)
		}
	}
}
