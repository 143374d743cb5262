package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks every override the loader reads so ambient shell state
// cannot leak into assertions.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TICKERS", "TICKERS_FILE", "PORTFOLIO_FILE",
		"QUOTE_BASE_URL", "QUOTE_API_KEY",
		"EMAIL_USER", "EMAIL_PASSWORD", "SMTP_SERVER", "SMTP_PORT",
		"NTFY_SERVER", "NTFY_TOPIC", "PASTE_URL",
		"REPORT_STYLE", "SQLITE_PATH", "VIEWER_ADDR", "HTTPS_PROXY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tickers.File != "tickers.txt" {
		t.Errorf("Tickers.File = %q", cfg.Tickers.File)
	}
	if cfg.Email.SMTPHost != "smtp.gmail.com" || cfg.Email.SMTPPort != 465 {
		t.Errorf("SMTP defaults = %s:%d", cfg.Email.SMTPHost, cfg.Email.SMTPPort)
	}
	if cfg.Push.Server != "https://ntfy.sh" {
		t.Errorf("Push.Server = %q", cfg.Push.Server)
	}
	if cfg.Quote.HistoryDays != 5 || cfg.Quote.Parallelism != 1 {
		t.Errorf("Quote defaults = %+v", cfg.Quote)
	}
	if cfg.Report.Style != "verbose" {
		t.Errorf("Report.Style = %q", cfg.Report.Style)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `tickers:
  override: "vrt, fn"
email:
  user: me@example.com
  smtp_port: 587
push:
  topic: my-stocks
report:
  style: terse
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tickers.Override != "vrt, fn" {
		t.Errorf("Tickers.Override = %q", cfg.Tickers.Override)
	}
	if cfg.Email.SMTPPort != 587 {
		t.Errorf("SMTPPort = %d, want 587", cfg.Email.SMTPPort)
	}
	if cfg.Push.Topic != "my-stocks" {
		t.Errorf("Push.Topic = %q", cfg.Push.Topic)
	}
	if cfg.Report.Style != "terse" {
		t.Errorf("Report.Style = %q", cfg.Report.Style)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TICKERS", "AAPL")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("NTFY_TOPIC", "env-topic")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tickers.Override != "AAPL" {
		t.Errorf("Tickers.Override = %q", cfg.Tickers.Override)
	}
	if cfg.Email.SMTPPort != 2525 {
		t.Errorf("SMTPPort = %d, want 2525", cfg.Email.SMTPPort)
	}
	if cfg.Push.Topic != "env-topic" {
		t.Errorf("Push.Topic = %q", cfg.Push.Topic)
	}
}

func TestValidateEmail(t *testing.T) {
	cfg := &Config{}
	if err := cfg.ValidateEmail(); err == nil {
		t.Error("expected error for missing credentials")
	}
	cfg.Email.User = "not-an-address"
	cfg.Email.Password = "secret"
	if err := cfg.ValidateEmail(); err == nil {
		t.Error("expected error for malformed address")
	}
	cfg.Email.User = "me@example.com"
	if err := cfg.ValidateEmail(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidatePush(t *testing.T) {
	cfg := &Config{}
	if err := cfg.ValidatePush(); err == nil {
		t.Error("expected error for missing topic")
	}
	cfg.Push.Topic = "stocks"
	if err := cfg.ValidatePush(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
