package config

import (
	"fmt"
	"os"

	"github.com/badoux/checkmail"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Tickers struct {
		Override string `yaml:"override"` // comma/newline separated, wins over the file
		File     string `yaml:"file"`
	} `yaml:"tickers"`
	Portfolio struct {
		File string `yaml:"file"`
	} `yaml:"portfolio"`
	DataSource struct {
		BaseURL string `yaml:"base_url"` // empty means the public Yahoo source
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Quote struct {
		HistoryDays int `yaml:"history_days"`
		Parallelism int `yaml:"parallelism"`
	} `yaml:"quote"`
	Email struct {
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		SMTPHost string `yaml:"smtp_host"`
		SMTPPort int    `yaml:"smtp_port"`
	} `yaml:"email"`
	Push struct {
		Server    string `yaml:"server"`
		Topic     string `yaml:"topic"`
		PasteURL  string `yaml:"paste_url"`
		EmbedPage bool   `yaml:"embed_page"`
	} `yaml:"push"`
	Report struct {
		Style string `yaml:"style"` // "verbose" or "terse"
	} `yaml:"report"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"` // empty disables the run journal
	} `yaml:"database"`
	Viewer struct {
		Listen string `yaml:"listen"`
	} `yaml:"viewer"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides, then defaults. A missing file is fine: everything can come
// from the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TICKERS"); v != "" {
		cfg.Tickers.Override = v
	}
	if v := os.Getenv("TICKERS_FILE"); v != "" {
		cfg.Tickers.File = v
	}
	if v := os.Getenv("PORTFOLIO_FILE"); v != "" {
		cfg.Portfolio.File = v
	}
	if v := os.Getenv("QUOTE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("QUOTE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("EMAIL_USER"); v != "" {
		cfg.Email.User = v
	}
	if v := os.Getenv("EMAIL_PASSWORD"); v != "" {
		cfg.Email.Password = v
	}
	if v := os.Getenv("SMTP_SERVER"); v != "" {
		cfg.Email.SMTPHost = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil {
			cfg.Email.SMTPPort = port
		}
	}
	if v := os.Getenv("NTFY_SERVER"); v != "" {
		cfg.Push.Server = v
	}
	if v := os.Getenv("NTFY_TOPIC"); v != "" {
		cfg.Push.Topic = v
	}
	if v := os.Getenv("PASTE_URL"); v != "" {
		cfg.Push.PasteURL = v
	}
	if v := os.Getenv("REPORT_STYLE"); v != "" {
		cfg.Report.Style = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("VIEWER_ADDR"); v != "" {
		cfg.Viewer.Listen = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Tickers.File == "" {
		cfg.Tickers.File = "tickers.txt"
	}
	if cfg.Portfolio.File == "" {
		cfg.Portfolio.File = "portfolio.yaml"
	}
	if cfg.Quote.HistoryDays == 0 {
		cfg.Quote.HistoryDays = 5
	}
	if cfg.Quote.Parallelism == 0 {
		cfg.Quote.Parallelism = 1
	}
	if cfg.Email.SMTPHost == "" {
		cfg.Email.SMTPHost = "smtp.gmail.com"
	}
	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = 465
	}
	if cfg.Push.Server == "" {
		cfg.Push.Server = "https://ntfy.sh"
	}
	if cfg.Push.PasteURL == "" {
		cfg.Push.PasteURL = "https://dpaste.org/api/"
	}
	if cfg.Report.Style == "" {
		cfg.Report.Style = "verbose"
	}
	if cfg.Viewer.Listen == "" {
		cfg.Viewer.Listen = ":8787"
	}

	return cfg, nil
}

// ValidateEmail checks that the email channel has usable credentials.
// Called before any external call is attempted.
func (c *Config) ValidateEmail() error {
	if c.Email.User == "" || c.Email.Password == "" {
		return fmt.Errorf("email.user and email.password are required (EMAIL_USER / EMAIL_PASSWORD)")
	}
	if err := checkmail.ValidateFormat(c.Email.User); err != nil {
		return fmt.Errorf("email.user %q: %w", c.Email.User, err)
	}
	return nil
}

// ValidatePush checks that the push channel has a topic.
func (c *Config) ValidatePush() error {
	if c.Push.Topic == "" {
		return fmt.Errorf("push.topic is required (NTFY_TOPIC)")
	}
	return nil
}
