package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"SERVER_ADDR", "DATA_SOURCE", "SYMBOL", "CSV_PATH", "YAHOO_BASE_URL", "CRON_REFRESH",
		"SQLITE_PATH", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "HTTPS_PROXY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.DataSource.Kind != SourceMock {
		t.Errorf("kind = %q, want mock", cfg.DataSource.Kind)
	}
	if cfg.Schedule.RefreshCron == "" || cfg.Database.SQLitePath == "" {
		t.Error("expected cron and sqlite defaults")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `server:
  addr: ":9000"
data_source:
  kind: CSV
  symbol: AAPL
  csv_path: data/aapl.csv
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SYMBOL", "MSFT")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.DataSource.Kind != SourceCSV {
		t.Errorf("kind = %q, want csv", cfg.DataSource.Kind)
	}
	if cfg.DataSource.Symbol != "MSFT" {
		t.Errorf("symbol = %q, env should win", cfg.DataSource.Symbol)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.DataSource.Kind = SourceCSV
	if err := cfg.Validate(); err == nil {
		t.Error("csv without path should fail")
	}

	cfg.DataSource.Kind = "bloomberg"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown kind should fail")
	}

	cfg.DataSource.Kind = SourceYahoo
	cfg.Telegram.BotToken = "token"
	if err := cfg.Validate(); err == nil {
		t.Error("token without chat id should fail")
	}
	cfg.Telegram.ChatID = "42"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
