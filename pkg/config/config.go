// Package config provides configuration management for the bookkeeping
// tools. It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/joho/godotenv"
)

// Keychain entry used when TURSO_TOKEN is not set.
const (
	keychainService = "turso-bigmac-token"
	keychainAccount = "bigmac"
)

// Config represents the application configuration.
type Config struct {
	Turso    TursoConfig
	Journals JournalsConfig
	Debug    bool
}

// TursoConfig represents the remote database configuration.
type TursoConfig struct {
	URL     string
	Token   string
	DataDir string
}

// JournalsConfig represents journal-importer configuration.
type JournalsConfig struct {
	Dir           string
	ImportDir     string
	DownloadsDir  string
	HistoryDBPath string
	AccountsFile  string
}

// Load loads configuration from environment variables. It automatically
// loads a .env file from the current directory if available; a custom
// .env path can be given instead.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Best effort: a missing .env is fine.
		_ = godotenv.Load()
	}

	config := &Config{
		Turso: TursoConfig{
			URL:     os.Getenv("TURSO_URL"),
			Token:   os.Getenv("TURSO_TOKEN"),
			DataDir: getEnvOrDefault("DATA_DIR", "data"),
		},
		Journals: JournalsConfig{
			Dir:           getEnvOrDefault("JOURNALS_DIR", "journals"),
			ImportDir:     os.Getenv("IMPORT_DIR"),
			DownloadsDir:  os.Getenv("DOWNLOADS_DIR"),
			HistoryDBPath: os.Getenv("HISTORY_DB_PATH"),
			AccountsFile:  os.Getenv("ACCOUNTS_FILE"),
		},
		Debug: os.Getenv("DEBUG") == "true",
	}

	return config, nil
}

// HTTPURL returns the remote database URL with the libsql scheme
// rewritten to https.
func (t TursoConfig) HTTPURL() string {
	return strings.Replace(t.URL, "libsql://", "https://", 1)
}

// SecretLookup fetches a named secret from an OS secret store.
type SecretLookup func(service, account string) (string, error)

// KeychainLookup reads a generic password from the macOS keychain via the
// security tool.
func KeychainLookup(service, account string) (string, error) {
	out, err := exec.Command("security", "find-generic-password",
		"-s", service, "-a", account, "-w").Output()
	if err != nil {
		return "", fmt.Errorf("keychain lookup failed: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// ResolveToken returns the auth token, trying in order: the configured
// value (from TURSO_TOKEN or .env), then the OS secret store. It fails
// before any I/O happens when neither source yields a token.
func (t TursoConfig) ResolveToken(lookup SecretLookup) (string, error) {
	if t.Token != "" {
		return t.Token, nil
	}

	if lookup != nil {
		token, err := lookup(keychainService, keychainAccount)
		if err == nil && token != "" {
			return token, nil
		}
	}

	return "", fmt.Errorf("TURSO_TOKEN not set and keychain lookup failed")
}

// ValidateTurso checks the fields the sync tool requires.
func (c *Config) ValidateTurso() error {
	if c.Turso.URL == "" {
		return fmt.Errorf("missing required configuration: TURSO_URL\nPlease check your .env file or environment variables")
	}
	return nil
}

// getEnvOrDefault returns the value of the environment variable or a
// default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
