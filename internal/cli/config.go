package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Token     string
	TokenFile string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a config populated from environment variables
func DefaultConfig() *Config {
	cfg := &Config{
		ServerURL: "http://localhost:8080",
		Output:    "text",
	}

	if v := os.Getenv("CLOUDMINE_SERVER"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("CLOUDMINE_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("CLOUDMINE_TOKEN_FILE"); v != "" {
		cfg.TokenFile = v
	} else {
		cfg.TokenFile = defaultTokenFile()
	}

	return cfg
}

// LoadToken loads the session token from the token file if no token was
// provided via flag or environment.
func (c *Config) LoadToken() error {
	if c.Token != "" {
		return nil
	}
	if c.TokenFile == "" {
		return nil
	}

	data, err := os.ReadFile(c.TokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading token file: %w", err)
	}

	c.Token = strings.TrimSpace(string(data))
	return nil
}

// SaveToken writes the session token to the token file
func (c *Config) SaveToken(token string) error {
	if c.TokenFile == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(c.TokenFile), 0o700); err != nil {
		return fmt.Errorf("creating token directory: %w", err)
	}

	if err := os.WriteFile(c.TokenFile, []byte(token), 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}

	c.Token = token
	return nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cloudmine", "token")
}
