package main

import (
	"fmt"
	"os"
	"time"
)

const defaultAPIURL = "http://localhost:8080"

// cliConfig holds the settings of the remote commands.
type cliConfig struct {
	APIURL         string
	RequestTimeout time.Duration
}

// loadConfig reads BONDCTL_API_URL and REQUEST_TIMEOUT.
func loadConfig() (*cliConfig, error) {
	cfg := &cliConfig{APIURL: os.Getenv("BONDCTL_API_URL")}
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}

	timeout, err := parseTimeout(os.Getenv("REQUEST_TIMEOUT"))
	if err != nil {
		return nil, err
	}
	cfg.RequestTimeout = timeout
	return cfg, nil
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 30 * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %v", d)
	}
	return d, nil
}
