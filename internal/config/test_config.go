package config

import "time"

// TestConfig returns a config suitable for testing: short timeouts,
// effectively unlimited rate, near-immediate debounce.
func TestConfig() *Config {
	cfg := defaultConfig()
	cfg.API.BaseURL = "http://127.0.0.1:0"
	cfg.API.Timeout = 2 * time.Second
	cfg.API.UserAgent = "researchrepo-test/1.0"
	cfg.API.RequestsPerSecond = 1000
	cfg.API.Burst = 1000
	cfg.API.MaxRetries = 0
	cfg.Search.DebounceMillis = 1
	return cfg
}
