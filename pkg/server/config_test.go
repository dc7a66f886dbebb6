package server

import (
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/NSteinhoff/meal-planner/pkg/defaults"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg := parseConfig()

	if cfg.Name != "server" {
		t.Errorf("Name = %q, want server", cfg.Name)
	}
	if cfg.Address != "" {
		t.Errorf("Address = %q, want empty", cfg.Address)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.RateLimit != 100 || cfg.RateLimitBurst != 200 {
		t.Errorf("rate limit = %v/%d, want 100/200", cfg.RateLimit, cfg.RateLimitBurst)
	}
	if cfg.MaxResultsLimit != 100 {
		t.Errorf("MaxResultsLimit = %d, want 100", cfg.MaxResultsLimit)
	}

	timeouts := []struct {
		name string
		got  time.Duration
		want time.Duration
	}{
		{"ReadTimeout", cfg.ReadTimeout, defaults.ServerReadTimeout},
		{"ReadHeaderTimeout", cfg.ReadHeaderTimeout, defaults.ServerReadHeaderTimeout},
		{"WriteTimeout", cfg.WriteTimeout, defaults.ServerWriteTimeout},
		{"IdleTimeout", cfg.IdleTimeout, defaults.ServerIdleTimeout},
		{"ShutdownTimeout", cfg.ShutdownTimeout, defaults.ServerShutdownTimeout},
	}
	for _, tt := range timeouts {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestParseConfigEnvOverrides(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "port", key: "PORT", value: "9090",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Port != 9090 {
					t.Errorf("Port = %d, want 9090", cfg.Port)
				}
			},
		},
		{
			name: "invalid port keeps default", key: "PORT", value: "not-a-port",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Port != 8080 {
					t.Errorf("Port = %d, want 8080", cfg.Port)
				}
			},
		},
		{
			name: "rate limit", key: "RATE_LIMIT", value: "25",
			check: func(t *testing.T, cfg *Config) {
				if cfg.RateLimit != rate.Limit(25) {
					t.Errorf("RateLimit = %v, want 25", cfg.RateLimit)
				}
			},
		},
		{
			name: "negative rate limit keeps default", key: "RATE_LIMIT", value: "-5",
			check: func(t *testing.T, cfg *Config) {
				if cfg.RateLimit != 100 {
					t.Errorf("RateLimit = %v, want 100", cfg.RateLimit)
				}
			},
		},
		{
			name: "rate limit burst", key: "RATE_LIMIT_BURST", value: "50",
			check: func(t *testing.T, cfg *Config) {
				if cfg.RateLimitBurst != 50 {
					t.Errorf("RateLimitBurst = %d, want 50", cfg.RateLimitBurst)
				}
			},
		},
		{
			name: "shutdown timeout", key: "SHUTDOWN_TIMEOUT_SECONDS", value: "45",
			check: func(t *testing.T, cfg *Config) {
				if cfg.ShutdownTimeout != 45*time.Second {
					t.Errorf("ShutdownTimeout = %v, want 45s", cfg.ShutdownTimeout)
				}
			},
		},
		{
			name: "zero shutdown timeout keeps default", key: "SHUTDOWN_TIMEOUT_SECONDS", value: "0",
			check: func(t *testing.T, cfg *Config) {
				if cfg.ShutdownTimeout != defaults.ServerShutdownTimeout {
					t.Errorf("ShutdownTimeout = %v, want %v", cfg.ShutdownTimeout, defaults.ServerShutdownTimeout)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			tt.check(t, parseConfig())
		})
	}
}

func TestNewConfigIsIndependent(t *testing.T) {
	a := NewConfig()
	b := NewConfig()

	a.Port = 1234
	if b.Port == 1234 {
		t.Error("expected NewConfig to return independent instances")
	}
}
