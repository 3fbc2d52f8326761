package config

import (
	"strings"
	"testing"
)

func TestValidateDefaultsPass(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := Validate(cfg); err != nil {
		t.Errorf("default configuration should validate: %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Server.ListenAddress = ""
	cfg.Audit.Backend = "postgres"
	cfg.Telemetry.Logging.Level = "loud"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	verr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(verr.Errors) != 3 {
		t.Errorf("got %d errors, want 3: %v", len(verr.Errors), verr)
	}
	if !strings.Contains(verr.Error(), "3 errors") {
		t.Errorf("multi-error message should count errors: %q", verr.Error())
	}
}

func TestValidateFieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{
			"negative read timeout",
			func(c *Config) { c.Server.ReadTimeout = -1 },
			"server.read_timeout",
		},
		{
			"watch without path",
			func(c *Config) { c.Registry.Watch = true },
			"registry.watch",
		},
		{
			"sqlite without path",
			func(c *Config) {
				c.Audit.Backend = "sqlite"
				c.Audit.SQLite.Path = ""
			},
			"audit.sqlite.path",
		},
		{
			"bad cron schedule",
			func(c *Config) { c.Audit.Retention.Schedule = "every day at lunch" },
			"audit.retention.schedule",
		},
		{
			"negative retention days",
			func(c *Config) { c.Audit.Retention.Days = -7 },
			"audit.retention.days",
		},
		{
			"bad logging format",
			func(c *Config) { c.Telemetry.Logging.Format = "xml" },
			"telemetry.logging.format",
		},
		{
			"metrics path without slash",
			func(c *Config) { c.Telemetry.Metrics.Path = "metrics" },
			"telemetry.metrics.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q should mention field %q", err.Error(), tt.field)
			}
		})
	}
}

func TestValidateAcceptsStandardSchedules(t *testing.T) {
	for _, schedule := range []string{"0 3 * * *", "@daily", "*/15 * * * *"} {
		cfg := NewDefaultConfig()
		cfg.Audit.Retention.Schedule = schedule
		if err := Validate(cfg); err != nil {
			t.Errorf("schedule %q should validate: %v", schedule, err)
		}
	}
}
