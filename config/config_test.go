package config

import (
	"testing"
	"time"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"DATA_DIR", "JWT_SECRET", "JWT_EXPIRES_IN", "PORT", "APP_ENV",
		"LOG_LEVEL", "LOG_FILE", "BACKUP_CRON", "SWEEP_CRON",
		"ENABLE_BACKUPS", "USE_REDIS_ACTIVITY_LOG",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)
	LoadConfig()

	if AppConfig.DataDir != "data" {
		t.Fatalf("expected default data dir, got %q", AppConfig.DataDir)
	}
	if AppConfig.JWTExpiresIn != 24*time.Hour {
		t.Fatalf("expected 24h token lifetime, got %v", AppConfig.JWTExpiresIn)
	}
	if AppConfig.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", AppConfig.LogLevel)
	}
	if AppConfig.LogFile != "logs/app.log" {
		t.Fatalf("expected default log file, got %q", AppConfig.LogFile)
	}
	if AppConfig.AppEnv != "development" {
		t.Fatalf("expected development default, got %q", AppConfig.AppEnv)
	}
}

func TestLoadConfigJWTShorthand(t *testing.T) {
	tests := []struct {
		in  string
		exp time.Duration
	}{
		{"12h", 12 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"2w", 14 * 24 * time.Hour},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv("JWT_EXPIRES_IN", tc.in)
			LoadConfig()
			if AppConfig.JWTExpiresIn != tc.exp {
				t.Fatalf("expected %v, got %v", tc.exp, AppConfig.JWTExpiresIn)
			}
		})
	}
}

func TestLoadConfigLoggingOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "logs/hostel.log")
	LoadConfig()

	if AppConfig.LogLevel != "debug" {
		t.Fatalf("expected debug, got %q", AppConfig.LogLevel)
	}
	if AppConfig.LogFile != "logs/hostel.log" {
		t.Fatalf("expected overridden log file, got %q", AppConfig.LogFile)
	}
}
