package config

import (
	"testing"
)

var configEnvVars = []string{
	"ENVIRONMENT",
	"PORT",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"RATE_LIMIT_RPS",
	"RATE_LIMIT_BURST",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "default configuration",
			envVars: map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Environment != "production" {
					t.Errorf("Expected default environment production, got %s", cfg.Environment)
				}
				if cfg.Port != "8081" {
					t.Errorf("Expected default port 8081, got %s", cfg.Port)
				}
				if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
					t.Errorf("Unexpected log defaults: %+v", cfg.Log)
				}
				if cfg.RateLimit.RequestsPerSecond != 50 || cfg.RateLimit.Burst != 100 {
					t.Errorf("Unexpected rate limit defaults: %+v", cfg.RateLimit)
				}
				if !cfg.IsProduction() {
					t.Error("Expected IsProduction to be true")
				}
			},
		},
		{
			name: "custom configuration",
			envVars: map[string]string{
				"ENVIRONMENT":      "staging",
				"PORT":             "9000",
				"LOG_LEVEL":        "debug",
				"LOG_FORMAT":       "text",
				"RATE_LIMIT_RPS":   "2.5",
				"RATE_LIMIT_BURST": "5",
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Environment != "staging" || cfg.IsProduction() {
					t.Errorf("Expected staging environment, got %s", cfg.Environment)
				}
				if cfg.Port != "9000" {
					t.Errorf("Expected port 9000, got %s", cfg.Port)
				}
				if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
					t.Errorf("Unexpected log config: %+v", cfg.Log)
				}
				if cfg.RateLimit.RequestsPerSecond != 2.5 || cfg.RateLimit.Burst != 5 {
					t.Errorf("Unexpected rate limit config: %+v", cfg.RateLimit)
				}
			},
		},
		{
			name:    "invalid log level",
			envVars: map[string]string{"LOG_LEVEL": "loud"},
			wantErr: true,
		},
		{
			name:    "invalid log format",
			envVars: map[string]string{"LOG_FORMAT": "xml"},
			wantErr: true,
		},
		{
			name:    "non-numeric port",
			envVars: map[string]string{"PORT": "http"},
			wantErr: true,
		},
		{
			name:    "zero burst",
			envVars: map[string]string{"RATE_LIMIT_BURST": "0"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && cfg != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestServerlessConfig(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "terraform-day4-hello")
	t.Setenv("AWS_LAMBDA_FUNCTION_VERSION", "$LATEST")
	t.Setenv("AWS_LAMBDA_FUNCTION_MEMORY_SIZE", "128")
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("STAGE", "")

	sc := loadServerlessConfig()
	if !sc.IsLambda {
		t.Error("Expected IsLambda to be true")
	}
	if sc.FunctionName != "terraform-day4-hello" || sc.FunctionVersion != "$LATEST" {
		t.Errorf("Unexpected function identity: %+v", sc)
	}
	if sc.MemoryLimitMB != 128 {
		t.Errorf("Expected memory 128, got %d", sc.MemoryLimitMB)
	}
	if sc.Region != "us-east-1" {
		t.Errorf("Expected region us-east-1, got %s", sc.Region)
	}
	if sc.Stage != "dev" {
		t.Errorf("Expected default stage dev, got %s", sc.Stage)
	}

	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")
	if loadServerlessConfig().IsLambda {
		t.Error("Expected IsLambda to be false without function name")
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("CONFIG_TEST_STRING", "value")
	t.Setenv("CONFIG_TEST_INT", "42")
	t.Setenv("CONFIG_TEST_BAD_INT", "forty-two")

	if got := GetEnv("CONFIG_TEST_STRING", "fallback"); got != "value" {
		t.Errorf("Expected value, got %s", got)
	}
	if got := GetEnv("CONFIG_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback, got %s", got)
	}
	if got := GetEnvAsInt("CONFIG_TEST_INT", 1); got != 42 {
		t.Errorf("Expected 42, got %d", got)
	}
	if got := GetEnvAsInt("CONFIG_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("Expected fallback 7, got %d", got)
	}
}
