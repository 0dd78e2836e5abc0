package config

import (
	"os"
	"testing"
)

func unsetMindmateEnv() {
	_ = os.Unsetenv("MINDMATE_DB_DRIVER")
	_ = os.Unsetenv("MINDMATE_POSTGRES_DSN")
	_ = os.Unsetenv("MINDMATE_HTTP_PORT")
	_ = os.Unsetenv("MINDMATE_GENAI_MODEL")
}

func TestConfigLoad_Defaults(t *testing.T) {
	unsetMindmateEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DBDriver != "memory" || cfg.HTTPPort != 5001 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.GenAIModel != "gemini-2.5-flash" {
		t.Fatalf("unexpected default model: %s", cfg.GenAIModel)
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	unsetMindmateEnv()
	_ = os.Setenv("MINDMATE_GENAI_MODEL", "test-model")
	defer unsetMindmateEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.GenAIModel != "test-model" {
		t.Fatalf("model env override failed, got %s", cfg.GenAIModel)
	}
}

func TestResolveDefaults_RejectsUnknownDriver(t *testing.T) {
	unsetMindmateEnv()
	_ = os.Setenv("MINDMATE_DB_DRIVER", "mongodb")
	defer unsetMindmateEnv()

	if _, err := New(); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestResolveDefaults_PostgresRequiresDSN(t *testing.T) {
	unsetMindmateEnv()
	_ = os.Setenv("MINDMATE_DB_DRIVER", "postgres")
	defer unsetMindmateEnv()

	if _, err := New(); err == nil {
		t.Fatalf("expected error when POSTGRES_DSN is missing")
	}
}

func TestResolveDefaults_PostgresWithDSN(t *testing.T) {
	unsetMindmateEnv()
	_ = os.Setenv("MINDMATE_DB_DRIVER", "postgres")
	_ = os.Setenv("MINDMATE_POSTGRES_DSN", "postgres://localhost:5432/mindmate")
	defer unsetMindmateEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DBDriver != "postgres" {
		t.Fatalf("driver override failed, got %s", cfg.DBDriver)
	}
}
