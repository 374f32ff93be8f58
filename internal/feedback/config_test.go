package feedback

import (
	"testing"
	"time"
)

func TestDiscoverConfig_NoKeys(t *testing.T) {
	t.Setenv("REHEARSE_FEEDBACK_PROVIDER", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no capability without credentials")
	}
}

func TestDiscoverConfig_AnthropicWins(t *testing.T) {
	t.Setenv("REHEARSE_FEEDBACK_PROVIDER", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected capability")
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q, want anthropic", cfg.Provider)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestDiscoverConfig_ExplicitProviderOverrides(t *testing.T) {
	t.Setenv("REHEARSE_FEEDBACK_PROVIDER", "openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected capability")
	}
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
}

func TestConfigFromEnv_Timeout(t *testing.T) {
	t.Setenv("REHEARSE_FEEDBACK_TIMEOUT", "45s")
	cfg := ConfigFromEnv()
	if cfg.Timeout != 45*time.Second {
		t.Errorf("Timeout = %s", cfg.Timeout)
	}

	t.Setenv("REHEARSE_FEEDBACK_TIMEOUT", "not-a-duration")
	cfg = ConfigFromEnv()
	if cfg.Timeout != DefaultConfig().Timeout {
		t.Errorf("bad duration must fall back to default, got %s", cfg.Timeout)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing anthropic key")
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock must not need a key: %v", err)
	}

	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}
