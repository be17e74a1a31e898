package gemini

import (
	"errors"
	"testing"

	"briefing_backend/internal/feature/briefing/domain"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("BRIEFING_SYSTEM_PROMPT", "env-prompt")
	t.Setenv("GEMINI_BASE_URL", "")

	cfg := LoadConfig()

	if cfg.APIKey != "env-key" {
		t.Errorf("expected API key %q, got %q", "env-key", cfg.APIKey)
	}
	if cfg.SystemPrompt != "env-prompt" {
		t.Errorf("expected system prompt %q, got %q", "env-prompt", cfg.SystemPrompt)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base URL %q, got %q", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("expected default model %q, got %q", DefaultModel, cfg.Model)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout %v, got %v", DefaultTimeout, cfg.Timeout)
	}
}

func TestLoadConfig_BaseURLOverride(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("BRIEFING_SYSTEM_PROMPT", "env-prompt")
	t.Setenv("GEMINI_BASE_URL", "http://localhost:9090")

	cfg := LoadConfig()

	if cfg.BaseURL != "http://localhost:9090" {
		t.Errorf("expected base URL override, got %q", cfg.BaseURL)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cfg         Config
		expectedErr error
	}{
		{
			name:        "ok: both secrets present",
			cfg:         Config{APIKey: "k", SystemPrompt: "p"},
			expectedErr: nil,
		},
		{
			name:        "error: missing API key",
			cfg:         Config{SystemPrompt: "p"},
			expectedErr: domain.ErrAPIKeyNotConfigured,
		},
		{
			name:        "error: missing system prompt",
			cfg:         Config{APIKey: "k"},
			expectedErr: domain.ErrSystemPromptNotConfigured,
		},
		{
			name:        "error: both missing reports API key first",
			cfg:         Config{},
			expectedErr: domain.ErrAPIKeyNotConfigured,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}
