package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	cases := []struct {
		name      string
		cfg       OpenRouterConfig
		wantErr   bool
		wantModel string
	}{
		{
			name:      "valid config",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.0-flash-exp"},
			wantModel: "google/gemini-2.0-flash-exp",
		},
		{
			name:    "empty API key",
			cfg:     OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
			wantErr: true,
		},
		{
			name:      "empty model falls back to default",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test"},
			wantModel: "google/gemini-2.0-flash-exp",
		},
		{
			// OpenRouter model IDs are vendor-prefixed and must not go
			// through the friendly-name maps.
			name:      "model passes through unmapped",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-3-haiku"},
			wantModel: "anthropic/claude-3-haiku",
		},
		{
			name:      "custom base URL",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "meta-llama/llama-3-8b", BaseURL: "https://proxy.example/v1"},
			wantModel: "meta-llama/llama-3-8b",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tc.cfg)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.ModelID() != tc.wantModel {
				t.Errorf("model = %q, want %q", p.ModelID(), tc.wantModel)
			}
		})
	}
}
