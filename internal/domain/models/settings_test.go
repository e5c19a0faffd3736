package models

import "testing"

func TestValidHFAPIKey(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"hf_", false},
		{"hf_short", false},
		{"sk_1234567890", false},
		{"hf_12345678", true},
		{"hf_abcdefghijklmnop", true},
	}

	for _, tc := range cases {
		if got := ValidHFAPIKey(tc.key); got != tc.want {
			t.Errorf("ValidHFAPIKey(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestRemoteEnabled(t *testing.T) {
	cases := []struct {
		name     string
		settings Settings
		want     bool
	}{
		{name: "disabled", settings: Settings{EnableHF: false, HFAPIKey: "hf_valid_key_1"}, want: false},
		{name: "enabled with valid key", settings: Settings{EnableHF: true, HFAPIKey: "hf_valid_key_1"}, want: true},
		{name: "enabled with invalid key", settings: Settings{EnableHF: true, HFAPIKey: "bad"}, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.settings.RemoteEnabled(); got != tc.want {
				t.Errorf("RemoteEnabled() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if !s.EnableHighlighting || !s.AutoAnalyze || !s.SaveAnalytics {
		t.Errorf("defaults should enable highlighting, auto-analyze and analytics: %+v", s)
	}
	if s.SensitivityLevel != "medium" {
		t.Errorf("default sensitivity = %q, want medium", s.SensitivityLevel)
	}
	if s.EnableHF {
		t.Error("remote analysis should be off by default")
	}
}
