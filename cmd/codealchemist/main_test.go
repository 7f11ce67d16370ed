package main

import "testing"

func TestNormalizeFlagName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"no_color", "no-color"},
		{"no-color", "no-color"},
		{"lang", "lang"},
	}
	for _, tt := range tests {
		if got := string(normalizeFlagName(nil, tt.name)); got != tt.want {
			t.Errorf("normalizeFlagName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}

	if rootCmd.PersistentFlags().Lookup("no_color") == nil {
		t.Error("--no_color does not resolve to --no-color")
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512B"},
		{2048, "2.0KB"},
		{3 << 20, "3.0MB"},
	}
	for _, tt := range tests {
		if got := formatSize(tt.in); got != tt.want {
			t.Errorf("formatSize(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
