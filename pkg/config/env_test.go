package config

import (
	"testing"
	"time"
)

func TestGetEnvString(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue string
		want         string
	}{
		{"set value", "openai", "claude", "openai"},
		{"unset returns default", "", "claude", "claude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("TEST_STRING", tt.value)
			}
			got := GetEnvString("TEST_STRING", tt.defaultValue)
			if got != tt.want {
				t.Errorf("GetEnvString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue int
		want         int
	}{
		{"valid value", "1200", 800, 1200},
		{"invalid value falls back", "abc", 800, 800},
		{"unset returns default", "", 800, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("TEST_INT", tt.value)
			}
			got := GetEnvInt("TEST_INT", tt.defaultValue)
			if got != tt.want {
				t.Errorf("GetEnvInt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv("TEST_INT64", "104857600")
	if got := GetEnvInt64("TEST_INT64", 0); got != 104857600 {
		t.Errorf("GetEnvInt64() = %d, want 104857600", got)
	}
	if got := GetEnvInt64("TEST_INT64_UNSET", 42); got != 42 {
		t.Errorf("GetEnvInt64() = %d, want default 42", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue bool
		want         bool
	}{
		{"true value", "true", false, true},
		{"numeric true", "1", false, true},
		{"false value", "false", true, false},
		{"invalid falls back", "yes", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			got := GetEnvBool("TEST_BOOL", tt.defaultValue)
			if got != tt.want {
				t.Errorf("GetEnvBool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	if got := GetEnvDuration("TEST_DURATION", time.Minute); got != 90*time.Second {
		t.Errorf("GetEnvDuration() = %v, want 90s", got)
	}

	t.Setenv("TEST_DURATION", "not-a-duration")
	if got := GetEnvDuration("TEST_DURATION", time.Minute); got != time.Minute {
		t.Errorf("GetEnvDuration() = %v, want fallback 1m", got)
	}
}

func TestGetEnvStringList(t *testing.T) {
	t.Setenv("TEST_LIST", "http://localhost:3000, https://example.com ,")
	got := GetEnvStringList("TEST_LIST", nil)
	want := []string{"http://localhost:3000", "https://example.com"}
	if len(got) != len(want) {
		t.Fatalf("GetEnvStringList() returned %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetEnvStringList()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
