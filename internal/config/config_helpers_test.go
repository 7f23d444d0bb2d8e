package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestGetEnvAsInt tests the getEnvAsInt helper function
func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"parses valid integer", "100", 100},
		{"parses negative integers", "-10", -10},
		{"parses zero", "0", 0},
		{"returns default for invalid integer", "not-a-number", 42},
		{"returns default for float values", "42.5", 42},
		{"returns default for empty string", "", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}

	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_INT_VAR")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})
}

func TestGetEnvAsInt64(t *testing.T) {
	t.Setenv("TEST_INT64_VAR", "9000000000")
	assert.Equal(t, int64(9000000000), getEnvAsInt64("TEST_INT64_VAR", 1))

	t.Setenv("TEST_INT64_VAR", "lots")
	assert.Equal(t, int64(1), getEnvAsInt64("TEST_INT64_VAR", 1))
}

// TestGetEnvAsDuration tests the getEnvAsDuration helper function
func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"parses minutes", "10m", 10 * time.Minute},
		{"parses seconds", "30s", 30 * time.Second},
		{"parses hours", "2h", 2 * time.Hour},
		{"parses complex duration", "1h30m45s", time.Hour + 30*time.Minute + 45*time.Second},
		{"parses milliseconds", "500ms", 500 * time.Millisecond},
		{"returns default for invalid duration", "invalid", 5 * time.Minute},
		{"returns default for plain numbers without unit", "100", 5 * time.Minute},
		{"returns default for empty string", "", 5 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
		})
	}
}

func TestGetEnvAsBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"TRUE", true},
		{"false", false},
		{"0", false},
		{"yes", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_BOOL_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsBool("TEST_BOOL_VAR", false))
		})
	}
}
