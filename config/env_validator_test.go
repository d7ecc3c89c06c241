package config

import "testing"

func TestEnvValidator_GetLogLevel(t *testing.T) {
	validator := NewEnvValidator()

	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "unset", value: "", expected: "INFO"},
		{name: "upper case", value: "ERROR", expected: "ERROR"},
		{name: "mixed case with spaces", value: "  Debug ", expected: "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.value)
			if got := validator.GetLogLevel(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestEnvValidator_GetShowProgress(t *testing.T) {
	validator := NewEnvValidator()

	tests := []struct {
		name        string
		value       string
		expected    bool
		expectError bool
	}{
		{name: "unset", value: "", expected: false},
		{name: "true", value: "true", expected: true},
		{name: "numeric true", value: "1", expected: true},
		{name: "false", value: "FALSE", expected: false},
		{name: "garbage", value: "yes please", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHOW_PROGRESS", tt.value)

			got, err := validator.GetShowProgress()
			if tt.expectError {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("expected no error but got: %v", err)
				return
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
