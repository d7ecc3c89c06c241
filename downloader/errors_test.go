package downloader

import (
	"errors"
	"fmt"
	"testing"
)

func TestDownloadError_Error(t *testing.T) {
	plain := NewDownloadError(ErrorBadStatus, "404 Not Found")
	if got := plain.Error(); got != "bad_status: 404 Not Found" {
		t.Errorf("unexpected message: %q", got)
	}

	cause := errors.New("dial tcp: connection refused")
	wrapped := NewDownloadErrorWithCause(ErrorNetworkFailure, "request failed", cause)
	if got := wrapped.Error(); got != "network_failure: request failed (caused by: dial tcp: connection refused)" {
		t.Errorf("unexpected message: %q", got)
	}
	if !errors.Is(wrapped, cause) {
		t.Errorf("expected errors.Is to find the cause")
	}
}

func TestDownloadError_WithContext(t *testing.T) {
	de := (&DownloadError{Type: ErrorFileSystemError}).WithContext("path", "public/sounds/guitar/e2.mp3")
	if de.Context["path"] != "public/sounds/guitar/e2.mp3" {
		t.Errorf("expected context to be set, got %v", de.Context)
	}
	if !de.IsType(ErrorFileSystemError) {
		t.Errorf("expected IsType to match")
	}
}

func TestIsDownloadError(t *testing.T) {
	de := NewDownloadError(ErrorNetworkFailure, "boom")
	wrapped := fmt.Errorf("run: %w", de)

	tests := []struct {
		name     string
		err      error
		types    []ErrorType
		expected bool
	}{
		{name: "any type", err: de, expected: true},
		{name: "matching type", err: de, types: []ErrorType{ErrorNetworkFailure}, expected: true},
		{name: "one of several", err: de, types: []ErrorType{ErrorBadStatus, ErrorNetworkFailure}, expected: true},
		{name: "other type", err: de, types: []ErrorType{ErrorFileSystemError}, expected: false},
		{name: "wrapped", err: wrapped, types: []ErrorType{ErrorNetworkFailure}, expected: true},
		{name: "plain error", err: errors.New("plain"), expected: false},
		{name: "nil", err: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDownloadError(tt.err, tt.types...); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestErrorType_String(t *testing.T) {
	tests := map[ErrorType]string{
		ErrorInvalidURL:      "invalid_url",
		ErrorNetworkFailure:  "network_failure",
		ErrorFileSystemError: "filesystem_error",
		ErrorBadStatus:       "bad_status",
		ErrorUnknown:         "unknown",
		ErrorType(99):        "unknown",
	}
	for et, want := range tests {
		if got := et.String(); got != want {
			t.Errorf("ErrorType(%d).String() = %q, want %q", int(et), got, want)
		}
	}
}
