package version

import (
	"strings"
	"testing"
)

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Fatal("Version should have a default value")
	}
	// The default carries the -dev suffix until ldflags override it.
	if !strings.HasSuffix(Version, "-dev") {
		t.Errorf("default Version = %q, want -dev suffix", Version)
	}
}

func TestVersionLdflagsOverride(t *testing.T) {
	origVersion := Version
	origCommit := GitCommit
	origMessage := GitMessage
	origDate := BuildDate
	defer func() {
		Version = origVersion
		GitCommit = origCommit
		GitMessage = origMessage
		BuildDate = origDate
	}()

	Version = "1.2.3"
	GitCommit = "abc123def456"
	GitMessage = "tighten karatsuba threshold"
	BuildDate = "2026-01-15T10:30:00Z"

	if Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", Version, "1.2.3")
	}
	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q, want %q", GitCommit, "abc123def456")
	}
	if GitMessage != "tighten karatsuba threshold" {
		t.Errorf("GitMessage = %q, want %q", GitMessage, "tighten karatsuba threshold")
	}
	if BuildDate != "2026-01-15T10:30:00Z" {
		t.Errorf("BuildDate = %q, want %q", BuildDate, "2026-01-15T10:30:00Z")
	}
}
