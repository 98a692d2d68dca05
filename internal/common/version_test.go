package common

import (
	"strings"
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("Version should never be empty")
	}
}

func TestGetFullVersion(t *testing.T) {
	full := GetFullVersion()
	if !strings.Contains(full, GetVersion()) {
		t.Errorf("Full version %q should contain version %q", full, GetVersion())
	}
	if !strings.Contains(full, "build:") || !strings.Contains(full, "commit:") {
		t.Errorf("Full version %q should contain build and commit info", full)
	}
}
