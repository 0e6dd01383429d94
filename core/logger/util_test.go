package logger

import (
	"testing"
	"time"
)

func TestRoundMS(t *testing.T) {
	if got := RoundMS(1234567 * time.Microsecond); got != 1235*time.Millisecond {
		t.Fatalf("RoundMS = %v", got)
	}
}

func TestSanitize(t *testing.T) {
	in := "line\nwith\ttabs\x00and\x1bcontrol"
	got := Sanitize(in)
	if got != "line\nwith\ttabsandcontrol" {
		t.Fatalf("Sanitize = %q", got)
	}
}

func TestSanitizeLimit(t *testing.T) {
	if got := SanitizeLimit("привет мир", 6); got != "привет" {
		t.Fatalf("SanitizeLimit = %q", got)
	}
	if got := SanitizeLimit("short", 64); got != "short" {
		t.Fatalf("SanitizeLimit = %q", got)
	}
}

func TestBuildRID(t *testing.T) {
	if got := BuildRID(1, 2, 3); got != "1:2:3" {
		t.Fatalf("BuildRID = %q", got)
	}
}
