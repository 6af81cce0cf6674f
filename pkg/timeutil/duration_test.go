package timeutil

import (
	"testing"
)

func TestParseWindowDefault(t *testing.T) {
	days, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 7 {
		t.Fatalf("expected 7 days, got %d", days)
	}
	if label != "1w" {
		t.Fatalf("expected label 1w, got %s", label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	days, label, err := ParseWindow("1w 9d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 16 {
		t.Fatalf("expected 16 days, got %d", days)
	}
	if label != "2w2d" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3h", "0d"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestStart(t *testing.T) {
	got, err := Start("2025-03-02", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2025-02-28" {
		t.Fatalf("expected 2025-02-28, got %s", got)
	}
	if got, _ := Start("2025-03-02", 0); got != "2025-03-02" {
		t.Fatalf("expected a one-day window, got %s", got)
	}
}
