package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
)

func TestBlendEndpoints(t *testing.T) {
	if got, want := Blend("#ff0000", "#0000ff", 0), lipgloss.Color("#ff0000"); got != want {
		t.Fatalf("expected %v at t=0, got %v", want, got)
	}
	if got, want := Blend("#ff0000", "#0000ff", 1), lipgloss.Color("#0000ff"); got != want {
		t.Fatalf("expected %v at t=1, got %v", want, got)
	}
}

func TestBlendInvalidFallsBack(t *testing.T) {
	if got, want := Blend("nope", "#000000", 0.5), lipgloss.Color("nope"); got != want {
		t.Fatalf("expected fallback %v, got %v", want, got)
	}
}
