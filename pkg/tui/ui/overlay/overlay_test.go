package overlay

import (
	"strings"
	"testing"
)

func grid(width, height int) string {
	row := strings.Repeat(".", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = row
	}
	return strings.Join(lines, "\n")
}

func TestComposeAnchored(t *testing.T) {
	out := Compose(grid(8, 4), 8, 4, "ab\ncd", At(3, 1))
	want := strings.Join([]string{
		"........",
		"...ab...",
		"...cd...",
		"........",
	}, "\n")
	if out != want {
		t.Fatalf("unexpected compose:\n%s\nwant:\n%s", out, want)
	}
}

func TestComposeClampsToScreen(t *testing.T) {
	out := Compose(grid(6, 3), 6, 3, "xyz\nxyz", At(5, 2))
	lines := strings.Split(out, "\n")
	if lines[1] != "...xyz" || lines[2] != "...xyz" {
		t.Fatalf("expected block pushed inside the canvas, got %q", lines)
	}
}

func TestComposeCentered(t *testing.T) {
	out := Compose(grid(7, 3), 7, 3, "o", Centered())
	lines := strings.Split(out, "\n")
	if lines[1] != "...o..." {
		t.Fatalf("expected centered block, got %q", lines[1])
	}
}

func TestComposePadsBackground(t *testing.T) {
	out := Compose("hi", 4, 2, "", At(0, 0))
	if out != "hi  \n    " {
		t.Fatalf("unexpected padding %q", out)
	}
}
