package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/viper"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	cmd := New()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("daybook %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestAddThenExport(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	common := []string{"--path", dir, "--user", "u1", "--date", "2025-10-07"}

	run(t, append([]string{"add", "--bullet", "event", "--context", "priority", "standup", "at", "10"}, common...)...)
	run(t, append([]string{"add", "buy", "milk"}, common...)...)

	out := run(t, append([]string{"export", "--format", "yaml"}, common...)...)
	for _, want := range []string{"text: standup at 10", "text: buy milk", "bullet: \"7\"", "context: \"1\""} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in export:\n%s", want, out)
		}
	}

	other := run(t, "export", "--path", dir, "--user", "u2", "--date", "2025-10-07")
	if strings.Contains(other, "buy milk") {
		t.Fatalf("expected another user's export to be empty:\n%s", other)
	}
}

func TestBackendFlag(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	common := []string{"--path", dir, "--backend", "bolt", "--user", "u1", "--date", "2025-10-07"}

	run(t, append([]string{"add", "fix", "sink"}, common...)...)
	out := run(t, append([]string{"export"}, common...)...)
	if !strings.Contains(out, `"text": "fix sink"`) {
		t.Fatalf("expected bolt-backed export, got:\n%s", out)
	}
}

func TestIcons(t *testing.T) {
	color.NoColor = true
	out := run(t, "icons")
	for _, want := range []string{"Bullet", "task-open-task", "Context", "priority"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestCal(t *testing.T) {
	color.NoColor = true
	out := run(t, "cal", "--path", t.TempDir(), "--user", "u1", "--date", "2025-02-10")
	if !strings.Contains(out, "February 2025") || !strings.Contains(out, "28") {
		t.Fatalf("unexpected calendar:\n%s", out)
	}
}
