package options

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/daybook/pkg/note"
)

func fixedNow(t *testing.T) {
	t.Helper()
	prev := now
	now = func() time.Time { return time.Date(2025, time.October, 7, 12, 0, 0, 0, time.Local) }
	t.Cleanup(func() { now = prev })
}

func TestParseDay(t *testing.T) {
	fixedNow(t)
	cases := map[string]note.Day{
		"":           "2025-10-07",
		"today":      "2025-10-07",
		"Yesterday":  "2025-10-06",
		"tomorrow":   "2025-10-08",
		"2025-2-3":   "2025-02-03",
		"2024-12-31": "2024-12-31",
		"1/5":        "2025-01-05",
	}
	for raw, want := range cases {
		got, err := ParseDay(raw)
		if err != nil {
			t.Fatalf("ParseDay(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseDay(%q) = %s, want %s", raw, got, want)
		}
	}
	if _, err := ParseDay("next week"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestSelectionFromFlags(t *testing.T) {
	fixedNow(t)
	viper.Reset()
	t.Cleanup(viper.Reset)

	o := &SelectionOptions{}
	cmd := &cobra.Command{Use: "test"}
	AddSelectionArgs(cmd, o)
	if err := cmd.ParseFlags([]string{"--date", "2025-10-01", "--user", "u1", "-p", "garden"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	sel, err := o.Selection()
	if err != nil {
		t.Fatalf("selection: %v", err)
	}
	if sel.Day() != "2025-10-01" || sel.UserID != "u1" || sel.Project != "garden" {
		t.Fatalf("unexpected selection %v", sel)
	}
}

func TestHandleError(t *testing.T) {
	plain := &OutputOptions{}
	if err := plain.HandleError(errTest); err != errTest {
		t.Fatalf("expected the error back, got %v", err)
	}
	asJSON := &OutputOptions{JSON: true}
	if err := asJSON.HandleError(errTest); err != nil {
		t.Fatalf("expected the error to be printed, got %v", err)
	}
	if err := asJSON.HandleError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

var errTest = errors.New("boom")

func TestMCPAddr(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		config map[string]any
		want   string
		err    bool
	}{
		{name: "defaults", want: "127.0.0.1:8080"},
		{name: "flags", args: []string{"--host", "0.0.0.0", "--port", "9001"}, want: "0.0.0.0:9001"},
		{name: "config port", config: map[string]any{"mcp.port": 7000}, want: "127.0.0.1:7000"},
		{name: "out of range", args: []string{"--port", "70000"}, err: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			for k, v := range tt.config {
				viper.Set(k, v)
			}

			o := &MCPOptions{}
			cmd := &cobra.Command{Use: "mcp"}
			AddMCPArgs(cmd, o)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("parse: %v", err)
			}
			got, err := o.Addr()
			if tt.err {
				if err == nil {
					t.Fatalf("expected an error, got %q", got)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("Addr() = %q, %v; want %q", got, err, tt.want)
			}
		})
	}
}
