package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"tableflip.dev/daybook/pkg/note"
)

// Format is an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported export encodings.
func Formats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatTOML)}
}

// ParseFormat normalizes an export format name.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("printers: unknown format %q (want one of %s)", raw, strings.Join(Formats(), ", "))
	}
}

type exportNote struct {
	ID      string    `json:"id" yaml:"id" toml:"id"`
	Day     string    `json:"day" yaml:"day" toml:"day"`
	User    string    `json:"user" yaml:"user" toml:"user"`
	Project string    `json:"project,omitempty" yaml:"project,omitempty" toml:"project,omitempty"`
	Text    string    `json:"text" yaml:"text" toml:"text"`
	Bullet  string    `json:"bullet,omitempty" yaml:"bullet,omitempty" toml:"bullet,omitempty"`
	Context string    `json:"context,omitempty" yaml:"context,omitempty" toml:"context,omitempty"`
	Created time.Time `json:"created" yaml:"created" toml:"created"`
}

type exportDoc struct {
	Notes []exportNote `json:"notes" yaml:"notes" toml:"notes"`
}

// Export writes notes to w in format.
func Export(w io.Writer, format Format, notes []*note.Note) error {
	doc := exportDoc{Notes: make([]exportNote, 0, len(notes))}
	for _, n := range notes {
		doc.Notes = append(doc.Notes, exportNote{
			ID:      n.ID,
			Day:     n.DateCreated.String(),
			User:    n.UserID,
			Project: n.ProjectTag,
			Text:    n.Text,
			Bullet:  n.BulletTag,
			Context: n.ContextTag,
			Created: n.Created.UTC(),
		})
	}
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("printers: yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("printers: toml: %w", err)
		}
		return nil
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("printers: json: %w", err)
		}
		return nil
	}
}
