// Package snake asks for note fields interactively when they are not given as
// arguments.
package snake

import (
	"errors"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/daybook/pkg/glyph"
)

// Answers are the fields collected by PromptNote.
type Answers struct {
	Text    string
	Bullet  string
	Context string
}

// Prompter runs prompts against the given streams.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

type iconItem struct {
	ID     string
	Symbol string
	Label  string
}

// PromptNote asks for the note text, then a bullet and a context icon.
func (p Prompter) PromptNote(text string) (Answers, error) {
	a := Answers{Text: strings.TrimSpace(text)}
	if a.Text == "" {
		prompt := promptui.Prompt{
			Label: "Note",
			Validate: func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("note text is required")
				}
				return nil
			},
			Stdin:  io.NopCloser(p.In),
			Stdout: nopCloser{p.Out},
		}
		v, err := prompt.Run()
		if err != nil {
			return a, err
		}
		a.Text = strings.TrimSpace(v)
	}

	var err error
	if a.Bullet, err = p.pickIcon("Bullet", glyph.Bullets()); err != nil {
		return a, err
	}
	if a.Context, err = p.pickIcon("Context", glyph.Contexts()); err != nil {
		return a, err
	}
	return a, nil
}

func (p Prompter) pickIcon(label string, c glyph.Catalog) (string, error) {
	items := iconItems(c)
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Symbol }} {{ .Label | bold }}",
		Inactive: "   {{ .Symbol }} {{ .Label }}",
		Selected: "{{ .Symbol }} {{ .Label | green }}",
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      len(items),
		Searcher:  searcher(items),
		Stdin:     io.NopCloser(p.In),
		Stdout:    nopCloser{p.Out},
	}
	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return items[i].ID, nil
}

func iconItems(c glyph.Catalog) []iconItem {
	items := make([]iconItem, 0, len(c.Icons()))
	for _, icon := range c.Icons() {
		items = append(items, iconItem{ID: icon.ID, Symbol: icon.Symbol, Label: c.Label(icon)})
	}
	return items
}

func searcher(items []iconItem) func(string, int) bool {
	return func(input string, index int) bool {
		name := strings.Replace(strings.ToLower(items[index].Label), " ", "", -1)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)
		return strings.Contains(name, input)
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
