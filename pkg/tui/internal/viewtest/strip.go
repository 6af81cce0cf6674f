// Package viewtest holds helpers for asserting on rendered views.
package viewtest

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

// Strip removes ANSI escape sequences from a rendered view.
func Strip(s string) string {
	var b strings.Builder
	inSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			inSeq = true
			continue
		}
		if inSeq {
			if ansi.IsTerminator(r) {
				inSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
