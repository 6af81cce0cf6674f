package journal

import "tableflip.dev/daybook/pkg/note"

// Assemble returns the rows to render: the notes visible to sel in store
// order, followed by one synthetic empty draft. Without a selected user
// nothing is rendered, not even the draft.
func Assemble(notes []*note.Note, sel Selection) []*note.Note {
	if !sel.HasUser() {
		return nil
	}
	rows := make([]*note.Note, 0, len(notes)+1)
	for _, n := range notes {
		if n.Matches(sel.Project, sel.UserID) {
			rows = append(rows, n)
		}
	}
	return append(rows, &note.Note{})
}
