package layout

import (
	"fmt"
	"io"
	"strings"
)

type RenderOptions struct {
	// Indent is written at the start of every line.
	Indent int
	// HPadding is written after every box column.
	HPadding int
}

// Render prints boxes side by side, one row of each box per line, until every
// box is exhausted. Boxes that ran out of rows are filled with blanks of
// their width. It returns the number of lines written.
func Render(w io.Writer, boxes []Box, opts RenderOptions) (int, error) {
	cursors := make([]*Cursor, len(boxes))
	for i, b := range boxes {
		cursors[i] = NewCursor(b)
	}

	indent := strings.Repeat(" ", max(opts.Indent, 0))
	gap := strings.Repeat(" ", max(opts.HPadding, 0))

	var line strings.Builder

	written := 0

	for {
		line.Reset()
		line.WriteString(indent)

		exhausted := 0

		for _, c := range cursors {
			row, ok := c.Row()
			if !ok {
				row = strings.Repeat(" ", c.Size())
				exhausted++
			}

			line.WriteString(row)
			line.WriteString(gap)
		}

		if exhausted == len(cursors) {
			return written, nil
		}

		line.WriteString("\n")

		if _, err := io.WriteString(w, line.String()); err != nil {
			return written, fmt.Errorf("could not write line %d: %w", written+1, err)
		}

		written++
	}
}
