package layout

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dasdy/shellmenu/model"
)

const (
	bulletPrefix = "* "
	minWrapWidth = 3
)

// Wrap splits text into bordered rows with width interior columns. Each row
// is "| " + content + " |", width+4 columns in total. prefix is written at
// the start of the first row only. Words wider than the box are hyphenated.
func Wrap(text string, width int, prefix string) ([]string, error) {
	if width < minWrapWidth {
		return nil, fmt.Errorf("%w: %d", model.ErrDegenerateWidth, width)
	}

	prefix = printable(prefix)
	if displayWidth(prefix) >= width {
		return nil, fmt.Errorf("%w: prefix %q needs more than %d columns", model.ErrDegenerateWidth, prefix, width)
	}

	w := &wrapper{width: width}
	w.line.WriteString(prefix)
	w.used = displayWidth(prefix)

	for _, token := range strings.Fields(printable(text)) {
		w.add(token)
	}

	w.flush()

	return w.rows, nil
}

type wrapper struct {
	width int
	rows  []string
	line  strings.Builder
	// used counts the columns of the line buffer, trailing separator included.
	used int
}

func (w *wrapper) add(token string) {
	tokenWidth := displayWidth(token)

	for tokenWidth > w.width {
		chunk, rest := carve(token, w.width-w.used-1)
		if chunk == "" {
			if w.used > 0 {
				w.flush()

				continue
			}

			_, size := utf8.DecodeRuneInString(token)
			chunk, rest = token[:size], token[size:]
		}

		w.line.WriteString(chunk)
		w.line.WriteString("-")
		w.used += displayWidth(chunk) + 1
		w.flush()

		token = rest
		tokenWidth = displayWidth(token)
	}

	if w.used+tokenWidth+1 >= w.width {
		w.flush()
	}

	w.line.WriteString(token)
	w.line.WriteString(" ")
	w.used += tokenWidth + 1
}

func (w *wrapper) flush() {
	if w.used == 0 {
		return
	}

	content := strings.TrimSuffix(w.line.String(), " ")
	w.rows = append(w.rows, "| "+padRight(content, w.width)+" |")

	w.line.Reset()
	w.used = 0
}
