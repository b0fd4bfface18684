package layout

import (
	"fmt"

	"github.com/dasdy/shellmenu/model"
)

// InfoBox shows read-only text wrapped to a fixed width. Several paragraphs
// are rendered as a bulleted list.
type InfoBox struct {
	frame
}

// NewInfoBox wraps paragraphs to width columns. width grows to fit the title
// but never shrinks.
func NewInfoBox(title string, width int, paragraphs []string) (*InfoBox, error) {
	if len(paragraphs) == 0 {
		return nil, model.ErrNoParagraphs
	}

	title = printable(title)
	width = max(width, displayWidth(title))
	if width < minWrapWidth {
		return nil, fmt.Errorf("%w: %d", model.ErrDegenerateWidth, width)
	}

	b := &InfoBox{frame: frame{title: title, size: width + 4}}
	b.createHeader()

	prefix := ""
	if len(paragraphs) > 1 {
		prefix = bulletPrefix
	}

	for i, text := range paragraphs {
		rows, err := Wrap(text, width, prefix)
		if err != nil {
			return nil, fmt.Errorf("could not wrap paragraph %d: %w", i, err)
		}

		if len(rows) == 0 {
			rows = []string{"| " + padRight("", width) + " |"}
		}

		b.rows = append(b.rows, rows...)
	}

	b.closeBox()

	return b, nil
}
