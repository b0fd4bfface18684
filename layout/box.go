package layout

import (
	"slices"
	"strings"
)

// Box is a bordered block of pre-rendered rows. Every row is exactly Size
// columns wide.
type Box interface {
	Title() string
	Size() int
	Rows() []string
}

type frame struct {
	title string
	size  int
	rows  []string
}

func (f *frame) Title() string {
	return f.title
}

func (f *frame) Size() int {
	return f.size
}

func (f *frame) Rows() []string {
	return slices.Clone(f.rows)
}

func (f *frame) border() string {
	return "+-" + strings.Repeat("-", f.size-3) + "+"
}

// createHeader drops any existing rows and starts over with the top border,
// the centered title and a separator.
func (f *frame) createHeader() {
	f.rows = []string{
		f.border(),
		"|" + center(f.title, f.size-2) + "|",
		f.border(),
	}
}

// closeBox appends the bottom border, identical for every kind of box.
func (f *frame) closeBox() {
	f.rows = append(f.rows, f.border())
}

// Cursor reads the rows of a box one at a time. A cursor belongs to a single
// render pass; boxes themselves hold no read position.
type Cursor struct {
	rows []string
	size int
	next int
}

func NewCursor(b Box) *Cursor {
	return &Cursor{rows: b.Rows(), size: b.Size()}
}

func (c *Cursor) Reset() {
	c.next = 0
}

// Row returns the next unread row. ok is false once every row was returned,
// and stays false until Reset.
func (c *Cursor) Row() (row string, ok bool) {
	if c.next >= len(c.rows) {
		return "", false
	}

	row = c.rows[c.next]
	c.next++

	return row, true
}

func (c *Cursor) Size() int {
	return c.size
}
