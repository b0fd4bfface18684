package layout

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/dasdy/shellmenu/logging"
	"github.com/dasdy/shellmenu/model"
	"github.com/kballard/go-shellquote"
)

// MenuBox lists commands numbered from a base index.
type MenuBox struct {
	frame

	entries []model.MenuEntry
	lookup  map[string]string
}

func NewMenuBox(title string, base int, commands []model.Command) *MenuBox {
	title = printable(title)

	b := &MenuBox{
		frame:   frame{title: title},
		entries: make([]model.MenuEntry, 0, len(commands)),
		lookup:  make(map[string]string, len(commands)),
	}

	digits := indexWidth(base, len(commands))

	interior := displayWidth(title) + 2
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = printable(c.Name)
		interior = max(interior, displayWidth(names[i])+digits+4)
	}

	b.size = interior + 3
	b.createHeader()

	for i, c := range commands {
		index := base + i
		key := strconv.Itoa(index)

		label := padLeft(key, digits) + ") " + names[i] + " "
		b.rows = append(b.rows, "| "+padRight(label, interior)+"|")

		b.lookup[key] = c.Line
		b.entries = append(b.entries, model.MenuEntry{Index: index, Name: c.Name, Command: c.Line})
	}

	b.closeBox()

	return b
}

// indexWidth is the number of columns reserved for the index column: the
// digit count of the number of commands, grown to fit a negative or large
// base.
func indexWidth(base, count int) int {
	width := 1
	for n := count; n >= 10; n /= 10 {
		width++
	}

	if count > 0 {
		width = max(width, len(strconv.Itoa(base)), len(strconv.Itoa(base+count-1)))
	}

	return width
}

func (b *MenuBox) Entries() []model.MenuEntry {
	return slices.Clone(b.entries)
}

// Command returns the program and arguments registered under choice.
func (b *MenuBox) Command(choice string) ([]string, bool) {
	line, ok := b.lookup[choice]
	if !ok {
		return nil, false
	}

	return SplitCommand(line), true
}

// SplitCommand tokenizes a command line. Quotes group words the way a shell
// would; a line with unbalanced quotes is split on whitespace.
func SplitCommand(line string) []string {
	args, err := shellquote.Split(line)
	if err != nil {
		slog.DebugContext(packageCtx(), "falling back to whitespace split",
			"line", line,
			"error", err)

		return strings.Fields(line)
	}

	return args
}

func packageCtx() context.Context {
	return logging.PackageCtx("layout")
}
