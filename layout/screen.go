package layout

import (
	"errors"
	"log/slog"
	"maps"
	"slices"
	"strconv"

	"github.com/dasdy/shellmenu/model"
)

// Screen is the set of boxes built from one screen configuration, in display
// order: menus first, then info boxes, each group sorted by key.
type Screen struct {
	Title string
	Boxes []Box
}

func BuildScreen(cfg model.Screen) (*Screen, error) {
	ctx := packageCtx()
	screen := &Screen{Title: cfg.Title}

	// index -> box that registered it first
	owners := make(map[string]string)

	for _, key := range slices.Sorted(maps.Keys(cfg.Menus)) {
		menu := cfg.Menus[key]
		name := "menu." + key

		box := NewMenuBox(menu.Title, menu.Base, menu.Commands)

		for _, entry := range box.Entries() {
			choice := strconv.Itoa(entry.Index)
			if owner, taken := owners[choice]; taken {
				slog.WarnContext(ctx, "Index used by more than one menu, the first one wins",
					"index", choice,
					"first", owner,
					"ignored", name)

				continue
			}

			owners[choice] = name
		}

		slog.DebugContext(ctx, "Built menu box", "box", name, "size", box.Size(), "commands", len(menu.Commands))
		screen.Boxes = append(screen.Boxes, box)
	}

	for _, key := range slices.Sorted(maps.Keys(cfg.Infos)) {
		info := cfg.Infos[key]
		name := "info." + key

		box, err := NewInfoBox(info.Title, info.Width, info.Text)
		if err != nil {
			return nil, model.NewConfigError(name, infoField(err), err)
		}

		slog.DebugContext(ctx, "Built info box", "box", name, "size", box.Size())
		screen.Boxes = append(screen.Boxes, box)
	}

	return screen, nil
}

func infoField(err error) string {
	switch {
	case errors.Is(err, model.ErrNoParagraphs):
		return "text"
	case errors.Is(err, model.ErrDegenerateWidth):
		return "width"
	default:
		return ""
	}
}

// Menus returns the menu boxes of the screen in display order.
func (s *Screen) Menus() []*MenuBox {
	var menus []*MenuBox

	for _, b := range s.Boxes {
		if m, ok := b.(*MenuBox); ok {
			menus = append(menus, m)
		}
	}

	return menus
}

// Command resolves a typed choice against every menu box. The first box
// that knows the index wins.
func (s *Screen) Command(choice string) ([]string, bool) {
	for _, m := range s.Menus() {
		if args, ok := m.Command(choice); ok {
			return args, true
		}
	}

	return nil, false
}
