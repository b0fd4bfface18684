package config

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dasdy/shellmenu/model"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

type rawScreen struct {
	Title *string            `mapstructure:"title"`
	Menu  map[string]rawMenu `mapstructure:"menu"`
	Info  map[string]rawInfo `mapstructure:"info"`
}

type rawMenu struct {
	Title    *string      `mapstructure:"title"`
	Base     any          `mapstructure:"base"`
	Commands []rawCommand `mapstructure:"commands"`
}

type rawCommand struct {
	Name    *string `mapstructure:"name"`
	Command *string `mapstructure:"command"`
}

type rawInfo struct {
	Title *string  `mapstructure:"title"`
	Width any      `mapstructure:"width"`
	Text  []string `mapstructure:"text"`
}

// LoadScreen reads a screen configuration. The format follows the file
// extension; files without one are read as JSON.
func LoadScreen(path string) (model.Screen, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter(KeyDelimiter))
	v.SetConfigFile(path)

	if filepath.Ext(path) == "" {
		v.SetConfigType("json")
	}

	if err := v.ReadInConfig(); err != nil {
		return model.Screen{}, fmt.Errorf("could not read screen configuration %s: %w", path, err)
	}

	return DecodeScreen(v)
}

// DecodeScreen validates the screen configuration held by v and normalises
// numeric fields.
func DecodeScreen(v *viper.Viper) (model.Screen, error) {
	var raw rawScreen
	if err := v.Unmarshal(&raw); err != nil {
		return model.Screen{}, fmt.Errorf("could not decode screen configuration: %w", err)
	}

	if raw.Title == nil {
		return model.Screen{}, model.NewConfigError("screen", "title", model.ErrMissingField)
	}

	// Unmarshal drops empty sections, so presence is checked on the raw config.
	if !v.IsSet("menu") {
		return model.Screen{}, model.NewConfigError("screen", "menu", model.ErrMissingField)
	}

	screen := model.Screen{
		Title: *raw.Title,
		Menus: make(map[string]model.Menu, len(raw.Menu)),
		Infos: make(map[string]model.Info, len(raw.Info)),
	}

	for key, m := range raw.Menu {
		menu, err := m.normalise("menu." + key)
		if err != nil {
			return model.Screen{}, err
		}

		screen.Menus[key] = menu
	}

	for key, i := range raw.Info {
		info, err := i.normalise("info." + key)
		if err != nil {
			return model.Screen{}, err
		}

		screen.Infos[key] = info
	}

	return screen, nil
}

func (m rawMenu) normalise(box string) (model.Menu, error) {
	if m.Title == nil {
		return model.Menu{}, model.NewConfigError(box, "title", model.ErrMissingField)
	}

	base, err := toInt(m.Base)
	if err != nil {
		return model.Menu{}, model.NewConfigError(box, "base", err)
	}

	if m.Commands == nil {
		return model.Menu{}, model.NewConfigError(box, "commands", model.ErrMissingField)
	}

	commands := make([]model.Command, 0, len(m.Commands))

	for i, c := range m.Commands {
		if c.Name == nil {
			return model.Menu{}, model.NewConfigError(box, fmt.Sprintf("commands[%d].name", i), model.ErrMissingField)
		}

		if c.Command == nil || strings.TrimSpace(*c.Command) == "" {
			return model.Menu{}, model.NewConfigError(box, fmt.Sprintf("commands[%d].command", i), model.ErrMissingField)
		}

		commands = append(commands, model.Command{Name: *c.Name, Line: *c.Command})
	}

	return model.Menu{Title: *m.Title, Base: base, Commands: commands}, nil
}

func (i rawInfo) normalise(box string) (model.Info, error) {
	if i.Title == nil {
		return model.Info{}, model.NewConfigError(box, "title", model.ErrMissingField)
	}

	width, err := toInt(i.Width)
	if err != nil {
		return model.Info{}, model.NewConfigError(box, "width", err)
	}

	if width < 0 {
		return model.Info{}, model.NewConfigError(box, "width", fmt.Errorf("%w: %d", model.ErrNegative, width))
	}

	if len(i.Text) == 0 {
		return model.Info{}, model.NewConfigError(box, "text", model.ErrNoParagraphs)
	}

	return model.Info{Title: *i.Title, Width: width, Text: i.Text}, nil
}

// toInt accepts native numbers and base-10 strings. Fractions and booleans
// are rejected.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, model.ErrMissingField
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", model.ErrNotANumber, n)
		}

		return i, nil
	case float64:
		if n != math.Trunc(n) || n < math.MinInt || n >= math.MaxInt {
			return 0, fmt.Errorf("%w: %v", model.ErrNotANumber, n)
		}

		return int(n), nil
	case bool:
		return 0, fmt.Errorf("%w: %v", model.ErrUnsupportedValue, n)
	}

	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", model.ErrUnsupportedValue, err)
	}

	return i, nil
}
