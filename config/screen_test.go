package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dasdy/shellmenu/config"
	"github.com/dasdy/shellmenu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func requireConfigError(t *testing.T, err error, box, field string, target error) {
	t.Helper()

	var cfgErr *model.ConfigError
	require.True(t, errors.As(err, &cfgErr), "expected a config error, got %v", err)
	assert.Equal(t, box, cfgErr.Box)
	assert.Equal(t, field, cfgErr.Field)
	assert.ErrorIs(t, err, target)
}

const screenJSON = `{
  "title": "Main",
  "menu": {
    "Tools": {
      "title": "Tools",
      "base": "1",
      "commands": [
        {"name": "List", "command": "ls -l"},
        {"name": "Date", "command": "date"}
      ]
    },
    "extra": {
      "title": "Extra",
      "base": 10,
      "commands": []
    }
  },
  "info": {
    "notes": {
      "title": "Notes",
      "width": "30",
      "text": ["first", "second"]
    }
  }
}`

const screenYAML = `
title: Main
menu:
  tools:
    title: Tools
    base: 5
    commands:
      - name: List
        command: ls -l
info:
  notes:
    title: Notes
    width: 12
    text:
      - only paragraph
`

func TestLoadScreen(t *testing.T) {
	t.Run("should read a json screen", func(t *testing.T) {
		screen, err := config.LoadScreen(writeFile(t, "screen.json", screenJSON))

		require.NoError(t, err)
		assert.Equal(t, "Main", screen.Title)
		assert.Equal(t, model.Menu{
			Title: "Tools",
			Base:  1,
			Commands: []model.Command{
				{Name: "List", Line: "ls -l"},
				{Name: "Date", Line: "date"},
			},
		}, screen.Menus["tools"])
		assert.Equal(t, 10, screen.Menus["extra"].Base)
		assert.Empty(t, screen.Menus["extra"].Commands)
		assert.Equal(t, model.Info{Title: "Notes", Width: 30, Text: []string{"first", "second"}}, screen.Infos["notes"])
	})

	t.Run("should lowercase box keys", func(t *testing.T) {
		screen, err := config.LoadScreen(writeFile(t, "screen.json", screenJSON))

		require.NoError(t, err)
		assert.Contains(t, screen.Menus, "tools")
		assert.NotContains(t, screen.Menus, "Tools")
	})

	t.Run("should read a yaml screen", func(t *testing.T) {
		screen, err := config.LoadScreen(writeFile(t, "screen.yaml", screenYAML))

		require.NoError(t, err)
		assert.Equal(t, 5, screen.Menus["tools"].Base)
		assert.Equal(t, 12, screen.Infos["notes"].Width)
		assert.Equal(t, []string{"only paragraph"}, screen.Infos["notes"].Text)
	})

	t.Run("should read a file without extension as json", func(t *testing.T) {
		screen, err := config.LoadScreen(writeFile(t, "screen", screenJSON))

		require.NoError(t, err)
		assert.Equal(t, "Main", screen.Title)
	})

	t.Run("should allow a screen without info boxes", func(t *testing.T) {
		screen, err := config.LoadScreen(writeFile(t, "screen.json", `{"title": "T", "menu": {}}`))

		require.NoError(t, err)
		assert.Empty(t, screen.Infos)
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		_, err := config.LoadScreen(filepath.Join(t.TempDir(), "missing.json"))

		assert.Error(t, err)
	})

	t.Run("should fail on malformed json", func(t *testing.T) {
		_, err := config.LoadScreen(writeFile(t, "screen.json", `{"title": `))

		assert.Error(t, err)
	})

	testCases := []struct {
		name    string
		content string
		box     string
		field   string
		target  error
	}{
		{
			name:    "missing title",
			content: `{"menu": {}}`,
			box:     "screen", field: "title", target: model.ErrMissingField,
		},
		{
			name:    "missing menu section",
			content: `{"title": "T"}`,
			box:     "screen", field: "menu", target: model.ErrMissingField,
		},
		{
			name:    "menu without title",
			content: `{"title": "T", "menu": {"m": {"base": 1, "commands": []}}}`,
			box:     "menu.m", field: "title", target: model.ErrMissingField,
		},
		{
			name:    "menu without base",
			content: `{"title": "T", "menu": {"m": {"title": "M", "commands": []}}}`,
			box:     "menu.m", field: "base", target: model.ErrMissingField,
		},
		{
			name:    "base that is not a number",
			content: `{"title": "T", "menu": {"m": {"title": "M", "base": "abc", "commands": []}}}`,
			box:     "menu.m", field: "base", target: model.ErrNotANumber,
		},
		{
			name:    "fractional base",
			content: `{"title": "T", "menu": {"m": {"title": "M", "base": 1.5, "commands": []}}}`,
			box:     "menu.m", field: "base", target: model.ErrNotANumber,
		},
		{
			name:    "base out of the integer range",
			content: `{"title": "T", "menu": {"m": {"title": "M", "base": 1e20, "commands": []}}}`,
			box:     "menu.m", field: "base", target: model.ErrNotANumber,
		},
		{
			name:    "negative base out of the integer range",
			content: `{"title": "T", "menu": {"m": {"title": "M", "base": -1e20, "commands": []}}}`,
			box:     "menu.m", field: "base", target: model.ErrNotANumber,
		},
		{
			name:    "boolean base",
			content: `{"title": "T", "menu": {"m": {"title": "M", "base": true, "commands": []}}}`,
			box:     "menu.m", field: "base", target: model.ErrUnsupportedValue,
		},
		{
			name:    "menu without commands",
			content: `{"title": "T", "menu": {"m": {"title": "M", "base": 1}}}`,
			box:     "menu.m", field: "commands", target: model.ErrMissingField,
		},
		{
			name:    "command without name",
			content: `{"title": "T", "menu": {"m": {"title": "M", "base": 1, "commands": [{"command": "ls"}]}}}`,
			box:     "menu.m", field: "commands[0].name", target: model.ErrMissingField,
		},
		{
			name: "blank command line",
			content: `{"title": "T", "menu": {"m": {"title": "M", "base": 1, "commands": [
				{"name": "ok", "command": "ls"}, {"name": "x", "command": "  "}]}}}`,
			box: "menu.m", field: "commands[1].command", target: model.ErrMissingField,
		},
		{
			name:    "info without title",
			content: `{"title": "T", "menu": {}, "info": {"i": {"width": 10, "text": ["x"]}}}`,
			box:     "info.i", field: "title", target: model.ErrMissingField,
		},
		{
			name:    "info width that is not a number",
			content: `{"title": "T", "menu": {}, "info": {"i": {"title": "I", "width": "wide", "text": ["x"]}}}`,
			box:     "info.i", field: "width", target: model.ErrNotANumber,
		},
		{
			name:    "negative info width",
			content: `{"title": "T", "menu": {}, "info": {"i": {"title": "I", "width": -4, "text": ["x"]}}}`,
			box:     "info.i", field: "width", target: model.ErrNegative,
		},
		{
			name:    "info without text",
			content: `{"title": "T", "menu": {}, "info": {"i": {"title": "I", "width": 10, "text": []}}}`,
			box:     "info.i", field: "text", target: model.ErrNoParagraphs,
		},
	}

	for _, tc := range testCases {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			_, err := config.LoadScreen(writeFile(t, "screen.json", tc.content))

			requireConfigError(t, err, tc.box, tc.field, tc.target)
		})
	}
}
