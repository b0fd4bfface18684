package shellmenu

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dasdy/shellmenu/config"
	"github.com/dasdy/shellmenu/layout"
	"github.com/dasdy/shellmenu/model"
	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigKey(t *testing.T) {
	assert.Equal(t, config.KeyExitKey, configKey("exit-key"))
	assert.Equal(t, config.KeyHPadding, configKey("hpadding"))
	assert.Equal(t, "some_flag", configKey("some-flag"))
	assert.Equal(t, "verbose", configKey("verbose"))
}

func TestWriteExample(t *testing.T) {
	t.Run("should create the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "screen.json")

		require.NoError(t, writeExample(path, "{}"))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{}", string(content))
	})

	t.Run("should refuse to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "screen.json")
		require.NoError(t, os.WriteFile(path, []byte("mine"), 0o600))

		err := writeExample(path, "{}")

		assert.ErrorContains(t, err, "already exists")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "mine", string(content))
	})
}

func writeExamples(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, writeExample(filepath.Join(dir, config.FileName+".json"), exampleMainConfig))
	require.NoError(t, writeExample(filepath.Join(dir, "screen.json"), exampleScreenConfig))

	return dir
}

func TestExampleConfiguration(t *testing.T) {
	dir := writeExamples(t)

	v := config.NewViper()
	found, err := config.ReadInConfig(v, filepath.Join(dir, config.FileName+".json"))
	require.NoError(t, err)
	require.True(t, found)

	s, err := config.Settings(v)
	require.NoError(t, err)
	assert.Equal(t, model.Style{VMargin: 1, HMargin: 2, HPadding: 3}, s.Style)
	assert.Equal(t, "0", s.ExitKey)

	path, err := config.ScreenPath(s, "any-host", "any-user", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "screen.json"), path)

	cfg, err := config.LoadScreen(path)
	require.NoError(t, err)

	screen, err := layout.BuildScreen(cfg)
	require.NoError(t, err)
	assert.Len(t, screen.Boxes, 3)

	args, ok := screen.Command("10")
	assert.True(t, ok)
	assert.Equal(t, []string{"ls", "-la"}, args)

	_, ok = screen.Command(s.ExitKey)
	assert.False(t, ok)
}

func TestWriteCommands(t *testing.T) {
	screen, err := layout.BuildScreen(model.Screen{
		Title: "T",
		Menus: map[string]model.Menu{
			"a": {Title: "A", Base: 1, Commands: []model.Command{
				{Name: "Disk", Line: "df  -h"},
				{Name: "Say", Line: `echo "hello world"`},
			}},
			"b": {Title: "B", Base: 10, Commands: []model.Command{{Name: "Where", Line: "pwd"}}},
		},
	})
	require.NoError(t, err)

	var out bytes.Buffer

	require.NoError(t, writeCommands(&out, screen))

	lines := strings.Split(strings.TrimPrefix(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "1\tDisk\tdf -h", lines[0])
	assert.Equal(t, "10\tWhere\tpwd", lines[2])
	assert.Empty(t, lines[3])

	fields := strings.Split(lines[1], "\t")
	require.Len(t, fields, 3)
	assert.Equal(t, "2", fields[0])

	args, err := shellquote.Split(fields[2])
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "hello world"}, args)
}
