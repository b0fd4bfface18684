package shellmenu

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dasdy/shellmenu/config"
	"github.com/spf13/cobra"
)

const exampleMainConfig = `{
  "configurations": {
    "*": {
      "*": "screen.json"
    }
  },
  "style": {
    "vmargin": 1,
    "hmargin": 2,
    "hpadding": 3
  },
  "exit_key": "0"
}
`

const exampleScreenConfig = `{
  "title": "Shell menu",
  "menu": {
    "a_system": {
      "title": "System",
      "base": "1",
      "commands": [
        {"name": "Disk usage", "command": "df -h"},
        {"name": "Memory", "command": "free -m"},
        {"name": "Uptime", "command": "uptime"}
      ]
    },
    "b_files": {
      "title": "Files",
      "base": "10",
      "commands": [
        {"name": "List files", "command": "ls -la"},
        {"name": "Working directory", "command": "pwd"}
      ]
    }
  },
  "info": {
    "notes": {
      "title": "Notes",
      "width": "30",
      "text": [
        "Type the number of a command and press ENTER to run it.",
        "Type 0 to leave the menu."
      ]
    }
  }
}
`

var initDir string

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example configuration",
	Long: `Create shell-menu.json and screen.json in the given directory. The main file maps
every host and user to the screen file; edit both to your liking. Existing files are never overwritten.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := os.MkdirAll(initDir, 0o755); err != nil {
			return fmt.Errorf("could not create %s: %w", initDir, err)
		}

		files := []struct {
			name    string
			content string
		}{
			{config.FileName + ".json", exampleMainConfig},
			{"screen.json", exampleScreenConfig},
		}

		for _, f := range files {
			if err := writeExample(filepath.Join(initDir, f.name), f.content); err != nil {
				return err
			}
		}

		return nil
	},
}

func writeExample(path, content string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%s already exists", path)
	}

	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer file.Close()

	if _, err := file.WriteString(content); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	slog.Info("Example config file created", "path", path)
	fmt.Printf("Created %s\n", path)

	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initDir,
		"dir",
		"d",
		filepath.Join(config.ExecutableDir(), "cnf"),
		"Directory to write the example configuration to")
}
