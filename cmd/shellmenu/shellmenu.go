package shellmenu

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/dasdy/shellmenu/config"
	"github.com/dasdy/shellmenu/layout"
	"github.com/dasdy/shellmenu/logging"
	"github.com/dasdy/shellmenu/model"
	"github.com/dasdy/shellmenu/session"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	cfgFile    string
	screenFile string
	exitKey    string
	vmargin    int
	hmargin    int
	hpadding   int
	verbose    bool
)

// settings holds the main configuration file.
var settings = config.NewViper()

// flagKeys maps flags to their main configuration keys when the names differ.
var flagKeys = map[string]string{
	"exit-key": config.KeyExitKey,
	"vmargin":  config.KeyVMargin,
	"hmargin":  config.KeyHMargin,
	"hpadding": config.KeyHPadding,
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "shellmenu",
	Short: "Pick and run shell commands from a terminal menu",
	Long: `Shellmenu draws the menus and notes configured for the current host and user
side by side, then runs the command whose number you type. It is meant for
shared accounts and SSH sessions where a handful of commands is all you need.`,
	PersistentPreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, screen, err := loadScreen()
		if err != nil {
			return err
		}

		name, host := identity()
		reader := bufio.NewReader(os.Stdin)

		menu := session.New(
			screen,
			s,
			name+"@"+host,
			reader,
			os.Stdout,
			session.NewTerminalConsole(os.Stdin, os.Stdout, reader),
			session.NewProcessExecutor(),
		)

		return menu.Run(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "",
		"main config file (default is shell-menu.{json,yaml,toml} in <binary dir>/cnf, ~/.config/shellmenu, ~ or .)")
	flags.StringVarP(&screenFile, "screen", "s", "",
		"screen config file to show instead of the one configured for this host and user")
	flags.StringVar(&exitKey, "exit-key", model.DefaultExitKey, "Choice that leaves the menu")
	flags.IntVar(&vmargin, "vmargin", model.DefaultStyle().VMargin, "Empty lines above the title")
	flags.IntVar(&hmargin, "hmargin", model.DefaultStyle().HMargin, "Spaces left of the title and boxes")
	flags.IntVar(&hpadding, "hpadding", model.DefaultStyle().HPadding, "Spaces between boxes")
	flags.BoolVarP(&verbose, "verbose", "v", false, "If provided, debug output will be shown")
}

func initConfig() {
	found, err := config.ReadInConfig(settings, cfgFile)
	if err != nil {
		slog.Error("Could not read config file", "error", err)
		os.Exit(1)
	}

	if !found {
		slog.Warn("No main config file found, run `shellmenu init` to create one", "searched", config.SearchPaths())
	}
}

func configKey(flagName string) string {
	if key, ok := flagKeys[flagName]; ok {
		return key
	}

	return strings.ReplaceAll(flagName, "-", "_")
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) error {
	var bindErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := configKey(f.Name)
		if bindErr != nil || f.Changed || !settings.IsSet(key) {
			return
		}

		val := settings.Get(key)
		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
			bindErr = fmt.Errorf("could not apply config value %v to --%s: %w", val, f.Name, err)

			return
		}

		slog.Debug("Flag set to config value", "flag", f.Name, "key", key, "value", val)
	})

	if verbose {
		slog.SetDefault(logging.New(os.Stderr, logging.Level(verbose)))
	}

	return bindErr
}

// currentSettings decodes the main configuration and lets the flags, which
// already carry config values unless given on the command line, win.
func currentSettings() (*model.Settings, error) {
	s, err := config.Settings(settings)
	if err != nil {
		return nil, err
	}

	s.Style = model.Style{VMargin: vmargin, HMargin: hmargin, HPadding: hpadding}
	s.ExitKey = exitKey

	if err := config.ValidateStyle(s.Style); err != nil {
		return nil, err
	}

	if s.ExitKey == "" {
		return nil, model.NewConfigError("main", config.KeyExitKey, model.ErrMissingField)
	}

	return s, nil
}

func loadScreen() (*model.Settings, *layout.Screen, error) {
	s, err := currentSettings()
	if err != nil {
		return nil, nil, err
	}

	path := screenFile
	if path == "" {
		name, host := identity()

		baseDir := ""
		if used := settings.ConfigFileUsed(); used != "" {
			baseDir = filepath.Dir(used)
		}

		path, err = config.ScreenPath(s, host, name, baseDir)
		if err != nil {
			return nil, nil, err
		}
	}

	cfg, err := config.LoadScreen(path)
	if err != nil {
		return nil, nil, err
	}

	screen, err := layout.BuildScreen(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid screen configuration %s: %w", path, err)
	}

	return s, screen, nil
}

func identity() (name, host string) {
	if u, err := user.Current(); err == nil {
		name = u.Username
	} else {
		name = os.Getenv("USER")
	}

	host, err := os.Hostname()
	if err != nil {
		slog.Warn("Could not read hostname", "error", err)
	}

	return name, host
}
