package main

import (
	"log/slog"
	"os"

	"github.com/dasdy/shellmenu/cmd/shellmenu"
	"github.com/dasdy/shellmenu/logging"
)

func main() {
	// The root command raises the level when --verbose is given.
	slog.SetDefault(logging.New(os.Stderr, logging.Level(false)))

	shellmenu.Execute()
}
