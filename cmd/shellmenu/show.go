package shellmenu

import (
	"fmt"
	"io"
	"os"

	"github.com/dasdy/shellmenu/layout"
	"github.com/dasdy/shellmenu/session"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

var listCommands bool

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the menu once and exit",
	Long: `Draw the screen configured for this host and user (or the one given with --screen)
without clearing the terminal or waiting for a choice. Useful to check a configuration.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		s, screen, err := loadScreen()
		if err != nil {
			return err
		}

		if err := session.Draw(os.Stdout, screen, s.Style); err != nil {
			return err
		}

		if listCommands {
			return writeCommands(os.Stdout, screen)
		}

		return nil
	},
}

func writeCommands(w io.Writer, screen *layout.Screen) error {
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("could not write commands: %w", err)
	}

	for _, menu := range screen.Menus() {
		for _, entry := range menu.Entries() {
			args := layout.SplitCommand(entry.Command)

			_, err := fmt.Fprintf(w, "%d\t%s\t%s\n", entry.Index, entry.Name, shellquote.Join(args...))
			if err != nil {
				return fmt.Errorf("could not write commands: %w", err)
			}
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&listCommands,
		"commands",
		false,
		"Also list every index with the program and arguments it runs")
}
