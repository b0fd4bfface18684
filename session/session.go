package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dasdy/shellmenu/layout"
	"github.com/dasdy/shellmenu/logging"
	"github.com/dasdy/shellmenu/model"
)

const separator = "--------------------"

// Executor runs the program and arguments of a selected command.
type Executor interface {
	Execute(ctx context.Context, args []string) error
}

// Console owns the terminal side effects of the loop.
type Console interface {
	Clear() error
	// WaitEnter blocks until the user presses ENTER, without echoing input.
	WaitEnter() error
}

// Session is the read-choice-render loop over one screen.
type Session struct {
	screen   *layout.Screen
	style    model.Style
	exitKey  string
	identity string

	in      *bufio.Reader
	out     io.Writer
	console Console
	exec    Executor

	styles styles
}

type styles struct {
	title lipgloss.Style
	err   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title: r.NewStyle().Bold(true),
		err:   r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// New builds a session. identity is shown in the prompt, usually "user@host".
func New(
	screen *layout.Screen,
	settings *model.Settings,
	identity string,
	in *bufio.Reader,
	out io.Writer,
	console Console,
	exec Executor,
) *Session {
	return &Session{
		screen:   screen,
		style:    settings.Style,
		exitKey:  settings.ExitKey,
		identity: identity,
		in:       in,
		out:      out,
		console:  console,
		exec:     exec,
		styles:   newStyles(out),
	}
}

// Run shows the screen until the exit key is typed or the input ends.
func (s *Session) Run(ctx context.Context) error {
	ctx = logging.AppendCtx(ctx, slog.String(logging.PackageName, "session"))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.console.Clear(); err != nil {
			return fmt.Errorf("could not clear screen: %w", err)
		}

		if err := draw(s.out, s.screen, s.style, s.styles); err != nil {
			return err
		}

		choice, err := s.ask()
		if errors.Is(err, io.EOF) {
			slog.DebugContext(ctx, "Input closed, leaving")

			return nil
		}

		if err != nil {
			return err
		}

		if choice == s.exitKey {
			return s.console.Clear()
		}

		s.dispatch(ctx, choice)

		if err := s.pause(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}
	}
}

func (s *Session) indent() string {
	return strings.Repeat(" ", s.style.HMargin)
}

func (s *Session) ask() (string, error) {
	fmt.Fprintf(s.out, "%s%s make your choice [ \"%s\" to exit ] : ", s.indent(), s.identity, s.exitKey)

	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err //nolint:wrapcheck
	}

	return strings.TrimSpace(line), nil
}

func (s *Session) dispatch(ctx context.Context, choice string) {
	args, ok := s.screen.Command(choice)
	if !ok || len(args) == 0 {
		slog.DebugContext(ctx, "No command for choice", "choice", choice)
		fmt.Fprintf(s.out, "\n%s\"%s\" is not a valid choice\n\n", s.indent(), choice)

		return
	}

	if err := s.console.Clear(); err != nil {
		slog.WarnContext(ctx, "Could not clear screen", "error", err)
	}

	slog.InfoContext(ctx, "Running command", "choice", choice, "args", args)

	if err := s.exec.Execute(ctx, args); err != nil {
		slog.WarnContext(ctx, "Command failed", "args", args, "error", err)
		fmt.Fprintf(s.out, "\n%s%s\n", s.indent(), s.styles.err.Render(err.Error()))
	}
}

func (s *Session) pause() error {
	fmt.Fprintf(s.out, "%s%s\n", s.indent(), separator)
	fmt.Fprintf(s.out, "%sPress ENTER to return to shell-menu", s.indent())

	err := s.console.WaitEnter()

	fmt.Fprintln(s.out)

	return err
}

// Draw prints the screen title and the box grid once.
func Draw(w io.Writer, screen *layout.Screen, style model.Style) error {
	return draw(w, screen, style, newStyles(w))
}

func draw(w io.Writer, screen *layout.Screen, style model.Style, st styles) error {
	indent := strings.Repeat(" ", style.HMargin)

	header := strings.Repeat("\n", style.VMargin) + indent + st.title.Render(screen.Title) + "\n\n"
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("could not write title: %w", err)
	}

	_, err := layout.Render(w, screen.Boxes, layout.RenderOptions{
		Indent:   style.HMargin,
		HPadding: style.HPadding,
	})
	if err != nil {
		return fmt.Errorf("could not render screen: %w", err)
	}

	return nil
}
