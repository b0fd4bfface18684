package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// TerminalConsole clears the screen with ANSI sequences and reads the pause
// line with echo disabled. When stdin or stdout are not terminals it falls
// back to plain line reads and skips clearing.
type TerminalConsole struct {
	in     *os.File
	out    *os.File
	reader *bufio.Reader
	output *termenv.Output
}

// NewTerminalConsole shares reader with the session so buffered input is
// not lost when stdin is not a terminal.
func NewTerminalConsole(in, out *os.File, reader *bufio.Reader) *TerminalConsole {
	return &TerminalConsole{
		in:     in,
		out:    out,
		reader: reader,
		output: termenv.NewOutput(out),
	}
}

func (c *TerminalConsole) Clear() error {
	if !term.IsTerminal(int(c.out.Fd())) {
		return nil
	}

	c.output.ClearScreen()

	return nil
}

func (c *TerminalConsole) WaitEnter() error {
	fd := int(c.in.Fd())
	if term.IsTerminal(fd) {
		if _, err := term.ReadPassword(fd); err != nil {
			return fmt.Errorf("could not read from terminal: %w", err)
		}

		return nil
	}

	_, err := c.reader.ReadString('\n')

	return err //nolint:wrapcheck
}

var errEmptyCommand = errors.New("empty command")

// ProcessExecutor runs commands as child processes attached to the given
// standard streams.
type ProcessExecutor struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
}

func NewProcessExecutor() *ProcessExecutor {
	return &ProcessExecutor{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (e *ProcessExecutor) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errEmptyCommand
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("could not run %s: %w", args[0], err)
	}

	return nil
}
