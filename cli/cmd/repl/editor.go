package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/elcond/lang"
	"github.com/ardnew/elcond/log"
)

const defaultEditor = "vi"

// editCommand implements [tea.ExecCommand] for editing a multi-line template
// in the user's editor. The edited text is parsed; on a parse error the user
// is asked whether to edit again.
type editCommand struct {
	ctx    context.Context
	text   string // initial content, replaced by the accepted edit
	opts   []lang.Option
	logger log.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// SetStdin sets the stdin reader for the command.
func (c *editCommand) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout sets the stdout writer for the command.
func (c *editCommand) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr sets the stderr writer for the command.
func (c *editCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the edit-parse-retry loop. An empty file cancels the edit and
// leaves c.text empty. Declining to re-edit returns [ErrEditDeclined].
func (c *editCommand) Run() error {
	f, err := os.CreateTemp("", "elcond-*.el")
	if err != nil {
		return ErrEditor.Wrap(err)
	}

	path := f.Name()
	f.Close()

	defer os.Remove(path)

	content := c.text
	c.text = ""

	for {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			return ErrEditor.Wrap(err).With(slog.String("path", path))
		}

		if err := c.runEditor(path); err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return ErrEditor.Wrap(err).With(slog.String("path", path))
		}

		content = strings.TrimRight(string(data), "\n")
		if strings.TrimSpace(content) == "" {
			return nil
		}

		_, parseErr := lang.Parse(c.ctx, content, c.opts...)

		c.logger.TraceContext(c.ctx, "editor parse attempt",
			slog.Int("length", len(content)),
			slog.Bool("success", parseErr == nil),
		)

		if parseErr == nil {
			c.text = content

			return nil
		}

		fmt.Fprintf(c.stderr, "\n%s\n", parseErr)
		fmt.Fprint(c.stdout, "Re-edit? [Y/n] ")

		scanner := bufio.NewScanner(c.stdin)
		if !scanner.Scan() {
			return ErrEditDeclined
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "n", "no":
			return ErrEditDeclined
		}
	}
}

// runEditor launches $EDITOR on path and waits for it to exit.
func (c *editCommand) runEditor(path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	cmd := exec.CommandContext(c.ctx, editor, path)
	cmd.Stdin = c.stdin
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr

	if err := cmd.Run(); err != nil {
		return ErrEditor.Wrap(err).With(slog.String("editor", editor))
	}

	return nil
}
