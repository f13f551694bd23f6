package model

import (
	"fmt"
	"strings"
)

// CommandError describes a child process that exited with a non-zero status.
type CommandError struct {
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s failed (exit %d)", strings.Join(e.Args, " "), e.ExitCode)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Output returns stderr, falling back to stdout when stderr is empty.
func (e *CommandError) Output() string {
	if strings.TrimSpace(e.Stderr) != "" {
		return e.Stderr
	}

	return e.Stdout
}
