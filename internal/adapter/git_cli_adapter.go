package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	m "droidtest.dev/pkg/droidtest/internal/model"
)

// NumStatArgs selects the revisions and paths compared by DiffNumStat.
type NumStatArgs struct {
	Dir              m.Path
	Base             string
	Compare          string
	IgnoreWhitespace bool
	Paths            []string
}

// GitCLIAdapter runs git sub-commands that have no go-git equivalent.
type GitCLIAdapter interface {
	// DiffNumStat returns the raw `git diff --numstat` records between two revisions.
	DiffNumStat(ctx context.Context, args NumStatArgs) ([]string, error)
}

// LocalGitCLIAdapter shells out to the git binary found on PATH.
type LocalGitCLIAdapter struct {
	binary string
}

// NewLocalGitCLIAdapter constructs a LocalGitCLIAdapter using "git".
func NewLocalGitCLIAdapter() *LocalGitCLIAdapter {
	return &LocalGitCLIAdapter{binary: "git"}
}

// NumStatCommand returns the git arguments used for a numstat diff.
func NumStatCommand(args NumStatArgs) []string {
	cmd := []string{"diff"}
	if args.IgnoreWhitespace {
		cmd = append(cmd, "-w")
	}

	cmd = append(cmd, args.Base, args.Compare, "--numstat")
	if len(args.Paths) > 0 {
		cmd = append(cmd, "--")
		cmd = append(cmd, args.Paths...)
	}

	return cmd
}

// DiffNumStat runs `git diff --numstat` and returns its output lines.
func (a *LocalGitCLIAdapter) DiffNumStat(ctx context.Context, args NumStatArgs) ([]string, error) {
	stdout, err := a.run(ctx, args.Dir, NumStatCommand(args)...)
	if err != nil {
		return nil, err
	}

	stdout = strings.TrimRight(stdout, "\n")
	if stdout == "" {
		return nil, nil
	}

	return strings.Split(stdout, "\n"), nil
}

func (a *LocalGitCLIAdapter) run(ctx context.Context, dir m.Path, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, a.binary, args...)
	cmd.Dir = string(dir)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}

	fullArgs := append([]string{a.binary}, args...)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		slog.Error("git command failed", "args", fullArgs, "exitCode", exitErr.ExitCode())

		return "", &m.CommandError{
			Args:     fullArgs,
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			ExitCode: exitErr.ExitCode(),
			Err:      err,
		}
	}

	slog.Error("failed to start git", "args", fullArgs, "error", err)

	return "", fmt.Errorf("run %s: %w", a.binary, err)
}
