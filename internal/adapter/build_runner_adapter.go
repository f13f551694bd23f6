package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"

	m "droidtest.dev/pkg/droidtest/internal/model"
)

// ErrExecutableNotFound is returned when the build tool cannot be started.
var ErrExecutableNotFound = errors.New("executable not found")

// BuildResult holds the captured output of a build-tool invocation.
type BuildResult struct {
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
}

// BuildRunnerAdapter abstracts build-tool execution for the test runner.
type BuildRunnerAdapter interface {
	// Run executes the build tool in workDir and blocks until it exits.
	// A non-zero exit is reported as *model.CommandError alongside the result.
	Run(ctx context.Context, workDir m.Path, executable string, args ...string) (BuildResult, error)
}

// LocalBuildRunnerAdapter provides a concrete implementation using os/exec.
type LocalBuildRunnerAdapter struct{}

// NewLocalBuildRunnerAdapter constructs a LocalBuildRunnerAdapter.
func NewLocalBuildRunnerAdapter() *LocalBuildRunnerAdapter {
	return &LocalBuildRunnerAdapter{}
}

// GradleWrapper returns the Gradle wrapper invocation path for the given GOOS.
func GradleWrapper(goos string) string {
	if goos == "windows" {
		return `.\gradlew.bat`
	}

	return "./gradlew"
}

// Run executes executable with args, capturing stdout and stderr.
func (a *LocalBuildRunnerAdapter) Run(ctx context.Context, workDir m.Path, executable string, args ...string) (BuildResult, error) {
	cmd := exec.CommandContext(ctx, executable, args...)
	cmd.Dir = string(workDir)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := BuildResult{
		Args:   append([]string{executable}, args...),
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()

		return result, &m.CommandError{
			Args:     result.Args,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			ExitCode: result.ExitCode,
			Err:      err,
		}
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		slog.Error("build tool not found", "executable", executable, "error", err)
		return result, fmt.Errorf("%w: %s", ErrExecutableNotFound, executable)
	}

	slog.Error("failed to run build tool", "executable", executable, "error", err)

	return result, fmt.Errorf("run %s: %w", executable, err)
}
