package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"droidtest.dev/pkg/droidtest/internal/adapter"
	m "droidtest.dev/pkg/droidtest/internal/model"
)

// DefaultGradleTask is the unit-test task shared by the app modules.
const DefaultGradleTask = "testStandardDebugUnitTest"

// ErrNoTests is returned when an FQN list holds no identifiers.
var ErrNoTests = errors.New("no valid test identifiers found")

// RunArgs contains the arguments for re-running a list of tests through Gradle.
type RunArgs struct {
	Dir     m.Path
	FQNs    m.Path
	Task    string
	Wrapper string
}

// BuildTestCommand returns the Gradle arguments selecting every id.
func BuildTestCommand(task string, ids []string) []string {
	args := make([]string, 0, 2+2*len(ids))
	args = append(args, task, "--rerun-tasks")

	for _, id := range ids {
		args = append(args, "--tests", id)
	}

	return args
}

func (w *workflow) RunTests(ctx context.Context, args RunArgs) error {
	if _, err := w.FileInfo(ctx, args.FQNs); err != nil {
		return fmt.Errorf("test file not found at '%s'", args.FQNs)
	}

	ids, err := w.LoadFQNs(ctx, args.FQNs)
	if err != nil {
		return fmt.Errorf("read test file '%s': %w", args.FQNs, err)
	}

	if len(ids) == 0 {
		return fmt.Errorf("%w in '%s'", ErrNoTests, args.FQNs)
	}

	task := args.Task
	if task == "" {
		task = DefaultGradleTask
	}

	gradleArgs := BuildTestCommand(task, ids)
	w.DisplayCommand(ctx, append([]string{args.Wrapper}, gradleArgs...))

	slog.Info("running gradle", "wrapper", args.Wrapper, "task", task, "tests", len(ids))

	result, err := w.Run(ctx, args.Dir, args.Wrapper, gradleArgs...)
	if errors.Is(err, adapter.ErrExecutableNotFound) {
		return fmt.Errorf("'%s' command not found. Make sure you are in the project root directory and it exists", args.Wrapper)
	}

	var cmdErr *m.CommandError
	if errors.As(err, &cmdErr) {
		w.DisplayWarning(ctx, "\nGradle task failed with exit code %d", cmdErr.ExitCode)
		w.DisplayBuildOutput(ctx, cmdErr.Stdout, cmdErr.Stderr)

		return err
	}

	if err != nil {
		return fmt.Errorf("run gradle: %w", err)
	}

	w.DisplayBuildOutput(ctx, result.Stdout, result.Stderr)
	w.DisplaySuccess(ctx, "\nGradle task completed successfully.")

	return nil
}
