package adapter

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "droidtest.dev/pkg/droidtest/internal/model"
)

// These tests drive the stand-in Gradle wrapper of the example Android project.
var androidExample = m.Path(filepath.Join("..", "..", "examples", "android-app"))

func TestGradleWrapper(t *testing.T) {
	assert.Equal(t, `.\gradlew.bat`, GradleWrapper("windows"))
	assert.Equal(t, "./gradlew", GradleWrapper("linux"))
	assert.Equal(t, "./gradlew", GradleWrapper("darwin"))
}

func skipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestLocalBuildRunnerAdapter_Run_Success(t *testing.T) {
	skipOnWindows(t)

	runner := NewLocalBuildRunnerAdapter()

	result, err := runner.Run(context.Background(), androidExample, "sh", "gradlew",
		"testStandardDebugUnitTest", "--rerun-tasks", "--tests", "com.example.ui.LoginScreenTest.showsErrorOnEmptyPassword")
	require.NoError(t, err)

	assert.Equal(t, 0, result.ExitCode)
	assert.Contains(t, result.Stdout, "> Task :app:testStandardDebugUnitTest")
	assert.Contains(t, result.Stdout, "selected com.example.ui.LoginScreenTest.showsErrorOnEmptyPassword")
	assert.Contains(t, result.Stdout, "BUILD SUCCESSFUL")
	assert.Empty(t, result.Stderr)
}

func TestLocalBuildRunnerAdapter_Run_Failure(t *testing.T) {
	skipOnWindows(t)

	runner := NewLocalBuildRunnerAdapter()

	result, err := runner.Run(context.Background(), androidExample, "sh", "gradlew",
		"testStandardDebugUnitTest", "--tests", "com.example.FailingTest.boom")
	require.Error(t, err)

	var cmdErr *m.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 1, cmdErr.ExitCode)
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, cmdErr.Stderr, "BUILD FAILED")
	assert.Contains(t, cmdErr.Output(), "FailingTest.boom FAILED")
	assert.Equal(t, []string{"sh", "gradlew", "testStandardDebugUnitTest", "--tests", "com.example.FailingTest.boom"}, cmdErr.Args)
}

func TestLocalBuildRunnerAdapter_Run_ExecutableNotFound(t *testing.T) {
	runner := NewLocalBuildRunnerAdapter()

	_, err := runner.Run(context.Background(), m.Path(t.TempDir()), "droidtest-no-such-gradlew")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutableNotFound)
}
