package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodSet(t *testing.T) {
	set := NewMethodSet("b", "a")
	set.Add("c", "a")
	set.Union(NewMethodSet("d"))

	assert.True(t, set.Has("a"))
	assert.False(t, set.Has("z"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, set.Sorted())
}

func TestWhitelist(t *testing.T) {
	wl := Whitelist{
		"pkg.B": NewMethodSet("one"),
		"pkg.A": NewMethodSet("one", "two"),
	}

	assert.Equal(t, []string{"pkg.A", "pkg.B"}, wl.Classes())
	assert.Equal(t, 3, wl.MethodCount())
}

func TestDiffTally_Total(t *testing.T) {
	assert.Equal(t, 15, DiffTally{Added: 10, Deleted: 5}.Total())
}

func TestCommandError(t *testing.T) {
	cause := errors.New("exit status 3")
	err := &CommandError{Args: []string{"git", "diff"}, Stdout: "out", Stderr: "", ExitCode: 3, Err: cause}

	assert.Equal(t, "git diff failed (exit 3)", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "out", err.Output())

	err.Stderr = "fatal: bad revision\n"
	assert.Equal(t, "fatal: bad revision\n", err.Output())
}
