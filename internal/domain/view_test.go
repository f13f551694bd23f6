package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droidtest.dev/pkg/droidtest/internal/domain"
)

func TestView(t *testing.T) {
	h := newHarness(t)
	h.write(t, "/proj/ui_test_fqns.txt", "# list\ncom.example.LoginTest.a\ncom.example.LoginTest.b\nbroken\ncom.example.SettingsTest.c\n")

	require.NoError(t, h.workflow.View(context.Background(), domain.ViewArgs{FQNs: "/proj/ui_test_fqns.txt"}))

	out := h.stdout.String()
	assert.Contains(t, out, "skipping malformed entry: broken")
	assert.Contains(t, out, "com.example.LoginTest")
	assert.Contains(t, out, "com.example.SettingsTest")
	assert.Contains(t, out, "TOTAL CLASSES 2")
}

func TestView_EmptyList(t *testing.T) {
	h := newHarness(t)
	h.write(t, "/proj/ui_test_fqns.txt", "# nothing yet\n")

	require.NoError(t, h.workflow.View(context.Background(), domain.ViewArgs{FQNs: "/proj/ui_test_fqns.txt"}))
	assert.Equal(t, "No test methods listed in /proj/ui_test_fqns.txt.\n", h.stdout.String())
}

func TestView_MissingList(t *testing.T) {
	h := newHarness(t)

	err := h.workflow.View(context.Background(), domain.ViewArgs{FQNs: "/proj/missing.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read fqn list /proj/missing.txt")
}
