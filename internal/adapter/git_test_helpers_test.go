package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	dir  string
	repo *git.Repository
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	return &testRepo{dir: dir, repo: repo}
}

func (r *testRepo) write(t *testing.T, relPath, content string) {
	t.Helper()

	full := filepath.Join(r.dir, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

// commit writes files, stages them and commits, returning the new commit hash.
func (r *testRepo) commit(t *testing.T, msg string, files map[string]string) plumbing.Hash {
	t.Helper()

	wt, err := r.repo.Worktree()
	require.NoError(t, err)

	for relPath, content := range files {
		r.write(t, relPath, content)
		_, err := wt.Add(relPath)
		require.NoError(t, err)
	}

	hash, err := wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{Name: "droidtest", Email: "ci@droidtest.dev", When: time.Unix(1700000000, 0)},
	})
	require.NoError(t, err)

	return hash
}

func (r *testRepo) tag(t *testing.T, name string, hash plumbing.Hash) {
	t.Helper()

	_, err := r.repo.CreateTag(name, hash, nil)
	require.NoError(t, err)
}

func (r *testRepo) branch(t *testing.T, name string, hash plumbing.Hash) {
	t.Helper()

	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), hash)
	require.NoError(t, r.repo.Storer.SetReference(ref))
}
