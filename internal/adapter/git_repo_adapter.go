package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"sync"

	m "droidtest.dev/pkg/droidtest/internal/model"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitRepoAdapter abstracts the repository operations used by the test-file syncer.
// Paths inside the repository are slash-separated and relative to its root.
type GitRepoAdapter interface {
	// IsRepository reports whether repo is the root of a git working copy.
	IsRepository(ctx context.Context, repo m.Path) bool

	// IsClean reports whether the working tree has no pending changes.
	IsClean(ctx context.Context, repo m.Path) (bool, error)

	// ReadFileAt returns the content of relPath as of ref, without checking it out.
	ReadFileAt(ctx context.Context, repo m.Path, ref, relPath string) ([]byte, error)

	// FileExistsAt reports whether relPath exists as a file at ref.
	FileExistsAt(ctx context.Context, repo m.Path, ref, relPath string) (bool, error)

	// Checkout switches the working tree to ref. Branch names stay attached;
	// tags and commits leave a detached HEAD.
	Checkout(ctx context.Context, repo m.Path, ref string) error

	// Stage adds relPath to the index.
	Stage(ctx context.Context, repo m.Path, relPath string) error
}

// GoGitRepoAdapter implements GitRepoAdapter with go-git.
type GoGitRepoAdapter struct {
	mu    sync.Mutex
	repos map[m.Path]*git.Repository
}

// NewGoGitRepoAdapter constructs a GoGitRepoAdapter.
func NewGoGitRepoAdapter() *GoGitRepoAdapter {
	return &GoGitRepoAdapter{repos: make(map[m.Path]*git.Repository)}
}

func (a *GoGitRepoAdapter) open(repoPath m.Path) (*git.Repository, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if repo, ok := a.repos[repoPath]; ok {
		return repo, nil
	}

	repo, err := git.PlainOpenWithOptions(string(repoPath), &git.PlainOpenOptions{
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}

	a.repos[repoPath] = repo

	return repo, nil
}

// IsRepository reports whether repo can be opened as a git working copy.
func (a *GoGitRepoAdapter) IsRepository(ctx context.Context, repo m.Path) bool {
	if ctx.Err() != nil {
		return false
	}

	r, err := a.open(repo)
	if err != nil {
		return false
	}

	_, err = r.Worktree()

	return err == nil
}

// IsClean reports whether `git status` would print nothing.
func (a *GoGitRepoAdapter) IsClean(ctx context.Context, repo m.Path) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r, err := a.open(repo)
	if err != nil {
		return false, err
	}

	wt, err := r.Worktree()
	if err != nil {
		return false, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("getting status: %w", err)
	}

	return status.IsClean(), nil
}

// ReadFileAt returns the file content at ref.
func (a *GoGitRepoAdapter) ReadFileAt(ctx context.Context, repo m.Path, ref, relPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := a.fileAt(repo, ref, relPath)
	if err != nil {
		return nil, err
	}

	reader, err := file.Reader()
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", relPath, err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", relPath, err)
	}

	return content, nil
}

// FileExistsAt reports whether relPath is a file in the tree of ref.
func (a *GoGitRepoAdapter) FileExistsAt(ctx context.Context, repo m.Path, ref, relPath string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := a.fileAt(repo, ref, relPath)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, object.ErrFileNotFound) || errors.Is(err, object.ErrDirectoryNotFound) {
		return false, nil
	}

	return false, err
}

func (a *GoGitRepoAdapter) fileAt(repoPath m.Path, ref, relPath string) (*object.File, error) {
	repo, err := a.open(repoPath)
	if err != nil {
		return nil, err
	}

	commit, err := resolveCommit(repo, ref)
	if err != nil {
		return nil, err
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("getting tree: %w", err)
	}

	file, err := tree.File(path.Clean(relPath))
	if err != nil {
		return nil, fmt.Errorf("getting file %s at %s: %w", relPath, ref, err)
	}

	return file, nil
}

// Checkout switches the working tree to ref.
func (a *GoGitRepoAdapter) Checkout(ctx context.Context, repo m.Path, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r, err := a.open(repo)
	if err != nil {
		return err
	}

	wt, err := r.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	opts := &git.CheckoutOptions{}

	branch := plumbing.NewBranchReferenceName(ref)
	if _, err := r.Reference(branch, true); err == nil {
		opts.Branch = branch
	} else {
		commit, err := resolveCommit(r, ref)
		if err != nil {
			return err
		}

		opts.Hash = commit.Hash
	}

	if err := wt.Checkout(opts); err != nil {
		slog.Error("checkout failed", "repo", repo, "ref", ref, "error", err)
		return fmt.Errorf("checking out %s: %w", ref, err)
	}

	return nil
}

// Stage adds relPath to the index.
func (a *GoGitRepoAdapter) Stage(ctx context.Context, repo m.Path, relPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r, err := a.open(repo)
	if err != nil {
		return err
	}

	wt, err := r.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	if _, err := wt.Add(path.Clean(relPath)); err != nil {
		slog.Error("staging failed", "repo", repo, "path", relPath, "error", err)
		return fmt.Errorf("staging %s: %w", relPath, err)
	}

	return nil
}

// resolveCommit resolves a branch, tag, commit hash or revision expression to a commit.
func resolveCommit(repo *git.Repository, ref string) (*object.Commit, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, fmt.Errorf("resolving ref %q: %w", ref, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err == nil {
		return commit, nil
	}

	tag, tagErr := repo.TagObject(*hash)
	if tagErr != nil {
		return nil, fmt.Errorf("getting commit for %q: %w", ref, err)
	}

	commit, err = tag.Commit()
	if err != nil {
		return nil, fmt.Errorf("getting tagged commit for %q: %w", ref, err)
	}

	return commit, nil
}
