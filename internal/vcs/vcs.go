// Package vcs initializes a git repository in a generated project.
package vcs

import (
	"fmt"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// InitialCommitMessage is the message used for the first commit.
const InitialCommitMessage = "initial commit from forge"

// Initializer creates a repository with an initial commit. Implementations
// are best-effort collaborators: callers treat any error as a warning, never
// as a run failure.
type Initializer interface {
	// Init initializes a repository in dir, stages everything, and creates
	// the initial commit.
	Init(dir string) error
}

// GitInitializer is the go-git backed Initializer.
type GitInitializer struct {
	// Author overrides the commit author name. Defaults to "forge".
	Author string

	// Email overrides the commit author email. Defaults to "forge@localhost".
	Email string
}

// New returns a GitInitializer with default identity.
func New() *GitInitializer {
	return &GitInitializer{}
}

// Init implements Initializer.
func (g *GitInitializer) Init(dir string) error {
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("git worktree: %w", err)
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("git add: %w", err)
	}

	author := g.Author
	if author == "" {
		author = "forge"
	}
	email := g.Email
	if email == "" {
		email = "forge@localhost"
	}

	_, err = wt.Commit(InitialCommitMessage, &git.CommitOptions{
		Author: &object.Signature{
			Name:  author,
			Email: email,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("git commit: %w", err)
	}

	return nil
}
