package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	ferrors "github.com/appforge/cli/internal/errors"
	"github.com/appforge/cli/internal/output"
)

// EmitState tracks the emission engine's progress.
type EmitState int

const (
	// StateIdle is the initial state.
	StateIdle EmitState = iota

	// StateDirectoryCreated means the project root exists.
	StateDirectoryCreated

	// StateFilesWritten means every artifact was written.
	StateFilesWritten

	// StateRepoInitialized means the repository was initialized (or the
	// attempt was absorbed as a warning).
	StateRepoInitialized

	// StateDone is the terminal success state.
	StateDone

	// StateFailed is the terminal failure state, reachable from directory
	// creation or artifact writing. Repository failures never reach it.
	StateFailed
)

// String returns the state name.
func (s EmitState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDirectoryCreated:
		return "directory-created"
	case StateFilesWritten:
		return "files-written"
	case StateRepoInitialized:
		return "repo-initialized"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Emitter realizes an artifact manifest on disk.
type Emitter struct {
	// Root is the project root directory.
	Root string

	state EmitState
}

// NewEmitter creates an emitter for the given project root.
func NewEmitter(root string) *Emitter {
	return &Emitter{Root: root, state: StateIdle}
}

// State returns the current emission state.
func (e *Emitter) State() EmitState {
	return e.state
}

// CreateRoot creates the project root directory. Failure (for example, the
// path is occupied by a regular file) is fatal to the run and happens before
// any artifact write.
func (e *Emitter) CreateRoot() error {
	if err := os.MkdirAll(e.Root, 0o755); err != nil {
		e.state = StateFailed
		return &ferrors.DetailError{
			Type:     "directory creation failed",
			Message:  fmt.Sprintf("cannot create project directory: %v", err),
			Location: e.Root,
			Hint:     "Check that the path is not occupied by a file and that you have write permission.",
			Cause:    err,
		}
	}

	e.state = StateDirectoryCreated
	return nil
}

// WriteArtifacts writes every artifact under the project root, creating
// intermediate directories as needed and overwriting existing files. The
// first failure aborts the remaining writes; already-written artifacts are
// left in place.
func (e *Emitter) WriteArtifacts(artifacts []Artifact) error {
	if e.state != StateDirectoryCreated {
		return fmt.Errorf("emitter in state %s, expected %s", e.state, StateDirectoryCreated)
	}

	for _, a := range artifacts {
		target := filepath.Join(e.Root, filepath.FromSlash(a.Path))

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			e.state = StateFailed
			return ferrors.NewWriteError("cannot create directory", filepath.Dir(target), err)
		}

		if err := os.WriteFile(target, a.Content, 0o644); err != nil {
			e.state = StateFailed
			return ferrors.NewWriteError("cannot write file", target, err)
		}

		output.Debug("wrote artifact", "path", a.Path, "bytes", len(a.Content))
	}

	e.state = StateFilesWritten
	return nil
}

// FinishRepo records the repository-initialization phase as passed,
// regardless of whether the attempt succeeded: repository failures are
// absorbed by the caller as warnings.
func (e *Emitter) FinishRepo() {
	if e.state == StateFilesWritten {
		e.state = StateRepoInitialized
	}
}

// Finish moves the engine to its terminal success state.
func (e *Emitter) Finish() {
	if e.state == StateRepoInitialized || e.state == StateFilesWritten {
		e.state = StateDone
	}
}
