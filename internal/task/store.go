// Package task provides the task model and its JSON persistence layer.
//
// A task list is stored as a single JSON array on disk. Task identity is
// positional: a task is addressed by its zero-based index in the list, and
// removing a task shifts every later index down. Indexes are only meaningful
// against the current state of the list.
//
// A Store works on an in-memory copy of the list: one Load, any number of
// mutations, one Save. Load and Save take a sidecar file lock while they
// touch the disk, so two processes cannot interleave a single read or write.
// The read-modify-write cycle as a whole is NOT serialized: when two
// processes load the same state and both save, the last writer wins.
package task

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"os"

	"github.com/rs/zerolog"

	"todo/internal/constants"
	"todo/internal/ctxutil"
	todoerrors "todo/internal/errors"
	"todo/internal/flock"
)

// filePerm is used for the store file and its temp file.
const filePerm = 0o600 // Secure file permissions

// Store holds a task list in memory and persists it to a JSON file.
// It is not safe for concurrent use; the command layer performs one load,
// a sequence of mutations, and one save per invocation.
type Store struct {
	path  string
	tasks []Task
	lock  flock.Acquirer
}

// Load reads the task list at path into a new Store using the default lock
// configuration.
//
// A missing file is not an error: it yields an empty store, and nothing is
// created on disk until Save. A file that exists but does not contain a
// valid task array fails with ErrCorruptStore.
func Load(ctx context.Context, path string) (*Store, error) {
	return LoadWithLock(ctx, path, flock.Acquirer{})
}

// LoadWithLock is Load with an explicit lock configuration.
func LoadWithLock(ctx context.Context, path string, lock flock.Acquirer) (*Store, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	if path == "" {
		return nil, fmt.Errorf("failed to load store: path %w", todoerrors.ErrEmptyValue)
	}

	log := zerolog.Ctx(ctx)

	// A store that was never saved is an empty list. Do not touch the
	// disk, and do not create a lock file either.
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Debug().Str("path", path).Msg("store file missing, starting empty")
		return &Store{path: path, tasks: []Task{}, lock: lock}, nil
	}

	release, err := lock.Acquire(ctx, path+constants.LockFileSuffix)
	if err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}
	defer release()

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from user configuration
	if err != nil {
		if os.IsNotExist(err) {
			// The file disappeared between Stat and read; treat as missing.
			return &Store{path: path, tasks: []Task{}, lock: lock}, nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse store file: %w: %w", err, todoerrors.ErrCorruptStore)
	}
	if tasks == nil {
		// JSON null decodes into a nil slice without error.
		return nil, fmt.Errorf("failed to parse store file: not a task array: %w", todoerrors.ErrCorruptStore)
	}

	for i := range tasks {
		if err := tasks[i].Validate(); err != nil {
			return nil, fmt.Errorf("failed to validate store file: task %d: %w: %w", i, err, todoerrors.ErrCorruptStore)
		}
	}

	log.Debug().Str("path", path).Int("tasks", len(tasks)).Msg("store loaded")

	return &Store{path: path, tasks: tasks, lock: lock}, nil
}

// Save writes the task list back to the store file.
//
// The write is atomic: data goes to a temporary file that is renamed over
// the store file after a successful sync, so a crash mid-write never leaves
// a partial file behind. Parent directories are not created; saving into a
// missing directory is an error.
func (s *Store) Save(ctx context.Context) error {
	return s.SaveTo(ctx, s.path)
}

// SaveTo writes the task list to an explicit path instead of the bound one.
// The same locking and atomic-rename rules as Save apply, against the target
// path's own lock sidecar.
func (s *Store) SaveTo(ctx context.Context, path string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	if path == "" {
		return fmt.Errorf("failed to save store: path %w", todoerrors.ErrEmptyValue)
	}

	release, err := s.lock.Acquire(ctx, path+constants.LockFileSuffix)
	if err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}
	defer release()

	data, err := MarshalTasks(s.tasks)
	if err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}

	if err := atomicWrite(path, data); err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("tasks", len(s.tasks)).Msg("store saved")

	return nil
}

// Add validates and appends a new task, returning its index.
func (s *Store) Add(title string, priority Priority) (int, error) {
	t, err := New(title, priority)
	if err != nil {
		return 0, fmt.Errorf("failed to add task: %w", err)
	}
	s.tasks = append(s.tasks, t)
	return len(s.tasks) - 1, nil
}

// Complete marks the task at index as done. The operation is idempotent:
// completing an already-completed task succeeds without changing anything.
func (s *Store) Complete(index int) error {
	if err := s.checkIndex(index); err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}
	s.tasks[index].Complete()
	return nil
}

// Remove deletes the task at index. Every task after it shifts down one
// position, so previously returned indexes may no longer be valid.
func (s *Store) Remove(index int) error {
	if err := s.checkIndex(index); err != nil {
		return fmt.Errorf("failed to remove task: %w", err)
	}
	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	return nil
}

// Reset discards every task. The store file is not rewritten until Save.
func (s *Store) Reset() {
	s.tasks = []Task{}
}

// Get returns the task at index.
func (s *Store) Get(index int) (Task, error) {
	if err := s.checkIndex(index); err != nil {
		return Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return s.tasks[index], nil
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Tasks returns an iterator over (index, task) pairs that pass the filter.
// The sequence is computed lazily against the current list and can be
// ranged over more than once.
func (s *Store) Tasks(filter Filter) iter.Seq2[int, Task] {
	return func(yield func(int, Task) bool) {
		for i, t := range s.tasks {
			if !filter.Match(t) {
				continue
			}
			if !yield(i, t) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the full task list for read-only consumers
// such as exporters. The copy is never nil.
func (s *Store) Snapshot() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// checkIndex validates that index refers to a current task.
func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.tasks) {
		return fmt.Errorf("index %d with %d tasks: %w", index, len(s.tasks), todoerrors.ErrIndexOutOfRange)
	}
	return nil
}

// MarshalTasks renders tasks in the on-disk format: a pretty-printed JSON
// array with two-space indentation and a trailing newline. The JSON exporter
// uses the same rendering, so an exported file is byte-identical to a saved
// store.
func MarshalTasks(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tasks: %w", err)
	}
	return append(data, '\n'), nil
}

// atomicWrite writes data to a file atomically using write-then-rename.
// Uses filePerm (0o600) for secure file permissions.
func atomicWrite(path string, data []byte) error {
	// Write to temp file
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm) // #nosec G304 -- path comes from user configuration
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	// Write data
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write data: %w", err)
	}

	// Sync to disk (ensure data is persisted before rename)
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync file: %w", err)
	}

	// Close file before rename
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}
