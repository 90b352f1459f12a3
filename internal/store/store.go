// Package store owns the persisted task collections: two JSON
// documents (active tasks and archive) under a single data directory,
// written atomically, plus the disable-marker lifecycle.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jyang234/tinytask/internal/task"
)

// ErrCorruptData is returned when a task file exists but cannot be
// parsed. The file is never modified or deleted on this path; the user
// is expected to inspect or restore it.
var ErrCorruptData = errors.New("task file is corrupt")

const (
	tasksFile   = "tasks.json"
	archiveFile = "archive.json"
	markerFile  = ".disabled"
)

// Store reads and writes task collections under one data directory.
type Store struct {
	dir string
}

// New returns a store rooted at dir. The directory is created lazily on
// the first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the default data directory, ~/.tinytask.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".tinytask"), nil
}

// Dir returns the data directory the store is rooted at.
func (s *Store) Dir() string {
	return s.dir
}

// TasksPath returns the path of the active collection file.
func (s *Store) TasksPath() string {
	return filepath.Join(s.dir, tasksFile)
}

// ArchivePath returns the path of the archive collection file.
func (s *Store) ArchivePath() string {
	return filepath.Join(s.dir, archiveFile)
}

// Load reads the active collection. A missing file yields an empty
// collection; an unparseable file yields an ErrCorruptData-wrapped
// error, never an empty collection.
func (s *Store) Load() (task.Collection, error) {
	return s.loadFile(s.TasksPath())
}

// LoadArchive reads the archive collection with the same semantics as
// Load.
func (s *Store) LoadArchive() (task.Collection, error) {
	return s.loadFile(s.ArchivePath())
}

func (s *Store) loadFile(path string) (task.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return task.NewCollection(), nil
		}
		return task.Collection{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return task.Collection{}, fmt.Errorf("%w: %s: %v; inspect or restore the file", ErrCorruptData, path, err)
	}
	return task.Collection{Tasks: tasks}, nil
}

// Save writes the active collection, replacing the previous version.
func (s *Store) Save(c task.Collection) error {
	return s.writeFile(s.TasksPath(), c.Tasks)
}

// SaveArchive writes the archive collection, replacing the previous
// version.
func (s *Store) SaveArchive(c task.Collection) error {
	return s.writeFile(s.ArchivePath(), c.Tasks)
}

// writeFile marshals tasks and writes them atomically: the document is
// written to a temp file in the same directory and renamed into place,
// so a crash mid-write cannot leave a half-written file.
func (s *Store) writeFile(path string, tasks []task.Task) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// NextID returns the next task ID for the collection.
func (s *Store) NextID(c task.Collection) int {
	return c.NextID()
}

// AppendArchive merges the given tasks into the archive collection,
// preserving their IDs and timestamps.
func (s *Store) AppendArchive(tasks []task.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	archive, err := s.LoadArchive()
	if err != nil {
		return err
	}
	archive.Tasks = append(archive.Tasks, tasks...)
	return s.SaveArchive(archive)
}

// marker is the content of the .disabled flag file.
type marker struct {
	DisabledAt time.Time `json:"disabled_at"`
	Reason     string    `json:"reason"`
}

func (s *Store) markerPath() string {
	return filepath.Join(s.dir, markerFile)
}

// Disabled reports whether the disable marker is present.
func (s *Store) Disabled() bool {
	_, err := os.Stat(s.markerPath())
	return err == nil
}

// DisabledReason returns the reason recorded in the disable marker, or
// the empty string when none is readable.
func (s *Store) DisabledReason() string {
	data, err := os.ReadFile(s.markerPath())
	if err != nil {
		return ""
	}
	var m marker
	if err := json.Unmarshal(data, &m); err != nil {
		return ""
	}
	return m.Reason
}

// Disable creates the disable marker with an optional reason.
func (s *Store) Disable(reason string, now time.Time) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if reason == "" {
		reason = "manually disabled"
	}
	data, err := json.MarshalIndent(marker{DisabledAt: now, Reason: reason}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal marker: %w", err)
	}
	if err := os.WriteFile(s.markerPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write marker: %w", err)
	}
	return nil
}

// Enable removes the disable marker if present.
func (s *Store) Enable() error {
	if err := os.Remove(s.markerPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove marker: %w", err)
	}
	return nil
}

// Uninstall removes the entire data directory.
func (s *Store) Uninstall() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", s.dir, err)
	}
	return nil
}
