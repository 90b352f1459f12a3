// Package testutil provides isolated environments for store and CLI
// tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnv provides access to isolated test directories
type TestEnv struct {
	Home    string // Mocked HOME directory
	DataDir string // Task data directory inside Home
	t       *testing.T
}

// SetupTestEnv creates an isolated test environment with mocked HOME
// and data directory. Uses t.TempDir() for automatic cleanup and
// t.Setenv() for automatic env restoration.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpHome := t.TempDir()
	dataDir := filepath.Join(tmpHome, ".tinytask")

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		t.Fatalf("Failed to create data dir: %v", err)
	}

	t.Setenv("HOME", tmpHome)
	t.Setenv("TINYTASK_DATA_DIR", dataDir)

	return &TestEnv{
		Home:    tmpHome,
		DataDir: dataDir,
		t:       t,
	}
}

// WriteTasksFile writes raw content to tasks.json in the data dir.
func (e *TestEnv) WriteTasksFile(content string) {
	e.t.Helper()
	e.WriteDataFile("tasks.json", content)
}

// WriteDataFile writes raw content to a file in the data dir.
func (e *TestEnv) WriteDataFile(name, content string) {
	e.t.Helper()
	path := filepath.Join(e.DataDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// ReadDataFile reads a file from the data dir.
func (e *TestEnv) ReadDataFile(name string) string {
	e.t.Helper()
	path := filepath.Join(e.DataDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		e.t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// DataFileExists checks whether a file exists in the data dir.
func (e *TestEnv) DataFileExists(name string) bool {
	e.t.Helper()
	_, err := os.Stat(filepath.Join(e.DataDir, name))
	return err == nil
}
