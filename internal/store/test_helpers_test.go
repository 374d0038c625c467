package store

import (
	"path/filepath"
	"testing"
)

// createTestStore creates a new store in a temporary directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun creates a run with one sample per value, all for the same
// expression.
func createTestRun(id, expression string, values ...string) Run {
	run := Run{
		ID:      id,
		Locale:  "en",
		Command: "generate " + expression,
	}
	for _, v := range values {
		run.Samples = append(run.Samples, Sample{Expression: expression, Value: v})
	}
	return run
}
