package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fakery/internal/store"
	"github.com/roach88/fakery/internal/testutil"
)

// recordRuns generates two runs into a fresh database and returns its path.
func recordRuns(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	ids := testutil.NewSequentialRunIDGenerator("run")

	_, _, err := executeWithIDs(t, ids, "--dict", testDict, "--seed", "3",
		"generate", "Name.firstName", "--count", "2", "--db", dbPath)
	require.NoError(t, err)
	_, _, err = executeWithIDs(t, ids, "--dict", testDict, "--locale", "en-GB",
		"generate", "Name.firstName", "Name.lastName", "--db", dbPath)
	require.NoError(t, err)
	return dbPath
}

func TestHistory_ListRuns(t *testing.T) {
	dbPath := recordRuns(t)

	stdout, _, err := execute(t, "history", "--db", dbPath)
	require.NoError(t, err)
	assert.Regexp(t, `SEQ\s+ID\s+LOCALE\s+SEED\s+SAMPLES\s+COMMAND`, stdout)
	assert.Regexp(t, `1\s+run-1\s+en\s+3\s+2\s+generate Name.firstName\n`, stdout)
	assert.Regexp(t, `2\s+run-2\s+en-GB\s+-\s+2\s+generate Name.firstName Name.lastName\n`, stdout)
}

func TestHistory_ListRunsJSON(t *testing.T) {
	dbPath := recordRuns(t)

	stdout, _, err := execute(t, "--format", "json", "history", "--db", dbPath)
	require.NoError(t, err)

	var resp struct {
		Data []store.Run `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "run-1", resp.Data[0].ID)
	assert.Equal(t, "run-2", resp.Data[1].ID)
	assert.Nil(t, resp.Data[1].Seed)
}

func TestHistory_ShowRun(t *testing.T) {
	dbPath := recordRuns(t)

	stdout, _, err := execute(t, "history", "--db", dbPath, "run-2")
	require.NoError(t, err)
	assert.Equal(t,
		"Run run-2 (#2)\n"+
			"  locale:  en-GB\n"+
			"  seed:    -\n"+
			"  command: generate Name.firstName Name.lastName\n"+
			"  [0] Name.firstName = Charles\n"+
			"  [1] Name.lastName = Lovelace\n",
		stdout)
}

func TestHistory_Expression(t *testing.T) {
	dbPath := recordRuns(t)

	stdout, _, err := execute(t, "--format", "json", "history", "--db", dbPath, "-e", "Name.firstName")
	require.NoError(t, err)

	var resp struct {
		Data []store.Sample `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))

	var values []string
	for _, s := range resp.Data {
		values = append(values, s.RunID+":"+s.Value)
	}
	assert.Equal(t, []string{"run-1:Ada", "run-1:Ada", "run-2:Charles"}, values)
}

func TestHistory_Errors(t *testing.T) {
	dbPath := recordRuns(t)

	tests := []struct {
		name     string
		args     []string
		wantCode string
		wantExit int
	}{
		{"unknown run", []string{"history", "--db", dbPath, "run-9"}, ErrCodeNotFound, ExitFailure},
		{"no database", []string{"history"}, ErrCodeInvalidArgument, ExitCommandError},
		{"run and expression", []string{"history", "--db", dbPath, "run-1", "-e", "Name.firstName"}, ErrCodeInvalidArgument, ExitCommandError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantExit, GetExitCode(err))
			assert.Contains(t, stdout, "Error ["+tt.wantCode+"]")
		})
	}
}

func TestHistory_NonExistentDatabaseDirectory(t *testing.T) {
	_, _, err := execute(t, "history", "--db", "/nonexistent/path/test.db")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to open database")
}
