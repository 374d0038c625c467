package cli

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fakery/internal/store"
)

func TestGenerate_CapabilitySpellings(t *testing.T) {
	for _, ref := range []string{"Name.firstName", "Name.first_name", "name.firstName"} {
		t.Run(ref, func(t *testing.T) {
			stdout, _, err := execute(t, "--dict", testDict, "generate", ref)
			require.NoError(t, err)
			assert.Equal(t, "Ada\n", stdout)
		})
	}
}

func TestGenerate_ReplacesWildcards(t *testing.T) {
	stdout, _, err := execute(t, "--dict", testDict, "generate", "PhoneNumber.cellPhone")
	require.NoError(t, err)
	assert.Regexp(t, `^555-\d{4}\n$`, stdout)
}

func TestGenerate_MultipleReferences(t *testing.T) {
	stdout, _, err := execute(t, "--dict", testDict, "generate", "Name.lastName", "Address.streetName", "--count", "2")
	require.NoError(t, err)
	assert.Equal(t,
		"Name.lastName: Lovelace\n"+
			"Name.lastName: Lovelace\n"+
			"Address.streetName: Lovelace Lane\n"+
			"Address.streetName: Lovelace Lane\n",
		stdout)
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		wantCode string
		wantExit int
	}{
		{"missing capability", "Name", ErrCodeInvalidArgument, ExitCommandError},
		{"empty provider", ".firstName", ErrCodeInvalidArgument, ExitCommandError},
		{"unknown provider", "Weather.forecast", ErrCodeNotFound, ExitFailure},
		{"unknown capability", "Name.middleName", ErrCodeNotFound, ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, "--dict", testDict, "generate", tt.ref)
			require.Error(t, err)
			assert.Equal(t, tt.wantExit, GetExitCode(err))
			assert.Contains(t, stdout, "Error ["+tt.wantCode+"]")
		})
	}
}

func TestGenerate_RecordsRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fakery.db")

	stdout, _, err := execute(t,
		"--dict", testDict, "--seed", "7", "--format", "json",
		"generate", "Name.firstName", "PhoneNumber.formats", "--db", dbPath)
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   GenerateResult `json:"data"`
		RunID  string         `json:"run_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "run-1", resp.RunID)
	assert.Equal(t, "en", resp.Data.Locale)
	require.NotNil(t, resp.Data.Seed)
	assert.Equal(t, uint64(7), *resp.Data.Seed)
	require.Len(t, resp.Data.Samples, 2)
	assert.Equal(t, "run-1", resp.Data.Samples[0].RunID)

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	run, err := st.ReadRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "generate Name.firstName PhoneNumber.formats", run.Command)
	assert.Equal(t, resp.Data.Samples, run.Samples)
	require.NotNil(t, run.Seed)
	assert.Equal(t, uint64(7), *run.Seed)
}

func TestGenerate_WithoutDatabaseRecordsNothing(t *testing.T) {
	stdout, _, err := execute(t, "--dict", testDict, "--format", "json", "generate", "Name.firstName")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Empty(t, resp.RunID)
}

func TestGenerate_DatabaseFromEnvironment(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "env.db")
	isolateEnv(t)

	cmd := newRootCommand(&RootOptions{})
	cmd.SetArgs([]string{"--dict", testDict, "generate", "Name.firstName"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	t.Setenv("FAKERY_DB", dbPath)

	require.NoError(t, cmd.Execute())

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	runs, err := st.ListRuns(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 1)
	// No generator was configured, so the ID is a UUIDv7.
	assert.Len(t, runs[0].ID, 36)
	assert.Equal(t, 1, runs[0].Count)
}
