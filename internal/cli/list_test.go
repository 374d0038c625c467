package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fakery/internal/testutil"
)

func TestList_Golden(t *testing.T) {
	tests := []struct {
		name   string
		format string
	}{
		{"list_text", "text"},
		{"list_json", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, "--dict", testDict, "--format", tt.format, "list")
			require.NoError(t, err)
			testutil.AssertGolden(t, tt.name, []byte(stdout))
		})
	}
}

func TestList_SingleProvider(t *testing.T) {
	stdout, _, err := execute(t, "--dict", testDict, "list", "phonenumber")
	require.NoError(t, err)
	assert.Equal(t, "PhoneNumber\n  cellPhone\n  formats\n", stdout)
}

func TestList_UnknownProvider(t *testing.T) {
	stdout, _, err := execute(t, "--dict", testDict, "list", "Weather")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "Error ["+ErrCodeNotFound+"]")
}

// TestList_EmbeddedDictionary tests the providers published without --dict.
func TestList_EmbeddedDictionary(t *testing.T) {
	stdout, _, err := execute(t, "list")
	require.NoError(t, err)

	for _, p := range []string{"Address", "Company", "Internet", "Lorem", "Name", "PhoneNumber"} {
		assert.Contains(t, stdout, p+"\n")
	}
}
