package cli

import (
	"bytes"
	"testing"

	"github.com/roach88/fakery/internal/config"
	"github.com/roach88/fakery/internal/store"
	"github.com/roach88/fakery/internal/testutil"
)

const (
	testDict    = "testdata/dict"
	testCUEDict = "testdata/cuedict"
	testCyclic  = "testdata/cyclic"
)

// isolateEnv blanks every FAKERY_* variable; blank values count as unset.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvLocale,
		config.EnvDefaultLocale,
		config.EnvSeed,
		config.EnvDictionaryDir,
		config.EnvMaxDepth,
		config.EnvMaxPasses,
		config.EnvDB,
	} {
		t.Setenv(key, "")
	}
}

// execute runs the root command with args and returns its output streams.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	return executeWithIDs(t, testutil.NewFixedRunIDGenerator("run-1"), args...)
}

func executeWithIDs(t *testing.T, ids store.RunIDGenerator, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	isolateEnv(t)

	cmd := newRootCommand(&RootOptions{RunIDs: ids})
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}
