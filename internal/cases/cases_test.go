package cases

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "cases.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "1.0", f.Version)
	assert.Len(t, f.Cases, 12)
	assert.Equal(t, "add", f.Cases[0].Op)
	assert.Equal(t, int32(5), f.Cases[0].Want)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cases: [not, {a: map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cases:\n  - a: 1\n    b: 2\n    want: 3\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "op is required")
}

func TestRunAllBundledCases(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "cases.yaml"))
	require.NoError(t, err)

	for _, c := range f.Cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.NoError(t, Run(c))
		})
	}
}

func TestRunMismatch(t *testing.T) {
	err := Run(Case{Op: "add", A: 2, B: 2, Want: 5})
	assert.ErrorContains(t, err, "add(2, 2) = 4, want 5")
}

func TestRunUnknownOp(t *testing.T) {
	err := Run(Case{Op: "divide", A: 4, B: 2})
	assert.ErrorContains(t, err, "unknown op")
}
