// Package testutils carries shared test scaffolding.
package testutils

import (
	"path/filepath"
	"testing"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/stretchr/testify/require"
)

// SetupLayoutRepo creates a temporary directory and initializes a Loam
// repository in it for layout documents. It fails the test immediately on
// error.
func SetupLayoutRepo(t *testing.T, opts ...loam.Option) (string, core.Repository) {
	t.Helper()

	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "failed to resolve temp dir")

	repo, err := loam.Init(absPath, opts...)
	require.NoError(t, err, "failed to init loam repo")

	return absPath, repo
}
