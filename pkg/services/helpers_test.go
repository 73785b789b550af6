package services

import (
	"os"
	"path/filepath"
	"testing"

	"jekyll-cms/pkg/config"

	"github.com/stretchr/testify/require"
)

// setupTestRepo points the package at a throwaway blog repo for the
// duration of one test.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	orig := config.RepoPath
	dir := t.TempDir()
	config.RepoPath = dir
	InvalidateCache()
	t.Cleanup(func() {
		config.RepoPath = orig
		InvalidateCache()
	})
	return dir
}

func writeRepoFile(t *testing.T, repo, relPath, content string) {
	t.Helper()
	fullPath := filepath.Join(repo, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
	require.NoError(t, os.WriteFile(fullPath, []byte(content), 0644))
}
