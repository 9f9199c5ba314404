package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/person-search/internal/infrastructure/config"
)

func TestWithDeps_FreshDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range []string{"PERSONSEARCH_STORE_DRIVER", "PERSONSEARCH_SQLITE_PATH", "OPENAI_API_KEY"} {
		t.Setenv(key, "")
	}

	called := false
	err := withDeps(t.Context(), func(d *Deps) error {
		called = true
		result, err := d.SearchHandler.HandleSearch(t.Context(), nil)
		require.NoError(t, err)
		assert.Empty(t, result.Persons)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.FileExists(t, filepath.Join(dir, config.DefaultConfigDir, config.DefaultDatabaseFile))
}
