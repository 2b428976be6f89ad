package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeScripts(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("SELECT 1;\n"), 0644))
	}
	return root
}

func relPaths(scripts []Script) []string {
	out := make([]string, len(scripts))
	for i, s := range scripts {
		out[i] = filepath.ToSlash(s.RelativePath)
	}
	return out
}

func TestResolveLiteralPaths(t *testing.T) {
	root := writeScripts(t, "a.sql", "b.sql")

	scripts, err := Resolve(root, []string{"b.sql", "a.sql"})
	require.NoError(t, err)
	// Declaration order, not alphabetical.
	require.Equal(t, []string{"b.sql", "a.sql"}, relPaths(scripts))
}

func TestResolveGlobSorted(t *testing.T) {
	root := writeScripts(t, "schema/02_orders.sql", "schema/01_customers.sql", "schema/10_views.sql")

	scripts, err := Resolve(root, []string{"schema/*.sql"})
	require.NoError(t, err)
	require.Equal(t, []string{
		"schema/01_customers.sql",
		"schema/02_orders.sql",
		"schema/10_views.sql",
	}, relPaths(scripts))
}

func TestResolveDeduplicates(t *testing.T) {
	root := writeScripts(t, "schema/01_a.sql", "schema/02_b.sql")

	scripts, err := Resolve(root, []string{"schema/02_b.sql", "schema/*.sql"})
	require.NoError(t, err)
	// The explicit entry wins the position; the glob does not re-add it.
	require.Equal(t, []string{"schema/02_b.sql", "schema/01_a.sql"}, relPaths(scripts))
}

func TestResolveMissingLiteral(t *testing.T) {
	root := writeScripts(t, "a.sql")
	_, err := Resolve(root, []string{"missing.sql"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "script not found")
}

func TestResolveEmptyGlob(t *testing.T) {
	root := writeScripts(t, "a.sql")
	_, err := Resolve(root, []string{"nothing/*.sql"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "matches no files")
}

func TestResolveDirectory(t *testing.T) {
	root := writeScripts(t, "schema/01_a.sql")
	_, err := Resolve(root, []string{"schema"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "is a directory")
}
