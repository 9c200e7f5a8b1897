//go:build integration

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-datesort/pkg/outline"
	"github.com/mattsolo1/grove-datesort/pkg/tree"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	if svc != nil {
		svc.Close()
		svc = nil
	}
	return out.String(), err
}

func TestIntegration(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") == "" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=1 to run.")
	}

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("dark_mode: true\n"), 0644))

	outlinePath := filepath.Join(tmpDir, "reading.yaml")
	require.NoError(t, os.WriteFile(outlinePath, []byte(`title: Reading
bookmarks:
  - name: Report 2021-03-01
  - name: Notes
    children:
      - name: 2020-07-15 Summary
`), 0644))

	global := []string{"--config", configPath, "--data-dir", filepath.Join(tmpDir, "data")}
	cli := func(args ...string) (string, error) {
		return run(t, append(append([]string{}, global...), args...)...)
	}

	t.Run("Import", func(t *testing.T) {
		out, err := cli("import", outlinePath, "--name", "reading")
		require.NoError(t, err)
		assert.Contains(t, out, "Imported reading (3 bookmarks)")
	})

	t.Run("Sort", func(t *testing.T) {
		out, err := cli("sort", "reading")
		require.NoError(t, err)
		assert.Contains(t, out, "Sorted 2 dated bookmarks")
	})

	t.Run("SortTwice", func(t *testing.T) {
		_, err := cli("sort", "reading")
		assert.Error(t, err)
	})

	t.Run("ShowAndGoto", func(t *testing.T) {
		out, err := cli("show", "reading", "--all", "--plain", "--actions")
		require.NoError(t, err)
		assert.Contains(t, out, "▾ Sorted by Date")

		ref := string(tree.EncodeRef(tree.Path{1, 1, 0}))
		assert.Contains(t, out, ref)

		out, err = cli("goto", "reading", ref)
		require.NoError(t, err)
		assert.Equal(t, "/1/1/0\t2020-07-15 Summary", strings.TrimSpace(out))
	})

	t.Run("Export", func(t *testing.T) {
		exported := filepath.Join(tmpDir, "sorted.yaml")
		_, err := cli("export", "reading", exported)
		require.NoError(t, err)

		doc, err := outline.ReadFile(exported)
		require.NoError(t, err)
		root, err := doc.ToTree()
		require.NoError(t, err)
		assert.Equal(t, tree.ColorGreen, root.Children[0].Color)
	})

	t.Run("List", func(t *testing.T) {
		out, err := cli("list")
		require.NoError(t, err)
		assert.Contains(t, out, "reading")
		assert.Contains(t, out, "yes")
	})
}
