package build_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"moodbank/core/build"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func project(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "index.html"), "<html></html>")
	writeFile(t, filepath.Join(root, "src", "main.js"), "console.log(1)")
	writeFile(t, filepath.Join(root, "src", "styles", "app.css"), "body{}")
	writeFile(t, filepath.Join(root, ".env"), "SECRET=1")
	writeFile(t, filepath.Join(root, ".git", "HEAD"), "ref")
	writeFile(t, filepath.Join(root, "node_modules", "dep", "index.js"), "module.exports={}")
	writeFile(t, filepath.Join(root, "moodbank.yaml"), "root: .")
	return root
}

func snapshot(t *testing.T, dir string) map[string]struct{} {
	t.Helper()
	files := map[string]struct{}{}
	require.NoError(t, filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files[path] = struct{}{}
		}
		return nil
	}))
	return files
}

func TestBuild_CopiesSources(t *testing.T) {
	root := project(t)
	b, err := build.NewBuilder(root, build.Config{OutDir: "dist", EmptyOutDir: true}, nil)
	require.NoError(t, err)

	m, err := b.Build(context.Background())
	require.NoError(t, err)

	paths := make([]string, 0, len(m.Files))
	for _, f := range m.Files {
		paths = append(paths, f.Path)
	}
	assert.ElementsMatch(t, []string{"index.html", "src/main.js", "src/styles/app.css"}, paths)

	out, err := os.ReadFile(filepath.Join(root, "dist", "src", "main.js"))
	require.NoError(t, err)
	assert.Equal(t, "console.log(1)", string(out))

	sum := sha256.Sum256([]byte("console.log(1)"))
	for _, f := range m.Files {
		if f.Path == "src/main.js" {
			assert.Equal(t, hex.EncodeToString(sum[:]), f.SHA256)
			assert.Equal(t, int64(14), f.Size)
		}
	}
	assert.Equal(t, int64(13+14+6), m.TotalSize())

	read, err := build.ReadManifest(b.OutDir())
	require.NoError(t, err)
	assert.Equal(t, m.Files, read.Files)
}

func TestBuild_SkipsDatabaseFiles(t *testing.T) {
	root := project(t)
	writeFile(t, filepath.Join(root, "moodbank.db"), "SQLite format 3")
	writeFile(t, filepath.Join(root, "moodbank.db-wal"), "wal")
	writeFile(t, filepath.Join(root, "moodbank.db-journal"), "journal")
	writeFile(t, filepath.Join(root, "data", "visits.sqlite3"), "SQLite format 3")
	writeFile(t, filepath.Join(root, "private", "store.bin"), "rows")

	b, err := build.NewBuilder(root, build.Config{
		OutDir:      "dist",
		EmptyOutDir: true,
		Exclude:     []string{filepath.Join(root, "private", "store.bin")},
	}, nil)
	require.NoError(t, err)

	m, err := b.Build(context.Background())
	require.NoError(t, err)

	paths := make([]string, 0, len(m.Files))
	for _, f := range m.Files {
		paths = append(paths, f.Path)
	}
	assert.ElementsMatch(t, []string{"index.html", "src/main.js", "src/styles/app.css"}, paths)
	assert.NoFileExists(t, filepath.Join(root, "dist", "moodbank.db"))
	assert.NoFileExists(t, filepath.Join(root, "dist", "private", "store.bin"))
}

func TestBuild_WritesOnlyUnderOutDir(t *testing.T) {
	root := project(t)
	before := snapshot(t, root)

	b, err := build.NewBuilder(root, build.Config{OutDir: "dist", EmptyOutDir: true}, nil)
	require.NoError(t, err)
	_, err = b.Build(context.Background())
	require.NoError(t, err)

	outDir := filepath.Join(root, "dist")
	for path := range snapshot(t, root) {
		if _, existed := before[path]; existed {
			continue
		}
		rel, err := filepath.Rel(outDir, path)
		require.NoError(t, err)
		assert.NotContains(t, rel, "..", "unexpected file %s", path)
	}
}

func TestBuild_IsRepeatable(t *testing.T) {
	root := project(t)
	b, err := build.NewBuilder(root, build.Config{OutDir: "dist", EmptyOutDir: true}, nil)
	require.NoError(t, err)

	first, err := b.Build(context.Background())
	require.NoError(t, err)

	// A previous build output must not be copied into itself.
	second, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.Files, second.Files)
}

func TestBuild_EmptyOutDir(t *testing.T) {
	root := project(t)
	stale := filepath.Join(root, "dist", "stale.js")
	writeFile(t, stale, "old")

	b, err := build.NewBuilder(root, build.Config{OutDir: "dist", EmptyOutDir: true}, nil)
	require.NoError(t, err)
	_, err = b.Build(context.Background())
	require.NoError(t, err)
	assert.NoFileExists(t, stale)

	writeFile(t, stale, "old")
	b, err = build.NewBuilder(root, build.Config{OutDir: "dist", EmptyOutDir: false}, nil)
	require.NoError(t, err)
	_, err = b.Build(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, stale)
}

func TestBuild_AbsoluteOutDir(t *testing.T) {
	root := project(t)
	out := filepath.Join(t.TempDir(), "public")

	b, err := build.NewBuilder(root, build.Config{OutDir: out, EmptyOutDir: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, out, b.OutDir())

	_, err = b.Build(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "index.html"))
	assert.FileExists(t, filepath.Join(out, build.ManifestName))
}

func TestBuild_Cancelled(t *testing.T) {
	b, err := build.NewBuilder(project(t), build.Config{OutDir: "dist"}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = b.Build(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewBuilder_Invalid(t *testing.T) {
	root := project(t)

	tests := []struct {
		name   string
		root   string
		outDir string
	}{
		{"EmptyRoot", "", "dist"},
		{"EmptyOutDir", root, ""},
		{"OutDirIsRoot", root, "."},
		{"OutDirContainsRoot", root, ".."},
		{"FilesystemRoot", root, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := build.NewBuilder(tt.root, build.Config{OutDir: tt.outDir}, nil)
			assert.Error(t, err)
		})
	}
}

func TestBuild_MissingRoot(t *testing.T) {
	b, err := build.NewBuilder(filepath.Join(t.TempDir(), "missing"), build.Config{OutDir: "dist"}, nil)
	require.NoError(t, err)

	_, err = b.Build(context.Background())
	assert.Error(t, err)
}
