package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kolah/mcpforge/internal/codegen"
	"github.com/stretchr/testify/require"
)

func TestPrepareCopiesEmbeddedScaffold(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)
	require.Equal(t, "embedded scaffold", s.Origin())

	out := filepath.Join(t.TempDir(), "server")
	require.NoError(t, s.Prepare(out))

	for _, name := range []string{"package.json", "tsconfig.json", ".env.example", ".gitignore", "README.md"} {
		require.FileExists(t, filepath.Join(out, name))
	}

	env, err := os.ReadFile(filepath.Join(out, ".env.example"))
	require.NoError(t, err)
	require.Contains(t, string(env), "BACKEND_URL")
}

func TestPrepareCopiesCustomScaffold(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "nested", "file.txt"), []byte("kept"), 0o644))

	s, err := New(src)
	require.NoError(t, err)
	require.Equal(t, src, s.Origin())

	out := filepath.Join(t.TempDir(), "server")
	require.NoError(t, s.Prepare(out))

	data, err := os.ReadFile(filepath.Join(out, "nested", "file.txt"))
	require.NoError(t, err)
	require.Equal(t, "kept", string(data))
}

func TestNewMissingScaffold(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent"))
	require.ErrorIs(t, err, ErrTemplatesNotFound)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = New(file)
	require.ErrorIs(t, err, ErrTemplatesNotFound)
}

func TestPrepareRefusesExistingOutput(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)

	out := t.TempDir()
	marker := filepath.Join(out, "keep.txt")
	require.NoError(t, os.WriteFile(marker, []byte("untouched"), 0o644))

	err = s.Prepare(out)
	require.ErrorIs(t, err, ErrOutputExists)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestPrepareCreateFailure(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err = s.Prepare(filepath.Join(blocker, "server"))
	require.ErrorIs(t, err, ErrOutputCreate)
}

func TestWrite(t *testing.T) {
	out := t.TempDir()

	written, err := Write(out, []codegen.Output{{Filename: "src/index.ts", Content: "export {};\n"}})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(out, "src", "index.ts")}, written)

	data, err := os.ReadFile(written[0])
	require.NoError(t, err)
	require.Equal(t, "export {};\n", string(data))
}

func TestWriteFailure(t *testing.T) {
	out := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(out, "src", "index.ts"), 0o755))

	_, err := Write(out, []codegen.Output{{Filename: "src/index.ts", Content: "x"}})
	require.ErrorIs(t, err, ErrWrite)
}
