package materialize

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
)

func TestMaterialize_CreatesDirectoriesAndOverwrites(t *testing.T) {
	root := filepath.Join(t.TempDir(), "public")
	m := New(root)

	require.NoError(t, m.Materialize("vs/erase-bg/index.html", []byte("first")))
	require.NoError(t, m.Materialize("vs/erase-bg/index.html", []byte("second")))

	got, err := os.ReadFile(filepath.Join(root, "vs", "erase-bg", "index.html"))
	require.NoError(t, err)
	require.Equal(t, "second", string(got))

	entries, err := os.ReadDir(filepath.Join(root, "vs", "erase-bg"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestMaterialize_LeavesUntouchedPathsAlone(t *testing.T) {
	root := t.TempDir()
	stale := filepath.Join(root, "vs", "old", "index.html")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	require.NoError(t, New(root).Materialize("vs/new/index.html", []byte("new")))
	_, err := os.Stat(stale)
	require.NoError(t, err)
}

func TestMaterialize_RejectsEscapingPaths(t *testing.T) {
	m := New(t.TempDir())
	for _, rel := range []string{"", "../outside.html", "/etc/passwd", "vs/../../x"} {
		err := m.Materialize(rel, []byte("x"))
		require.Error(t, err, rel)
		require.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem), rel)
	}
}

func TestMaterialize_ReportsPathOnFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	root := t.TempDir()
	require.NoError(t, os.Chmod(root, 0o500))
	t.Cleanup(func() { _ = os.Chmod(root, 0o755) })

	err := New(root).Materialize("for/x/index.html", []byte("x"))
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))
	p, ok := ferrors.ContextString(err, "path")
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, "for", "x", "index.html"), p)
	c, _ := ferrors.AsClassified(err)
	require.NotNil(t, c.Cause())
}

func TestMaterialize_FileWhereDirectoryExpected(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "p"), []byte("blocker"), 0o644))
	err := New(root).Materialize("p/x/index.html", []byte("x"))
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))
}
