package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedErrors "maintdesk/internal/shared/errors"
)

func TestAttachmentStore_Save(t *testing.T) {
	root := t.TempDir()
	store, err := NewAttachmentStore(root)
	require.NoError(t, err)

	t.Run("writes file under ticket directory", func(t *testing.T) {
		stored, err := store.Save(42, "report.pdf", strings.NewReader("pdf-bytes"))
		require.NoError(t, err)

		assert.Equal(t, "report.pdf", stored.DisplayName)
		assert.Equal(t, int64(len("pdf-bytes")), stored.Size)
		assert.Equal(t, filepath.Join(root, "maintenance", "42"), filepath.Dir(stored.Path))
		assert.True(t, strings.HasSuffix(stored.Path, "_report.pdf"))

		data, err := os.ReadFile(stored.Path)
		require.NoError(t, err)
		assert.Equal(t, "pdf-bytes", string(data))
	})

	t.Run("stored names do not collide for equal filenames", func(t *testing.T) {
		first, err := store.Save(7, "점검결과.zip", strings.NewReader("one"))
		require.NoError(t, err)
		second, err := store.Save(7, "점검결과.zip", strings.NewReader("two"))
		require.NoError(t, err)

		assert.NotEqual(t, first.Path, second.Path)
		assert.Equal(t, first.DisplayName, second.DisplayName)
	})

	t.Run("strips path separators from display name", func(t *testing.T) {
		stored, err := store.Save(7, "../../../etc/passwd", strings.NewReader("x"))
		require.NoError(t, err)

		assert.NotContains(t, stored.DisplayName, "/")
		assert.Equal(t, filepath.Join(root, "maintenance", "7"), filepath.Dir(stored.Path))
	})
}

func TestAttachmentStore_Resolve(t *testing.T) {
	root := t.TempDir()
	store, err := NewAttachmentStore(root)
	require.NoError(t, err)

	t.Run("accepts a saved path", func(t *testing.T) {
		stored, err := store.Save(1, "photo.jpg", strings.NewReader("jpg"))
		require.NoError(t, err)

		path, err := store.Resolve(stored.Path)
		require.NoError(t, err)
		assert.Equal(t, stored.Path, path)
	})

	t.Run("rejects existing file outside the root", func(t *testing.T) {
		outside := filepath.Join(t.TempDir(), "secret.txt")
		require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o644))

		_, err := store.Resolve(outside)
		assert.True(t, sharedErrors.IsNotFoundError(err))
	})

	t.Run("rejects traversal out of the root", func(t *testing.T) {
		_, err := store.Resolve(filepath.Join(root, "..", "other", "file.txt"))
		assert.True(t, sharedErrors.IsNotFoundError(err))
	})

	t.Run("rejects the root itself", func(t *testing.T) {
		_, err := store.Resolve(root)
		assert.True(t, sharedErrors.IsNotFoundError(err))
	})

	t.Run("rejects missing file inside the root", func(t *testing.T) {
		_, err := store.Resolve(filepath.Join(root, "maintenance", "1", "gone.pdf"))
		assert.True(t, sharedErrors.IsNotFoundError(err))
	})

	t.Run("rejects directories", func(t *testing.T) {
		dir := filepath.Join(root, "maintenance")
		require.NoError(t, os.MkdirAll(dir, 0o755))

		_, err := store.Resolve(dir)
		assert.True(t, sharedErrors.IsNotFoundError(err))
	})
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "report.pdf", "report.pdf"},
		{"forward slashes", "a/b/c.pdf", "a_b_c.pdf"},
		{"backslashes", `a\b\c.pdf`, "a_b_c.pdf"},
		{"traversal", "../../etc/passwd", ".._.._etc_passwd"},
		{"whitespace", "  spaced.zip  ", "spaced.zip"},
		{"empty", "   ", "file"},
		{"korean", "점검결과.zip", "점검결과.zip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}
