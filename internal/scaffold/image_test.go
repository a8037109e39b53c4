package scaffold_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw/recipekit/internal/scaffold"
)

func TestCopyImage(t *testing.T) {
	t.Run("copies into nested destination", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "hero.jpg")
		require.NoError(t, os.WriteFile(src, []byte("jpegdata"), 0o644))

		dest := filepath.Join(dir, "assets", "images", "soup.jpg")
		require.NoError(t, scaffold.CopyImage(src, dest))

		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, "jpegdata", string(data))
	})

	t.Run("missing source", func(t *testing.T) {
		dir := t.TempDir()
		err := scaffold.CopyImage(filepath.Join(dir, "absent.jpg"), filepath.Join(dir, "out.jpg"))
		assert.Error(t, err)
	})
}

func TestDownloadImage(t *testing.T) {
	t.Run("saves response body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("imagebytes"))
		}))
		defer srv.Close()

		dest := filepath.Join(t.TempDir(), "assets", "soup.jpg")
		require.NoError(t, scaffold.DownloadImage(context.Background(), srv.URL, dest))

		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, "imagebytes", string(data))
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		dest := filepath.Join(t.TempDir(), "soup.jpg")
		err := scaffold.DownloadImage(context.Background(), srv.URL, dest)
		assert.Error(t, err)

		_, statErr := os.Stat(dest)
		assert.True(t, os.IsNotExist(statErr))
	})
}
