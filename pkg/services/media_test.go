package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func TestSaveAndListMediaFiles(t *testing.T) {
	repo := setupTestRepo(t)

	header := multipartFileHeader(t, "my picture.png", []byte("png-bytes"))
	info, err := SaveMediaFile(header)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(info.Name, "my_picture_"))
	assert.True(t, strings.HasPrefix(info.Path, "/images/"))
	assert.Equal(t, int64(len("png-bytes")), info.Size)

	saved, err := os.ReadFile(filepath.Join(repo, "images", info.Name))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(saved))

	files, err := ListMediaFiles()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, info.Name, files[0].Name)
}

func TestDeleteMediaFile(t *testing.T) {
	repo := setupTestRepo(t)
	writeRepoFile(t, repo, "images/gone.png", "x")

	require.NoError(t, DeleteMediaFile("gone.png"))
	_, err := os.Stat(filepath.Join(repo, "images", "gone.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteMediaFileStripsPath(t *testing.T) {
	setupTestRepo(t)
	// Base name only; a traversal attempt just misses.
	err := DeleteMediaFile("../../etc/passwd")
	assert.Error(t, err)
}
