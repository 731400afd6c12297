package test

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), uuid.New().String())
}

// LoadTestFile reads a file and wraps it into a multipart form with the
// field name "file".
//
// The form is returned as a buffer together with the headers for the request.
func LoadTestFile(t *testing.T, path string) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	w, err := mw.CreateFormFile("file", filepath.Base(path))
	require.NoError(t, err)

	_, err = io.Copy(w, file)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
