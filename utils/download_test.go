package utils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtils_ShouldDownloadFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "[canvas]\nwidth = 640\n")
	}))
	defer srv.Close()

	f, err := DownloadFile(srv.URL + "/layout.toml")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	defer f.Close()

	b, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "[canvas]\nwidth = 640\n", string(b))
}

func TestUtils_DownloadRejectsBinaryContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	}))
	defer srv.Close()

	f, err := DownloadFile(srv.URL)
	assert.Error(t, err)
	assert.Nil(t, f)
}

func TestUtils_DownloadFailsOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := DownloadFile(srv.URL)
	assert.ErrorContains(t, err, "404")
}
