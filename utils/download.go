package utils

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// DownloadFile downloads a text resource (e.g. a layout configuration)
// from the internet and saves it into a temporary file.
// The caller is responsible for removing the file.
func DownloadFile(uri string) (*os.File, error) {
	res, err := http.Get(uri)
	if err != nil {
		return nil, fmt.Errorf("unable to download file from URI: %s: %w", uri, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to download file from URI: %s, status %v", uri, res.Status)
	}

	tmpfile, err := os.CreateTemp("", "figures-*.toml")
	if err != nil {
		return nil, fmt.Errorf("unable to create temporary file: %w", err)
	}

	// Copy the response body into the temporary file.
	if _, err = io.Copy(tmpfile, res.Body); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, fmt.Errorf("unable to copy the source URI into the destination file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, err
	}

	ctype, err := DetectContentType(tmpfile.Name())
	if err != nil {
		os.Remove(tmpfile.Name())
		return nil, err
	}
	if !strings.HasPrefix(ctype, "text/") {
		os.Remove(tmpfile.Name())
		return nil, fmt.Errorf("the downloaded file is not a text file: %s", ctype)
	}

	return os.Open(tmpfile.Name())
}

// IsValidUrl tests a string to determine if it is a well-structured url or not.
func IsValidUrl(uri string) bool {
	_, err := url.ParseRequestURI(uri)
	if err != nil {
		return false
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return true
}
