package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/templui/healthjournal/internal/config"
)

// fakeS3 answers the handful of S3 calls the asset host makes.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	deny    bool
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deny && r.Method == http.MethodPut {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>denied</Message></Error>`)
		return
	}

	switch r.Method {
	case http.MethodHead:
		w.WriteHeader(http.StatusOK)
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[r.URL.Path] = body
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		delete(f.objects, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestStorage(t *testing.T, fake *fakeS3) *S3Storage {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	s, err := NewS3Storage(context.Background(), S3Config{
		Region:    "us-east-1",
		Bucket:    "journal",
		AccessKey: "test",
		SecretKey: "test",
		Endpoint:  server.URL,
	})
	require.NoError(t, err)
	return s
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.png")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestUploadRemovesLocalFileOnSuccess(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	s := newTestStorage(t, fake)
	path := writeTemp(t, "image-bytes")

	url, err := s.Upload(context.Background(), path, "users/u1/a.png")
	require.NoError(t, err)
	assert.Contains(t, url, "users/u1/a.png")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Contains(t, fake.objects, "/journal/users/u1/a.png")
}

func TestUploadRemovesLocalFileOnFailure(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}, deny: true}
	s := newTestStorage(t, fake)
	path := writeTemp(t, "image-bytes")

	_, err := s.Upload(context.Background(), path, "users/u1/a.png")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to upload to S3"))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDelete(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{"/journal/users/u1/a.png": []byte("x")}}
	s := newTestStorage(t, fake)

	require.NoError(t, s.Delete(context.Background(), "users/u1/a.png"))

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Empty(t, fake.objects)
}

func TestNewDisabledWithoutBucket(t *testing.T) {
	host, err := New(context.Background(), &cfg.Config{})
	require.NoError(t, err)
	assert.Nil(t, host)
}
