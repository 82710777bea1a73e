package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/healthjournal/internal/apperr"
	"github.com/templui/healthjournal/internal/ctxkeys"
	"github.com/templui/healthjournal/internal/model"
	"github.com/templui/healthjournal/internal/service"
)

func TestParseCompleted(t *testing.T) {
	tests := []struct {
		raw  string
		want *bool
		err  bool
	}{
		{raw: "", want: nil},
		{raw: "true", want: boolPtr(true)},
		{raw: "TRUE", want: boolPtr(true)},
		{raw: " false ", want: boolPtr(false)},
		{raw: "1", err: true},
		{raw: "yes", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseCompleted(tt.raw)
			if tt.err {
				var appErr *apperr.Error
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, apperr.ValidationFailed, appErr.Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Walk"}`))
	require.NoError(t, decodeJSON(rec, req, &dst))
	assert.Equal(t, "Walk", dst.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, decodeJSON(rec, req, &dst), ErrInvalidBody)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	err := decodeJSON(rec, req, &dst)
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.ValidationFailed, appErr.Kind)
}

func TestListMessage(t *testing.T) {
	assert.Equal(t, "none", listMessage(0, "some", "none"))
	assert.Equal(t, "some", listMessage(2, "some", "none"))
}

type fakeHost struct {
	uploaded []string
}

func (f *fakeHost) Upload(ctx context.Context, localPath, key string) (string, error) {
	defer func() { _ = os.Remove(localPath) }()
	f.uploaded = append(f.uploaded, key)
	return "https://assets.test/" + key, nil
}

func (f *fakeHost) Delete(ctx context.Context, key string) error {
	return nil
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func uploadRequest(t *testing.T, field, name string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req.WithContext(ctxkeys.WithIdentity(req.Context(), model.Identity{UserID: "alice"}))
}

func TestAssetUpload(t *testing.T) {
	host := &fakeHost{}
	h := NewAssetHandler(service.NewAssetService(host, 1<<20), 1<<20)

	rec := httptest.NewRecorder()
	h.Upload(rec, uploadRequest(t, "file", "rash.png", pngHeader))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body struct {
		Message string      `json:"message"`
		Data    model.Asset `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "File uploaded successfully.", body.Message)
	assert.True(t, strings.HasPrefix(body.Data.Key, "users/alice/"))
	assert.Equal(t, []string{body.Data.Key}, host.uploaded)
}

func TestAssetUploadMissingFile(t *testing.T) {
	host := &fakeHost{}
	h := NewAssetHandler(service.NewAssetService(host, 1<<20), 1<<20)

	rec := httptest.NewRecorder()
	h.Upload(rec, uploadRequest(t, "other", "rash.png", pngHeader))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "File is required.")
	assert.Empty(t, host.uploaded)
}

func TestAssetUploadRejectsNonImage(t *testing.T) {
	host := &fakeHost{}
	h := NewAssetHandler(service.NewAssetService(host, 1<<20), 1<<20)

	rec := httptest.NewRecorder()
	h.Upload(rec, uploadRequest(t, "file", "notes.png", []byte("plain text, not an image")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, host.uploaded)
}

func boolPtr(v bool) *bool {
	return &v
}
