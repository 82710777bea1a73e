package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/templui/healthjournal/internal/apperr"
	"github.com/templui/healthjournal/internal/model"
	"github.com/templui/healthjournal/internal/storage"
	"github.com/templui/healthjournal/internal/validation"
)

var (
	ErrAssetNotFound = apperr.NotFoundf("Asset not found.")
)

// AssetService uploads images to the asset host under a per-owner prefix.
type AssetService struct {
	host     storage.AssetHost
	maxBytes int64
}

func NewAssetService(host storage.AssetHost, maxBytes int64) *AssetService {
	return &AssetService{
		host:     host,
		maxBytes: maxBytes,
	}
}

// Upload validates the image, spools it to a temp file and hands it to the
// asset host, which removes the temp file afterwards.
func (s *AssetService) Upload(ctx context.Context, userID string, header *multipart.FileHeader) (*model.Asset, error) {
	if err := requireOwner(userID); err != nil {
		return nil, err
	}

	if err := validation.ValidateFile(header, validation.ImageConstraints(s.maxBytes)); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	localPath, err := spool(header, ext)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to store upload", err)
	}

	key := ownerPrefix(userID) + uuid.New().String() + ext
	url, err := s.host.Upload(ctx, localPath, key)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to upload asset", err)
	}

	return &model.Asset{Key: key, URL: url}, nil
}

// Delete removes one of userID's assets. Keys outside the caller's prefix
// are reported as not found.
func (s *AssetService) Delete(ctx context.Context, userID, key string) error {
	if err := requireOwner(userID); err != nil {
		return err
	}

	if !strings.HasPrefix(key, ownerPrefix(userID)) || strings.Contains(key, "..") {
		return ErrAssetNotFound
	}

	if err := s.host.Delete(ctx, key); err != nil {
		return apperr.Wrap(apperr.Internal, "failed to delete asset", err)
	}

	return nil
}

func ownerPrefix(userID string) string {
	return fmt.Sprintf("users/%s/", userID)
}

func spool(header *multipart.FileHeader, ext string) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer func() { _ = src.Close() }()

	dst, err := os.CreateTemp("", "journal-upload-*"+ext)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(dst.Name())
		return "", err
	}

	if err := dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}

	return dst.Name(), nil
}
