package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/templui/healthjournal/internal/apperr"
)

// FileConstraints defines validation rules for file uploads
type FileConstraints struct {
	AllowedMimeTypes  map[string]bool
	AllowedExtensions map[string]bool
	MaxSize           int64
}

// ImageConstraints builds the rules for image uploads with the given size limit.
func ImageConstraints(maxSize int64) FileConstraints {
	return FileConstraints{
		AllowedMimeTypes: map[string]bool{
			"image/jpeg": true,
			"image/png":  true,
			"image/webp": true,
		},
		AllowedExtensions: map[string]bool{
			".jpg":  true,
			".jpeg": true,
			".png":  true,
			".webp": true,
		},
		MaxSize: maxSize,
	}
}

// ValidateFile checks size, sniffed content type and extension of an upload.
// Failures are ValidationFailed on the "file" field.
func ValidateFile(header *multipart.FileHeader, constraints FileConstraints) error {
	if header == nil {
		return apperr.Validation("File is required.", map[string]string{"file": required})
	}

	// Check file size first (before reading content)
	if header.Size > constraints.MaxSize {
		return invalidFile(fmt.Sprintf("file too large: maximum size is %d bytes", constraints.MaxSize))
	}

	file, err := header.Open()
	if err != nil {
		return apperr.Wrap(apperr.Internal, "failed to open upload", err)
	}
	defer func() { _ = file.Close() }()

	// http.DetectContentType reads at most 512 bytes
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return apperr.Wrap(apperr.Internal, "failed to read upload", err)
	}

	// Detect actual content type from magic numbers, not the client header
	detectedType := http.DetectContentType(buffer[:n])
	if !constraints.AllowedMimeTypes[detectedType] {
		return invalidFile(fmt.Sprintf("invalid file type (detected: %s)", detectedType))
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !constraints.AllowedExtensions[ext] {
		return invalidFile(fmt.Sprintf("invalid file extension: %s", ext))
	}

	return nil
}

func invalidFile(reason string) error {
	return apperr.Validation("Invalid file upload.", map[string]string{"file": reason})
}
