package storage

import (
	"context"
	"io"

	"buildlanka/models"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService defines the interface for uploaded-file storage. Callers
// receive an opaque models.FileRef; the bytes never re-enter the process.
type StorageService interface {
	// UploadFile streams a file into the given folder and returns its handle.
	UploadFile(ctx context.Context, r io.Reader, fileName, contentType string, size int64, destFolder string) (models.FileRef, error)
	// DeleteFile removes a stored file by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL constructs a public URL for a stored file.
	GetDownloadURL(ctx context.Context, resourceType, publicID string) (string, error)
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
