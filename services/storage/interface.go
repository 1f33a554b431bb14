package storage

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService defines the interface for blob storage operations. Only the
// returned URL is ever persisted; file bytes never touch the document store.
type StorageService interface {
	// UploadFile uploads a local file into the given folder and returns the
	// permanent identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// GetDownloadURL constructs a public URL for a stored file.
	GetDownloadURL(ctx context.Context, publicID string) (string, error)
	// GetSecureDownloadURL generates a signed, short-lived URL.
	GetSecureDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error)
}

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
}
