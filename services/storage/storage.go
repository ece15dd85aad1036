package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService defines the interface for media storage operations.
// Profile, salon and service images are held in Cloudinary; the rest of
// the system only ever sees public IDs and delivery URLs.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error)
}

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	client    *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a Cloudinary-backed StorageService.
func NewStorageService(client *cloudinary.Cloudinary, cloudName string) *CloudinaryStorageService {
	return &CloudinaryStorageService{
		client:    client,
		cloudName: cloudName,
	}
}

// UploadFile uploads the file at localFilePath into destFolder and returns
// the resulting public ID.
func (s *CloudinaryStorageService) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	resp, err := s.client.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: destFolder,
	})
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload %s: %w", localFilePath, err)
	}
	if resp.PublicID == "" {
		return "", fmt.Errorf("storage: upload of %s returned no public ID", localFilePath)
	}
	return resp.PublicID, nil
}

// DeleteFile removes the asset with the given public ID.
func (s *CloudinaryStorageService) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("storage: failed to delete %s: %w", publicID, err)
	}
	return nil
}

// GetDownloadURL returns a delivery URL for the asset. Cloudinary delivery
// URLs do not expire; the expires argument is kept for interface parity
// with signed-URL backends.
func (s *CloudinaryStorageService) GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error) {
	img, err := s.client.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("storage: failed to build asset for %s: %w", publicID, err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("storage: failed to build URL for %s: %w", publicID, err)
	}
	return url, nil
}
