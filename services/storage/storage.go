package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService stores synthesized confirmation audio under stable public
// IDs so the handle returned to the client is valid before the upload lands.
type StorageService interface {
	UploadAudio(ctx context.Context, localFilePath, publicID string) (string, error)
	DeleteAudio(ctx context.Context, publicID string) error
}

// CloudinaryStorageService implements StorageService on Cloudinary.
type CloudinaryStorageService struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a CloudinaryStorageService.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &CloudinaryStorageService{cld: cld, cloudName: cloudName}
}

// UploadAudio uploads an mp3 under the given public ID, overwriting any
// earlier attempt for the same reservation, and returns the delivery URL.
// Cloudinary files audio under the video resource type.
func (s *CloudinaryStorageService) UploadAudio(ctx context.Context, localFilePath, publicID string) (string, error) {
	overwrite := true
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		PublicID:     publicID,
		ResourceType: "video",
		Overwrite:    &overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload audio: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("storage: no URL returned for %s", publicID)
	}
	return result.SecureURL, nil
}

// DeleteAudio removes a stored audio file by public ID.
func (s *CloudinaryStorageService) DeleteAudio(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "video",
	})
	if err != nil {
		return fmt.Errorf("storage: failed to delete audio: %w", err)
	}
	return nil
}
