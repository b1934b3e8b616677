package storage

import (
	"context"
	"fmt"
	"time"

	"stayx/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// uploadAttempts bounds the retry loop around transient upload failures.
const uploadAttempts = 3

// CloudinaryStorageService implements StorageService on Cloudinary.
type CloudinaryStorageService struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a Cloudinary-backed storage service.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) *CloudinaryStorageService {
	return &CloudinaryStorageService{cld: cld, cloudName: cloudName}
}

// UploadFile uploads a file into destFolder and returns its public ID.
// Transient failures are retried up to three times with a linear backoff.
func (s *CloudinaryStorageService) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	params := uploader.UploadParams{Folder: destFolder}

	var lastErr error
	for attempt := 1; attempt <= uploadAttempts; attempt++ {
		result, err := s.cld.Upload.Upload(ctx, localFilePath, params)
		if err == nil && result.PublicID != "" {
			return result.PublicID, nil
		}
		if err == nil {
			err = fmt.Errorf("no public ID returned")
		}
		lastErr = err
		utils.GetLogger().Warn("upload attempt failed",
			zap.Int("attempt", attempt), zap.String("file", localFilePath), zap.Error(err))

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(time.Duration(attempt) * time.Second):
		}
	}
	return "", fmt.Errorf("upload failed after %d attempts: %w", uploadAttempts, lastErr)
}

// DeleteFile deletes a file from Cloudinary given its public ID.
func (s *CloudinaryStorageService) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete file %q: %w", publicID, err)
	}
	return nil
}

// GetDownloadURL constructs a public URL for an uploaded image.
func (s *CloudinaryStorageService) GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error) {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("failed to get asset %q: %w", publicID, err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("failed to build URL for %q: %w", publicID, err)
	}
	return url, nil
}
