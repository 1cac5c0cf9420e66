package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MediaService stores salon media (logos, gallery photos).
type MediaService interface {
	// Upload stores a file under the given folder and returns its public
	// identifier and serving URL.
	Upload(ctx context.Context, file multipart.File, folder string) (publicID, url string, err error)
	// Delete removes a stored file by its public identifier.
	Delete(ctx context.Context, publicID string) error
}

// CloudinaryMediaService implements MediaService on Cloudinary.
type CloudinaryMediaService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryMediaService builds a MediaService from Cloudinary credentials.
func NewCloudinaryMediaService(cloudName, apiKey, apiSecret string) (*CloudinaryMediaService, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryMediaService{cld: cld}, nil
}

// Upload stores the file and returns its public ID and secure URL.
func (s *CloudinaryMediaService) Upload(ctx context.Context, file multipart.File, folder string) (string, string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload media: %w", err)
	}
	if result.PublicID == "" {
		return "", "", fmt.Errorf("no public ID returned for upload")
	}
	return result.PublicID, result.SecureURL, nil
}

// Delete removes the file with the given public ID.
func (s *CloudinaryMediaService) Delete(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete media %s: %w", publicID, err)
	}
	return nil
}
