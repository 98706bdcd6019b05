package service

import "context"

// UploadResult is what the admin UI needs back after an image upload: the public
// URL for the image field and the storage identifier for deleting later.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// ImageStore is the narrow interface over the external image-hosting service.
// Backends: Cloudinary (default) and S3/R2.
type ImageStore interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (*UploadResult, error)
}
