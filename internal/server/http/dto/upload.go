package dto

// UploadResponse returns the public URL of stored media.
type UploadResponse struct {
	URL string `json:"url"`
}
