package dto

// UploadImageResponse salida de POST /api/admin/upload/image.
type UploadImageResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"image_url"`
	Message  string `json:"message"`
}

// DeleteImageRequest cuerpo de DELETE /api/admin/upload/image.
type DeleteImageRequest struct {
	ImageURL string `json:"image_url" validate:"required"`
}
