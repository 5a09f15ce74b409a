package e

import "fmt"

var (
	// 404 Not Found
	ErrItemNotFound = fmt.Errorf("menu item not found")

	// 400 Bad Request
	ErrMissingFields        = fmt.Errorf("missing required fields: name, description, price")
	ErrInvalidCategory      = fmt.Errorf("invalid category")
	ErrCategoryMismatch     = fmt.Errorf("category mismatch")
	ErrInvalidPrice         = fmt.Errorf("price must be a non-negative integer")
	ErrInvalidBody          = fmt.Errorf("invalid request body")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data request")
	ErrNoImageFile          = fmt.Errorf("no image file provided")
	ErrFileTooLarge         = fmt.Errorf("file too large, maximum size is 5MB")
	ErrUnsupportedMediaType = fmt.Errorf("only image files are allowed")
	ErrEmptyImage           = fmt.Errorf("empty image buffer")
	ErrImageStoreDisabled   = fmt.Errorf("image store is not configured, set MINIO_ENDPOINT, MINIO_ROOT_USER and MINIO_ROOT_PASSWORD or use an image URL instead")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
	ErrImageUploadFailed   = fmt.Errorf("failed to upload image")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
