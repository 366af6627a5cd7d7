package service

import (
	"context"
	"io"
)

// ImageStore persists product images in object storage and returns the
// reference stored on the product document.
type ImageStore interface {
	// UploadProductImage stores the image bytes and returns a stable reference.
	UploadProductImage(ctx context.Context, productID, contentType string, r io.Reader) (string, error)

	// DeleteProductImage removes a previously stored image. Unknown
	// references are a no-op.
	DeleteProductImage(ctx context.Context, ref string) error
}
