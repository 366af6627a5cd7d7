// Package storage persists product images in a blob bucket. The bucket URL
// decides the backend: file:// for development, gs:// in production.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"cofipos/config"
	"cofipos/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers registered via blob.OpenBucket URL schemes.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// ImageStoreParams holds dependencies for the image store, injected by Fx
type ImageStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobImageStore opens the configured bucket and returns an ImageStore.
// Returns nil without error when no bucket is configured; product images then
// stay external URLs only.
func NewBlobImageStore(params ImageStoreParams) (service.ImageStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Blob storage not configured, product image upload disabled")

		return nil, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing image bucket")

			return bucket.Close()
		},
	})

	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// UploadProductImage streams an image into the bucket under the product id
// and returns the public URL to store on the product.
func (s *blobImageStore) UploadProductImage(ctx context.Context, productID, contentType string, r io.Reader) (string, error) {
	key := imageKey(productID)
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()

		return "", errors.Wrapf(err, "failed to write image %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to close writer for %s", key)
	}

	s.logger.InfoContext(ctx, "product image uploaded",
		slog.String("product_id", productID),
		slog.String("key", key))

	return s.publicBaseURL + "/" + key, nil
}

// DeleteProductImage removes the stored image. Unknown keys are a no-op so a
// product can be deleted regardless of upload history.
func (s *blobImageStore) DeleteProductImage(ctx context.Context, productID string) error {
	err := s.bucket.Delete(ctx, imageKey(productID))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete image for product %s", productID)
	}

	return nil
}

func imageKey(productID string) string {
	return "products/" + productID
}
