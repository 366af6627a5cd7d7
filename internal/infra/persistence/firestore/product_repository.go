package firestore

import (
	"context"
	"log/slog"

	"cofipos/internal/domain/constants"
	"cofipos/internal/domain/entity"
	"cofipos/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type productRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewProductRepository creates a new Firestore-backed product repository
func NewProductRepository(client *firestore.Client, logger *slog.Logger) repository.ProductRepository {
	return &productRepository{
		client: client,
		logger: logger,
	}
}

func (r *productRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(constants.CollectionProducts)
}

// SaveProduct inserts or fully replaces a product by id.
func (r *productRepository) SaveProduct(ctx context.Context, product *entity.Product) error {
	if _, err := r.collection().Doc(product.ID).Set(ctx, product); err != nil {
		return errors.Wrapf(err, "failed to save product %s", product.ID)
	}

	return nil
}

// FindProductByID retrieves a product by its id.
func (r *productRepository) FindProductByID(ctx context.Context, id string) (*entity.Product, error) {
	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrapf(err, "failed to get product %s", id)
	}

	product := new(entity.Product)
	if err := snap.DataTo(product); err != nil {
		return nil, errors.Wrapf(err, "failed to decode product %s", id)
	}

	return product, nil
}

// ListProducts retrieves the whole catalog ordered by name.
func (r *productRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	snaps, err := r.collection().OrderBy("name", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return decodeProducts(snaps)
}

// DeleteProduct removes a product document permanently.
func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	// Firestore deletes are blind; read first so unknown ids surface as not found.
	if _, err := r.collection().Doc(id).Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrProductNotFound
		}

		return errors.Wrapf(err, "failed to get product %s", id)
	}

	if _, err := r.collection().Doc(id).Delete(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete product %s", id)
	}

	return nil
}

// WatchProducts emits the full catalog on every remote change until ctx is
// cancelled.
func (r *productRepository) WatchProducts(ctx context.Context) (<-chan []*entity.Product, error) {
	updates := make(chan []*entity.Product)
	snapshots := r.collection().OrderBy("name", firestore.Asc).Snapshots(ctx)

	go func() {
		defer close(updates)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					r.logger.ErrorContext(ctx, "product snapshot stream failed", slog.Any("error", err))
				}

				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				r.logger.ErrorContext(ctx, "failed to read product snapshot", slog.Any("error", err))

				continue
			}

			products, err := decodeProducts(docs)
			if err != nil {
				r.logger.ErrorContext(ctx, "failed to decode product snapshot", slog.Any("error", err))

				continue
			}

			select {
			case updates <- products:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}

func decodeProducts(snaps []*firestore.DocumentSnapshot) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(snaps))
	for _, snap := range snaps {
		product := new(entity.Product)
		if err := snap.DataTo(product); err != nil {
			return nil, errors.Wrapf(err, "failed to decode product %s", snap.Ref.ID)
		}
		products = append(products, product)
	}

	return products, nil
}
