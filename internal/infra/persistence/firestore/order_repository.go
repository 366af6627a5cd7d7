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

type orderRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewOrderRepository creates a new Firestore-backed order repository
func NewOrderRepository(client *firestore.Client, logger *slog.Logger) repository.OrderRepository {
	return &orderRepository{
		client: client,
		logger: logger,
	}
}

func (r *orderRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(constants.CollectionOrders)
}

// SaveOrder inserts or fully replaces an order by id. Lifecycle transitions
// are full-document replaces.
func (r *orderRepository) SaveOrder(ctx context.Context, order *entity.Order) error {
	if _, err := r.collection().Doc(order.ID).Set(ctx, order); err != nil {
		return errors.Wrapf(err, "failed to save order %s", order.ID)
	}

	return nil
}

// FindOrderByID retrieves an order by its id.
func (r *orderRepository) FindOrderByID(ctx context.Context, id string) (*entity.Order, error) {
	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrapf(err, "failed to get order %s", id)
	}

	order := new(entity.Order)
	if err := snap.DataTo(order); err != nil {
		return nil, errors.Wrapf(err, "failed to decode order %s", id)
	}

	return order, nil
}

// ListOrders retrieves the full order log, newest first.
func (r *orderRepository) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	snaps, err := r.collection().OrderBy("timestamp", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return decodeOrders(snaps)
}

// WatchOrders emits the full order log (newest first) on every remote change
// until ctx is cancelled.
func (r *orderRepository) WatchOrders(ctx context.Context) (<-chan []*entity.Order, error) {
	updates := make(chan []*entity.Order)
	snapshots := r.collection().OrderBy("timestamp", firestore.Desc).Snapshots(ctx)

	go func() {
		defer close(updates)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					r.logger.ErrorContext(ctx, "order snapshot stream failed", slog.Any("error", err))
				}

				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				r.logger.ErrorContext(ctx, "failed to read order snapshot", slog.Any("error", err))

				continue
			}

			orders, err := decodeOrders(docs)
			if err != nil {
				r.logger.ErrorContext(ctx, "failed to decode order snapshot", slog.Any("error", err))

				continue
			}

			select {
			case updates <- orders:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}

func decodeOrders(snaps []*firestore.DocumentSnapshot) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0, len(snaps))
	for _, snap := range snaps {
		order := new(entity.Order)
		if err := snap.DataTo(order); err != nil {
			return nil, errors.Wrapf(err, "failed to decode order %s", snap.Ref.ID)
		}
		orders = append(orders, order)
	}

	return orders, nil
}
