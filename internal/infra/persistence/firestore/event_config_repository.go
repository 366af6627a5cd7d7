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

type eventConfigRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewEventConfigRepository creates a new Firestore-backed event config repository
func NewEventConfigRepository(client *firestore.Client, logger *slog.Logger) repository.EventConfigRepository {
	return &eventConfigRepository{
		client: client,
		logger: logger,
	}
}

func (r *eventConfigRepository) doc() *firestore.DocumentRef {
	return r.client.Collection(constants.CollectionSettings).Doc(entity.EventConfigID)
}

// GetEventConfig retrieves the singleton event pool configuration.
func (r *eventConfigRepository) GetEventConfig(ctx context.Context) (*entity.EventConfig, error) {
	snap, err := r.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrEventConfigNotFound
		}

		return nil, errors.Wrap(err, "failed to get event config")
	}

	config := new(entity.EventConfig)
	if err := snap.DataTo(config); err != nil {
		return nil, errors.Wrap(err, "failed to decode event config")
	}

	return config, nil
}

// SaveEventConfig fully replaces the singleton event pool configuration.
func (r *eventConfigRepository) SaveEventConfig(ctx context.Context, config *entity.EventConfig) error {
	if _, err := r.doc().Set(ctx, config); err != nil {
		return errors.Wrap(err, "failed to save event config")
	}

	return nil
}

// WatchEventConfig emits the configuration on every remote change until ctx
// is cancelled.
func (r *eventConfigRepository) WatchEventConfig(ctx context.Context) (<-chan *entity.EventConfig, error) {
	updates := make(chan *entity.EventConfig)
	snapshots := r.doc().Snapshots(ctx)

	go func() {
		defer close(updates)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					r.logger.ErrorContext(ctx, "event config snapshot stream failed", slog.Any("error", err))
				}

				return
			}
			if !snap.Exists() {
				continue
			}

			config := new(entity.EventConfig)
			if err := snap.DataTo(config); err != nil {
				r.logger.ErrorContext(ctx, "failed to decode event config snapshot", slog.Any("error", err))

				continue
			}

			select {
			case updates <- config:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}
