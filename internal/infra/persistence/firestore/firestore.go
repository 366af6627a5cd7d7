// Package firestore implements the domain repositories on Cloud Firestore.
// Every write is a full-document Set, matching the replace-not-patch contract
// of the repository interfaces.
package firestore

import (
	"context"
	"log/slog"

	"cofipos/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// ClientParams holds dependencies for the Firestore client, injected by Fx
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewClient initializes the Firebase app and returns its Firestore client.
// Credentials fall back to Application Default Credentials when no
// credentials file is configured.
func NewClient(params ClientParams) (*firestore.Client, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firebase project ID is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}
