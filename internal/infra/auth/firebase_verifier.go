// Package auth verifies staff identity against Firebase Authentication.
package auth

import (
	"context"

	"cofipos/config"
	"cofipos/internal/domain/entity"
	"cofipos/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier creates an IdentityVerifier backed by Firebase Auth.
func NewFirebaseVerifier(ctx context.Context, cfg *config.FirebaseConfig) (service.IdentityVerifier, error) {
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firebase project ID is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

// VerifyIDToken checks the token signature and expiry with Firebase and
// extracts the staff profile from its claims.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*entity.Staff, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	staff := &entity.Staff{UID: token.UID}
	if name, ok := token.Claims["name"].(string); ok {
		staff.DisplayName = name
	}
	if email, ok := token.Claims["email"].(string); ok {
		staff.Email = email
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		staff.EmailVerified = verified
	}

	return staff, nil
}
