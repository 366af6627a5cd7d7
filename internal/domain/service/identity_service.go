// Package service declares the outbound ports the usecase layer depends on.
package service

import (
	"context"

	"cofipos/internal/domain/entity"
)

// UnknownStaffName is recorded when the identity provider reports neither a
// display name nor an email for the authenticated staff member.
const UnknownStaffName = "Unknown"

// IdentityVerifier validates a provider-issued ID token and returns the
// staff identity behind it.
type IdentityVerifier interface {
	// VerifyIDToken checks the token signature and expiry with the identity
	// provider and extracts the staff profile.
	VerifyIDToken(ctx context.Context, idToken string) (*entity.Staff, error)
}

// ResolveStaffName resolves the display identity recorded on orders:
// display name first, then account email, then UnknownStaffName.
func ResolveStaffName(displayName, email string) string {
	if displayName != "" {
		return displayName
	}
	if email != "" {
		return email
	}

	return UnknownStaffName
}
