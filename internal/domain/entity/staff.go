package entity

// Staff is the authenticated operator behind a terminal session, as reported
// by the identity provider.
type Staff struct {
	UID           string `json:"uid"`
	DisplayName   string `json:"displayName"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
}
