package domain

// GoogleUserInfo is the transient identity claim returned by Google's userinfo endpoint
// (or decoded from a validated ID token). It is reconciled against the local user store
// and never persisted.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture,omitempty"`
}
