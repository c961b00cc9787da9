package models

import "time"

// Credentials is the operator login pair sent to POST /auth/login.
// Password is never logged or persisted.
type Credentials struct {
	// Username is the operator account name.
	Username string `json:"username"`

	// Password is the plaintext operator password. It only travels to the
	// backend over the login request.
	Password string `json:"password"`
}

// LoginResponse is the success body of POST /auth/login.
type LoginResponse struct {
	Token string `json:"token"`
}

// SessionState is the read-only view of the console session that the
// presentation layer may observe. The raw token is deliberately absent.
type SessionState struct {
	// Authenticated is true while a bearer token is held.
	Authenticated bool

	// Subject is the "sub" claim of the token when it happens to be a JWT,
	// otherwise empty. Informational only, never validated.
	Subject string

	// ExpiresAt is the "exp" claim of the token when present.
	ExpiresAt *time.Time
}
