package api

import (
	"context"
	"errors"
)

// ErrNoCredentials is returned when a session has nothing to authenticate with
var ErrNoCredentials = errors.New("no credentials configured")

// Credentials identify the caller to the settings API
type Credentials struct {
	// Token is sent verbatim in the Authorization header
	Token string
	// APIKey is sent in the x-api-key header
	APIKey string
}

// SessionProvider supplies the caller identity for each request. Obtaining and
// refreshing tokens is the provider's business.
type SessionProvider interface {
	Credentials(ctx context.Context) (Credentials, error)
}

// StaticSession returns fixed credentials, typically from configuration
type StaticSession Credentials

func (s StaticSession) Credentials(ctx context.Context) (Credentials, error) {
	if s.Token == "" && s.APIKey == "" {
		return Credentials{}, ErrNoCredentials
	}
	return Credentials(s), nil
}
