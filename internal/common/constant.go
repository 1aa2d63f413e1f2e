// Package common contains shared constants and sentinel errors used across
// gophadmin components.
package common

const (
	// AuthorizationHeaderName carries the bearer token on authorized API calls.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"

	// BearerScheme is the authorization scheme prefix used by the admin API.
	BearerScheme = "Bearer"

	// TokenStoreKey is the metadata key the bearer token is persisted under.
	TokenStoreKey = "adminToken"
)
