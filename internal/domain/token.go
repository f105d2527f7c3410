package domain

// TokenSource produces public identifiers and secret credentials.
// Implementations must use a cryptographically strong random source;
// predictable tokens are a direct authorization bypass.
type TokenSource interface {
	// NewIdentifier returns a new 8-character public identifier.
	NewIdentifier() (string, error)
	// NewSecret returns a new 64-character secret credential.
	NewSecret() (string, error)
}
