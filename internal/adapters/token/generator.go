package token

import (
	"crypto/rand"
	"fmt"

	"notikums/internal/domain"
)

// alphabet is the 36-symbol token alphabet. Identifiers and secrets share
// it; only their lengths differ (36^8 vs 36^64 combinations).
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	identifierLength = 8
	secretLength     = 64
)

type generator struct{}

// NewGenerator returns a TokenSource backed by crypto/rand.
func NewGenerator() domain.TokenSource {
	return generator{}
}

func (generator) NewIdentifier() (string, error) {
	return randomString(identifierLength)
}

func (generator) NewSecret() (string, error) {
	return randomString(secretLength)
}

// randomString draws n symbols uniformly from alphabet. Bytes >= 252 are
// rejected and redrawn: 252 is the largest multiple of 36 below 256, so
// taking the remainder of accepted bytes is unbiased.
func randomString(n int) (string, error) {
	const limit = byte(252)
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
