package domain

import (
	"crypto/subtle"
	"strings"
)

// credentialScheme is the literal prefix expected on the Authorization
// header. This is a token-bearer convention, not real HTTP Basic auth:
// the secret token follows the prefix verbatim, with no base64 user:pass.
const credentialScheme = "Basic "

// Authorize reports whether the Authorization header value carries exactly
// the expected secret token. The token comparison is constant time so a
// mismatch reveals nothing about how much of the credential was correct.
func Authorize(header, expected string) bool {
	if !strings.HasPrefix(header, credentialScheme) {
		return false
	}
	presented := header[len(credentialScheme):]
	return subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) == 1
}

// AuthorizeAny reports whether the header matches any of the expected
// credentials. Every candidate is compared so timing does not reveal which
// credential matched.
func AuthorizeAny(header string, expected ...string) bool {
	ok := false
	for _, e := range expected {
		if Authorize(header, e) {
			ok = true
		}
	}
	return ok
}
