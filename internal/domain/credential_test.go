package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	const token = "SECRETTOKEN1234567890ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789ABCDEF"

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{name: "valid credential", header: "Basic " + token, want: true},
		{name: "missing header", header: "", want: false},
		{name: "bare token without scheme", header: token, want: false},
		{name: "wrong scheme", header: "Bearer " + token, want: false},
		{name: "lowercase scheme", header: "basic " + token, want: false},
		{name: "wrong token", header: "Basic WRONGTOKEN", want: false},
		{name: "token with trailing garbage", header: "Basic " + token + "X", want: false},
		{name: "prefix of token", header: "Basic " + token[:32], want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.header, token))
		})
	}
}

func TestAuthorizeAny(t *testing.T) {
	creator := "CREATORTOKEN"
	user := "USERTOKEN"

	assert.True(t, AuthorizeAny("Basic "+creator, creator, user))
	assert.True(t, AuthorizeAny("Basic "+user, creator, user))
	assert.False(t, AuthorizeAny("Basic OTHERTOKEN", creator, user))
	assert.False(t, AuthorizeAny("", creator, user))
	assert.False(t, AuthorizeAny("Basic "+user))
}
