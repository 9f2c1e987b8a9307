//go:build unit

package identity_test

import (
	"testing"

	"consultbook/internal/pkg/identity"

	"github.com/stretchr/testify/assert"
)

func TestRateKey(t *testing.T) {
	hash := identity.HashString("client@example.com")

	t.Run("without an address the key is the bare hash", func(t *testing.T) {
		c := identity.ClientIdentity{Hash: hash}
		assert.Equal(t, hash, c.RateKey())
	})

	t.Run("address changes the key", func(t *testing.T) {
		a := identity.ClientIdentity{Hash: hash, IP: "203.0.113.7"}
		b := identity.ClientIdentity{Hash: hash, IP: "198.51.100.4"}
		assert.NotEqual(t, hash, a.RateKey())
		assert.NotEqual(t, a.RateKey(), b.RateKey())
	})

	t.Run("key is stable for the same pair", func(t *testing.T) {
		a := identity.ClientIdentity{Hash: hash, IP: "203.0.113.7"}
		assert.Equal(t, a.RateKey(), a.RateKey())
	})
}

func TestEmailDomain(t *testing.T) {
	cases := []struct {
		email string
		want  string
	}{
		{"client@Example.COM", "example.com"},
		{"no-at-sign", ""},
		{"trailing@", ""},
		{"a@b@c.com", "c.com"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, identity.EmailDomain(tc.email), tc.email)
	}
}
