package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// ClientIdentity is the pseudonymous identity supplied by the auth
// collaborator for a booking attempt. The engine never sees raw
// credentials; it only correlates attempts for usage limits and fraud
// heuristics.
type ClientIdentity struct {
	// Hash is the stable pseudonymous identifier.
	Hash string
	// Email is carried only for the disposable-domain heuristic and is
	// never persisted.
	Email string
	// IP is the request origin, folded into the attempt-rate key by
	// RateKey.
	IP string
}

// RateKey is the key attempt rates are tracked under. Mixing the IP in
// stops one origin from spreading attempts across identities; the
// per-user usage limit stays on Hash alone so it follows the user.
func (c ClientIdentity) RateKey() string {
	if c.IP == "" {
		return c.Hash
	}
	return HashString(c.Hash + "|" + c.IP)
}

// HashString derives a stable identity hash from an arbitrary
// identifier, for callers that only have a raw value.
func HashString(value string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(value))))
	return hex.EncodeToString(sum[:])
}

// EmailDomain extracts the lower-cased domain part, or "".
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}
