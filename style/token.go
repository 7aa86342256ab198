package style

import (
	"crypto/sha256"
)

const (
	tokenCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
	tokenLength  = 8
)

// RefToken derives a short deterministic token from a properties map. Two maps
// with equal key/value sets produce the same token regardless of key order; an
// empty (or nil) map produces the empty string, which denotes the base variant
// of a rule.
func RefToken(p Props) string {
	if len(p) == 0 {
		return ""
	}

	hash := sha256.Sum256([]byte(Stringify(p)))

	result := make([]byte, tokenLength)
	for i := range tokenLength {
		result[i] = tokenCharset[hash[i]%byte(len(tokenCharset))]
	}
	return "-" + string(result)
}
