package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Verify reports whether providedSignature authenticates rawBody.
// algorithm: base64(HMAC-SHA256(body, secret))
//
// The provided signature is base64-decoded and compared against the
// raw MAC bytes with hmac.Equal; encoded strings are never compared
// with ==. An empty secret fails closed.
func Verify(rawBody []byte, providedSignature string, secret []byte) bool {
	if len(secret) == 0 || providedSignature == "" {
		return false
	}

	provided, err := base64.StdEncoding.DecodeString(providedSignature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(rawBody)

	return hmac.Equal(mac.Sum(nil), provided)
}
