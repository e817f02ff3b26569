package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// ErrInvalidSignature is returned when a webhook body does not match its signature.
var ErrInvalidSignature = errors.New("invalid signature")

// SignatureVerifier checks HMAC-SHA256 signatures computed with the shared webhook secret.
type SignatureVerifier struct {
	secret []byte
}

func NewSignatureVerifier(secret string) (*SignatureVerifier, error) {
	if secret == "" {
		return nil, errors.New("webhook secret is required")
	}
	return &SignatureVerifier{secret: []byte(secret)}, nil
}

// Sign returns the lowercase hex HMAC of body.
func (v *SignatureVerifier) Sign(body []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares in constant time. A missing or non-hex signature is invalid.
func (v *SignatureVerifier) Verify(body []byte, signature string) error {
	received, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil || len(received) == 0 {
		return ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	if !hmac.Equal(received, mac.Sum(nil)) {
		return ErrInvalidSignature
	}
	return nil
}
