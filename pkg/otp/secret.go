package otp

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

var b32NoPadding = base32.StdEncoding.WithPadding(base32.NoPadding)

// GenerateSecret generates a cryptographically random secret key.
// The secret is 20 bytes (160 bits, the RFC 4226 recommended minimum) and is
// returned base32-encoded without padding, suitable for Config.Secret.
func GenerateSecret() (string, error) {
	secret := make([]byte, 20)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("otp: failed to generate random secret: %w", err)
	}
	return b32NoPadding.EncodeToString(secret), nil
}

// EncodeSecret encodes raw secret bytes as unpadded base32.
func EncodeSecret(secret []byte) string {
	return b32NoPadding.EncodeToString(secret)
}

// DecodeSecret decodes a base32 secret as typically presented by provisioning
// tools: case is normalized, whitespace is ignored and missing padding is
// restored before decoding.
func DecodeSecret(s string) ([]byte, error) {
	clean := strings.ToUpper(strings.Join(strings.Fields(s), ""))
	clean = strings.TrimRight(clean, "=")
	raw, err := b32NoPadding.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("%w: secret must be valid base32: %v", ErrInvalidConfig, err)
	}
	return raw, nil
}
