// Package otpshared holds the declarations shared between pkg/otp and the
// pkg/hotp / pkg/totp derivation cores. It exists only to break the import
// cycle otp -> hotp/totp -> otp: pkg/otp re-exports everything here via type
// aliases and variable forwarding, so the public API is unchanged.
package otpshared

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
)

var (
	// ErrInvalidLength indicates a code digit count outside the supported 1-9 range.
	ErrInvalidLength = errors.New("otp: invalid code length")

	// ErrInvalidStep indicates a non-positive TOTP time step.
	ErrInvalidStep = errors.New("otp: invalid time step")

	// ErrInvalidWindow indicates a negative drift window.
	ErrInvalidWindow = errors.New("otp: invalid drift window")

	// ErrUnsupportedAlgorithm indicates a hash algorithm outside the supported set.
	ErrUnsupportedAlgorithm = errors.New("otp: unsupported algorithm")
)

// Algorithm represents the hash algorithm used for OTP generation.
// The supported set is closed: SHA1, SHA256 and SHA512 are the only
// algorithms RFC 4226 and RFC 6238 define HMAC parameters for.
type Algorithm string

const (
	// AlgorithmSHA1 uses SHA1 hash algorithm (RFC default, widely supported).
	AlgorithmSHA1 Algorithm = "SHA1"
	// AlgorithmSHA256 uses SHA256 hash algorithm.
	AlgorithmSHA256 Algorithm = "SHA256"
	// AlgorithmSHA512 uses SHA512 hash algorithm.
	AlgorithmSHA512 Algorithm = "SHA512"
)

// Hash returns the hash constructor backing the algorithm, or
// ErrUnsupportedAlgorithm for anything outside the supported set.
func (a Algorithm) Hash() (func() hash.Hash, error) {
	switch a {
	case AlgorithmSHA1:
		return sha1.New, nil
	case AlgorithmSHA256:
		return sha256.New, nil
	case AlgorithmSHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(a))
	}
}

// Digits specifies the number of decimal digits in a generated code.
type Digits uint

const (
	// DigitsSix is the conventional code length used by authenticator apps.
	DigitsSix Digits = 6
	// DigitsEight is the extended code length from the RFC 6238 test suite.
	DigitsEight Digits = 8
)

// Valid reports whether the digit count is within the supported 1-9 range.
// The truncated HMAC value is 31 bits, so beyond 9 digits the modulus stops
// adding entropy.
func (d Digits) Valid() bool {
	return d >= 1 && d <= 9
}

// Format renders a truncated value as a decimal string, left-padded with
// zeros to exactly d characters.
func (d Digits) Format(v int32) string {
	return fmt.Sprintf("%0*d", int(d), v)
}
