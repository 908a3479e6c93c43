package otp

import "github.com/jhahn/go-otp/internal/otpshared"

// Algorithm represents the hash algorithm used for OTP generation.
// The supported set is closed: SHA1, SHA256 and SHA512 are the only
// algorithms RFC 4226 and RFC 6238 define HMAC parameters for.
//
// The declaration lives in internal/otpshared so the hotp and totp cores can
// share it without importing this package; the alias keeps the public type
// identical.
type Algorithm = otpshared.Algorithm

const (
	// AlgorithmSHA1 uses SHA1 hash algorithm (RFC default, widely supported).
	AlgorithmSHA1 Algorithm = otpshared.AlgorithmSHA1
	// AlgorithmSHA256 uses SHA256 hash algorithm.
	AlgorithmSHA256 Algorithm = otpshared.AlgorithmSHA256
	// AlgorithmSHA512 uses SHA512 hash algorithm.
	AlgorithmSHA512 Algorithm = otpshared.AlgorithmSHA512
)

// Digits specifies the number of decimal digits in a generated code.
type Digits = otpshared.Digits

const (
	// DigitsSix is the conventional code length used by authenticator apps.
	DigitsSix Digits = otpshared.DigitsSix
	// DigitsEight is the extended code length from the RFC 6238 test suite.
	DigitsEight Digits = otpshared.DigitsEight
)
