package otp

import (
	"errors"

	"github.com/jhahn/go-otp/internal/otpshared"
)

// The first four sentinels are declared in internal/otpshared so the hotp and
// totp cores can return them without importing this package; forwarding the
// variables preserves error identity for errors.Is.
var (
	// ErrInvalidLength indicates a code digit count outside the supported 1-9 range.
	ErrInvalidLength = otpshared.ErrInvalidLength

	// ErrInvalidStep indicates a non-positive TOTP time step.
	ErrInvalidStep = otpshared.ErrInvalidStep

	// ErrInvalidWindow indicates a negative drift window.
	ErrInvalidWindow = otpshared.ErrInvalidWindow

	// ErrUnsupportedAlgorithm indicates a hash algorithm outside the supported set.
	ErrUnsupportedAlgorithm = otpshared.ErrUnsupportedAlgorithm

	// ErrInvalidCode indicates the provided OTP code is invalid.
	ErrInvalidCode = errors.New("otp: invalid code")

	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("otp: invalid configuration")

	// ErrNilAuthenticator indicates a nil authenticator was used.
	ErrNilAuthenticator = errors.New("otp: authenticator is nil")

	// ErrInvalidKeyURI indicates a malformed otpauth:// provisioning URI.
	ErrInvalidKeyURI = errors.New("otp: invalid key uri")
)
