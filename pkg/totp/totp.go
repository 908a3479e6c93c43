// Package totp implements Time-based One-Time Password generation and
// validation as specified by RFC 6238.
//
// TOTP is HOTP with the counter derived from a caller-supplied time sample:
// this package never reads the system clock, which keeps every operation a
// pure function and makes code derivation fully deterministic under test.
package totp

import (
	"time"

	otp "github.com/jhahn/go-otp/internal/otpshared"
	"github.com/jhahn/go-otp/pkg/hotp"
)

// DefaultPeriod is the RFC 6238 recommended time-step size in seconds.
const DefaultPeriod = 30

// GenerateOpts provides options for code generation.
type GenerateOpts struct {
	// Period specifies the time-step size in seconds. Must be non-zero.
	Period uint
	// Epoch is the Unix time T0 from which time steps are counted.
	Epoch int64
	// Digits specifies the number of digits in the code, 1 through 9.
	Digits otp.Digits
	// Algorithm specifies the hash algorithm to use.
	Algorithm otp.Algorithm
}

// ValidateOpts provides options for code validation.
type ValidateOpts struct {
	// Period specifies the time-step size in seconds. Must be non-zero.
	Period uint
	// Epoch is the Unix time T0 from which time steps are counted.
	Epoch int64
	// Digits specifies the number of digits in the code, 1 through 9.
	Digits otp.Digits
	// Algorithm specifies the hash algorithm to use.
	Algorithm otp.Algorithm
	// Window specifies how many time steps on either side of the reference
	// time are accepted, tolerating clock skew between token and verifier.
	// A window of 0 means the current step only.
	Window int
}

// Counter maps a time sample to its HOTP counter: the number of whole
// periods elapsed between epoch and t. Samples before the epoch map to
// step 0; RFC 6238 assumes the clock never reads earlier than T0.
func Counter(t time.Time, period uint, epoch int64) uint64 {
	elapsed := t.Unix() - epoch
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed) / uint64(period)
}

// GenerateCode generates a 6-digit HMAC-SHA1 code for the given time using
// the default 30-second step and zero epoch.
func GenerateCode(secret []byte, t time.Time) (string, error) {
	return GenerateCodeCustom(secret, t, GenerateOpts{
		Period:    DefaultPeriod,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
}

// GenerateCodeCustom generates a code for the given time using the provided
// options. The time sample is floored to a step counter and the rest of the
// derivation is delegated to the HOTP pipeline.
//
// Options are not defaulted: a zero Period fails with otp.ErrInvalidStep
// before any computation.
func GenerateCodeCustom(secret []byte, t time.Time, opts GenerateOpts) (string, error) {
	if opts.Period == 0 {
		return "", otp.ErrInvalidStep
	}
	return hotp.GenerateCodeCustom(secret, Counter(t, opts.Period, opts.Epoch), hotp.GenerateOpts{
		Digits:    opts.Digits,
		Algorithm: opts.Algorithm,
	})
}

// Validate reports whether the code matches the current time step exactly,
// using the default step, 6 digits and HMAC-SHA1.
func Validate(code string, t time.Time, secret []byte) bool {
	_, ok, err := ValidateCustom(code, t, secret, ValidateOpts{
		Period:    DefaultPeriod,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}

// ValidateCustom checks the code against every time step within the skew
// window around the step containing t. The returned counter identifies the
// matched step; callers implementing replay protection should refuse to
// accept the same step twice.
//
// A miss is not an error: the result is ok=false with a nil error.
func ValidateCustom(code string, t time.Time, secret []byte, opts ValidateOpts) (matched uint64, ok bool, err error) {
	if opts.Period == 0 {
		return 0, false, otp.ErrInvalidStep
	}
	return hotp.ValidateCustom(code, Counter(t, opts.Period, opts.Epoch), secret, hotp.ValidateOpts{
		Digits:    opts.Digits,
		Algorithm: opts.Algorithm,
		Window:    opts.Window,
	})
}
