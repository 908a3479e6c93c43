// Package hotp implements HMAC-based One-Time Password generation and
// validation as specified by RFC 4226.
//
// Every operation is a pure function of (secret, counter, options): no state
// is retained between calls and no I/O is performed, so any number of calls
// may run concurrently without coordination.
package hotp

import (
	"crypto/hmac"
	"crypto/subtle"
	"encoding/binary"

	otp "github.com/jhahn/go-otp/internal/otpshared"
)

// GenerateOpts provides options for code generation.
type GenerateOpts struct {
	// Digits specifies the number of digits in the code, 1 through 9.
	Digits otp.Digits
	// Algorithm specifies the hash algorithm to use.
	Algorithm otp.Algorithm
}

// ValidateOpts provides options for code validation.
type ValidateOpts struct {
	// Digits specifies the number of digits in the code, 1 through 9.
	Digits otp.Digits
	// Algorithm specifies the hash algorithm to use.
	Algorithm otp.Algorithm
	// Window specifies how many counters on either side of the reference
	// counter are accepted, tolerating missed increments on the token side.
	// A window of 0 means exact match only.
	Window int
}

// GenerateCode generates a 6-digit HMAC-SHA1 code for the given counter.
func GenerateCode(secret []byte, counter uint64) (string, error) {
	return GenerateCodeCustom(secret, counter, GenerateOpts{
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
}

// GenerateCodeCustom generates a code for the given counter using the
// provided options. The derivation follows RFC 4226 section 5.3: the counter
// is serialized as 8 big-endian bytes, HMACed with the secret, and the digest
// is dynamically truncated to a 31-bit value reduced modulo 10^digits.
//
// Options are not defaulted here: Digits must be in 1..9 and Algorithm must
// be one of the supported set. Both parameter checks happen before any HMAC
// computation; the only possible errors are otp.ErrInvalidLength and
// otp.ErrUnsupportedAlgorithm.
func GenerateCodeCustom(secret []byte, counter uint64, opts GenerateOpts) (string, error) {
	if !opts.Digits.Valid() {
		return "", otp.ErrInvalidLength
	}
	newHash, err := opts.Algorithm.Hash()
	if err != nil {
		return "", err
	}

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], counter)
	mac := hmac.New(newHash, secret)
	mac.Write(buf[:])
	digest := mac.Sum(nil)

	// Dynamic truncation (RFC 4226 section 5.3): the low 4 bits of the final
	// digest byte select a 4-byte slice, read big-endian with the sign bit
	// cleared.
	offset := digest[len(digest)-1] & 0x0f
	value := int32(binary.BigEndian.Uint32(digest[offset:offset+4]) & 0x7fffffff)

	mod := int32(1)
	for i := otp.Digits(0); i < opts.Digits; i++ {
		mod *= 10
	}

	return opts.Digits.Format(value % mod), nil
}

// Validate reports whether the code matches the counter exactly, using
// 6 digits and HMAC-SHA1.
func Validate(code string, counter uint64, secret []byte) bool {
	_, ok, err := ValidateCustom(code, counter, secret, ValidateOpts{
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}

// ValidateCustom checks the code against every counter within the drift
// window around the reference counter. Candidates are tried in order of
// increasing distance from the reference, earlier counter first on ties, so
// the returned counter is the closest (and on a tie the older) match — the
// value the caller should persist for replay protection.
//
// A code that matches nothing in the window is not an error: the result is
// simply ok=false. The comparison is constant-time per candidate and the
// whole window is always scanned, so validation cost does not depend on
// where (or whether) the code matches.
func ValidateCustom(code string, counter uint64, secret []byte, opts ValidateOpts) (matched uint64, ok bool, err error) {
	if opts.Window < 0 {
		return 0, false, otp.ErrInvalidWindow
	}

	for delta := uint64(0); delta <= uint64(opts.Window); delta++ {
		candidates := []uint64{counter + delta}
		if delta > 0 && delta <= counter {
			// Earlier counter first, so a tie resolves to the older step.
			candidates = []uint64{counter - delta, counter + delta}
		}
		for _, c := range candidates {
			expected, genErr := GenerateCodeCustom(secret, c, GenerateOpts{
				Digits:    opts.Digits,
				Algorithm: opts.Algorithm,
			})
			if genErr != nil {
				return 0, false, genErr
			}
			if subtle.ConstantTimeCompare([]byte(code), []byte(expected)) == 1 && !ok {
				matched, ok = c, true
			}
		}
	}

	return matched, ok, nil
}
