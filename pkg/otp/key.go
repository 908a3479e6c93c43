package otp

import (
	"fmt"
	"image"
	"net/url"
	"strconv"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// Key holds the provisioning parameters shared with an authenticator app or
// hardware token, and renders them as an otpauth:// URI or QR code.
type Key struct {
	// Type specifies the OTP type (TOTP or HOTP).
	Type Type
	// Issuer is the name of the issuing organization (e.g., "MyApp").
	Issuer string
	// AccountName is the account identifier (e.g., "user@example.com").
	AccountName string
	// Secret is the base32-encoded shared secret key.
	Secret string
	// Algorithm specifies the hash algorithm.
	Algorithm Algorithm
	// Digits specifies the number of digits in generated codes.
	Digits Digits
	// Period is the TOTP time step in seconds. Ignored for HOTP.
	Period uint
	// Counter is the initial HOTP counter. Ignored for TOTP.
	Counter uint64
}

// URI returns the otpauth:// URI for the key, in the de facto format
// understood by Google Authenticator and compatible apps. The URI can be
// encoded as a QR code and scanned during enrollment.
func (k *Key) URI() string {
	v := url.Values{}
	v.Set("secret", k.Secret)
	v.Set("issuer", k.Issuer)
	v.Set("algorithm", string(k.Algorithm))
	v.Set("digits", fmt.Sprintf("%d", k.Digits))

	if k.Type == TypeTOTP {
		v.Set("period", fmt.Sprintf("%d", k.Period))
	} else {
		v.Set("counter", fmt.Sprintf("%d", k.Counter))
	}

	label := url.PathEscape(fmt.Sprintf("%s:%s", k.Issuer, k.AccountName))
	return fmt.Sprintf("otpauth://%s/%s?%s", k.Type, label, v.Encode())
}

// Image renders the key's URI as a QR code image of the given dimensions.
func (k *Key) Image(width, height int) (image.Image, error) {
	b, err := qr.Encode(k.URI(), qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("otp: failed to encode qr code: %w", err)
	}
	b, err = barcode.Scale(b, width, height)
	if err != nil {
		return nil, fmt.Errorf("otp: failed to scale qr code: %w", err)
	}
	return b, nil
}

// ParseKeyURI parses an otpauth:// URI back into a Key. It accepts the URIs
// produced by Key.URI as well as the common variants that omit the issuer
// label prefix or optional parameters.
func ParseKeyURI(raw string) (*Key, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyURI, err)
	}
	if u.Scheme != "otpauth" {
		return nil, fmt.Errorf("%w: scheme must be otpauth, got %q", ErrInvalidKeyURI, u.Scheme)
	}

	k := &Key{
		Type:      Type(u.Host),
		Algorithm: AlgorithmSHA1,
		Digits:    DigitsSix,
	}
	if k.Type != TypeTOTP && k.Type != TypeHOTP {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidKeyURI, u.Host)
	}
	if k.Type == TypeTOTP {
		k.Period = defaultPeriod
	}

	label := strings.TrimPrefix(u.Path, "/")
	if issuer, account, found := strings.Cut(label, ":"); found {
		k.Issuer = issuer
		k.AccountName = strings.TrimPrefix(account, " ")
	} else {
		k.AccountName = label
	}

	q := u.Query()
	k.Secret = q.Get("secret")
	if k.Secret == "" {
		return nil, fmt.Errorf("%w: missing secret", ErrInvalidKeyURI)
	}
	if issuer := q.Get("issuer"); issuer != "" {
		k.Issuer = issuer
	}
	if alg := q.Get("algorithm"); alg != "" {
		k.Algorithm = Algorithm(strings.ToUpper(alg))
		if _, err := k.Algorithm.Hash(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKeyURI, err)
		}
	}
	if digits := q.Get("digits"); digits != "" {
		n, err := strconv.ParseUint(digits, 10, 8)
		if err != nil || !Digits(n).Valid() {
			return nil, fmt.Errorf("%w: invalid digits %q", ErrInvalidKeyURI, digits)
		}
		k.Digits = Digits(n)
	}
	if period := q.Get("period"); period != "" && k.Type == TypeTOTP {
		n, err := strconv.ParseUint(period, 10, 32)
		if err != nil || n == 0 {
			return nil, fmt.Errorf("%w: invalid period %q", ErrInvalidKeyURI, period)
		}
		k.Period = uint(n)
	}
	if counter := q.Get("counter"); counter != "" && k.Type == TypeHOTP {
		n, err := strconv.ParseUint(counter, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid counter %q", ErrInvalidKeyURI, counter)
		}
		k.Counter = n
	}

	return k, nil
}
