package otp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhahn/go-otp/pkg/hotp"
	"github.com/jhahn/go-otp/pkg/totp"
)

// Type represents the OTP algorithm type.
type Type string

const (
	// TypeTOTP represents Time-based OTP (RFC 6238).
	TypeTOTP Type = "totp"
	// TypeHOTP represents Counter-based OTP (RFC 4226).
	TypeHOTP Type = "hotp"
)

const (
	defaultPeriod = 30
	defaultSkew   = 1
)

// Config holds OTP authenticator configuration.
type Config struct {
	// Type specifies the OTP type (TOTP or HOTP).
	Type Type
	// Secret is the base32-encoded shared secret key (required).
	Secret string
	// Issuer is the name of the issuing organization (e.g., "MyApp").
	Issuer string
	// AccountName is the account identifier (e.g., "user@example.com").
	AccountName string
	// Digits specifies the number of digits in the OTP code (1 through 9;
	// authenticator apps generally support 6, 7 and 8).
	// Default: 6
	Digits Digits
	// Period specifies the time step in seconds for TOTP.
	// Default: 30
	Period uint
	// Epoch is the Unix time T0 from which TOTP steps are counted.
	// Default: 0
	Epoch int64
	// Counter specifies the initial counter value for HOTP.
	// Default: 0
	Counter uint64
	// Algorithm specifies the hash algorithm to use.
	// Default: SHA1
	Algorithm Algorithm
	// Skew specifies the number of steps to check on either side of the
	// reference counter or time step (tolerance for clock skew and missed
	// increments).
	// Default: 1
	Skew uint
}

// validate checks that the configuration is valid.
func (c Config) validate() error {
	if c.Type != TypeTOTP && c.Type != TypeHOTP {
		return fmt.Errorf("%w: type must be 'totp' or 'hotp'", ErrInvalidConfig)
	}

	if strings.TrimSpace(c.Secret) == "" {
		return fmt.Errorf("%w: secret must not be empty", ErrInvalidConfig)
	}
	if _, err := DecodeSecret(c.Secret); err != nil {
		return err
	}

	if c.Digits != 0 && !c.Digits.Valid() {
		return fmt.Errorf("%w: digits must be between 1 and 9", ErrInvalidConfig)
	}

	if c.Algorithm != "" {
		if _, err := c.Algorithm.Hash(); err != nil {
			return fmt.Errorf("%w: algorithm must be SHA1, SHA256, or SHA512", ErrInvalidConfig)
		}
	}

	return nil
}

// Authenticator validates OTP codes against a single enrolled secret.
//
// It is a thin ergonomic wrapper: every method forwards to the stateless
// hotp and totp packages, so it holds no mutable state and is safe for
// concurrent use.
type Authenticator struct {
	cfg Config
	key []byte
}

// NewAuthenticator creates a new OTP authenticator.
// The configuration is validated and an error is returned if invalid.
// Unset fields default to 6 digits, a 30-second period, SHA1 and a skew of 1.
func NewAuthenticator(cfg Config) (*Authenticator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Digits == 0 {
		cfg.Digits = DigitsSix
	}
	if cfg.Period == 0 {
		cfg.Period = defaultPeriod
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = AlgorithmSHA1
	}
	if cfg.Skew == 0 {
		cfg.Skew = defaultSkew
	}

	// The secret is decoded once here; the stored bytes are never mutated.
	key, err := DecodeSecret(cfg.Secret)
	if err != nil {
		return nil, err
	}

	return &Authenticator{cfg: cfg, key: key}, nil
}

// Authenticate validates an OTP code.
// For TOTP, it validates against the current time with skew tolerance.
// For HOTP, it validates against the configured counter value only; use
// ValidateCounter to track a moving counter with drift tolerance.
func (a *Authenticator) Authenticate(ctx context.Context, code string) error {
	if a == nil {
		return ErrNilAuthenticator
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	if a.cfg.Type == TypeTOTP {
		_, ok, err := totp.ValidateCustom(code, time.Now().UTC(), a.key, totp.ValidateOpts{
			Period:    a.cfg.Period,
			Epoch:     a.cfg.Epoch,
			Digits:    a.cfg.Digits,
			Algorithm: a.cfg.Algorithm,
			Window:    int(a.cfg.Skew),
		})
		if err != nil {
			return fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
		}
		if !ok {
			return ErrInvalidCode
		}
		return nil
	}

	_, ok, err := hotp.ValidateCustom(code, a.cfg.Counter, a.key, hotp.ValidateOpts{
		Digits:    a.cfg.Digits,
		Algorithm: a.cfg.Algorithm,
	})
	if err != nil {
		return fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
	}
	if !ok {
		return ErrInvalidCode
	}
	return nil
}

// ValidateCounter validates an HOTP code against the given counter with the
// configured skew as drift window and returns the next counter value.
// This method is only valid for HOTP authenticators.
// The returned counter is one past the matched counter and should be stored
// and used for the next validation (RFC 4226 resynchronization); never
// accept a code for a counter at or below the last stored value.
func (a *Authenticator) ValidateCounter(ctx context.Context, code string, counter uint64) (uint64, error) {
	if a == nil {
		return 0, ErrNilAuthenticator
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if a.cfg.Type != TypeHOTP {
		return 0, fmt.Errorf("%w: ValidateCounter is only valid for HOTP", ErrInvalidConfig)
	}

	if strings.TrimSpace(code) == "" {
		return 0, fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	matched, ok, err := hotp.ValidateCustom(code, counter, a.key, hotp.ValidateOpts{
		Digits:    a.cfg.Digits,
		Algorithm: a.cfg.Algorithm,
		Window:    int(a.cfg.Skew),
	})
	if err != nil {
		return 0, fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
	}
	if !ok {
		return 0, ErrInvalidCode
	}

	return matched + 1, nil
}

// Generate generates an OTP code.
// For TOTP, it generates the code for the current time.
// For HOTP, a counter value must be provided.
func (a *Authenticator) Generate(counter ...uint64) (string, error) {
	return a.GenerateAt(time.Now().UTC(), counter...)
}

// GenerateAt generates an OTP code for the given time.
// The time is ignored for HOTP, where a counter value must be provided.
func (a *Authenticator) GenerateAt(t time.Time, counter ...uint64) (string, error) {
	if a == nil {
		return "", ErrNilAuthenticator
	}

	if a.cfg.Type == TypeTOTP {
		code, err := totp.GenerateCodeCustom(a.key, t, totp.GenerateOpts{
			Period:    a.cfg.Period,
			Epoch:     a.cfg.Epoch,
			Digits:    a.cfg.Digits,
			Algorithm: a.cfg.Algorithm,
		})
		if err != nil {
			return "", fmt.Errorf("otp: failed to generate TOTP code: %w", err)
		}
		return code, nil
	}

	if len(counter) == 0 {
		return "", fmt.Errorf("otp: counter required for HOTP generation")
	}

	code, err := hotp.GenerateCodeCustom(a.key, counter[0], hotp.GenerateOpts{
		Digits:    a.cfg.Digits,
		Algorithm: a.cfg.Algorithm,
	})
	if err != nil {
		return "", fmt.Errorf("otp: failed to generate HOTP code: %w", err)
	}
	return code, nil
}

// Key returns the provisioning key for the authenticator's configuration.
func (a *Authenticator) Key() *Key {
	if a == nil {
		return nil
	}
	return &Key{
		Type:        a.cfg.Type,
		Issuer:      a.cfg.Issuer,
		AccountName: a.cfg.AccountName,
		Secret:      a.cfg.Secret,
		Algorithm:   a.cfg.Algorithm,
		Digits:      a.cfg.Digits,
		Period:      a.cfg.Period,
		Counter:     a.cfg.Counter,
	}
}

// GetProvisioningURI returns the otpauth:// URI for QR code generation.
// This URI can be encoded as a QR code and scanned by authenticator apps.
func (a *Authenticator) GetProvisioningURI() string {
	if a == nil {
		return ""
	}
	return a.Key().URI()
}
