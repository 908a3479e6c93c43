// Package api coordinates verification across multiple enrolled OTP methods.
//
// Real deployments often enroll more than one token type per account — a TOTP
// authenticator app alongside an HOTP hardware fallback token. The Service
// tries each configured method in order and succeeds as soon as one accepts
// the submitted code.
package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhahn/go-otp/pkg/otp"
)

// Handler defines the contract for a verification method.
// The implementation should return nil on success or an error on failure.
type Handler interface {
	Verify(ctx context.Context, code string) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, code string) error

// Verify executes the underlying function.
func (f HandlerFunc) Verify(ctx context.Context, code string) error {
	return f(ctx, code)
}

// MethodName identifies a registered verification method.
type MethodName string

const (
	MethodTOTP MethodName = "totp"
	MethodHOTP MethodName = "hotp"
)

// Method represents a named verification method.
type Method struct {
	Name    MethodName
	Handler Handler
}

// Config contains the ordered list of methods the service should attempt.
type Config struct {
	Methods []Method
}

// Service coordinates verification attempts across configured methods.
type Service struct {
	methods []Method
}

var (
	// ErrNoMethods indicates the service was initialised without any methods.
	ErrNoMethods = errors.New("api: no verification methods configured")
	// ErrMethodNotFound indicates a requested method name does not exist.
	ErrMethodNotFound = errors.New("api: requested method not configured")
	// ErrMissingCode indicates the request does not contain a code.
	ErrMissingCode = errors.New("api: code is required")
)

// NewService builds a Service from the supplied configuration.
func NewService(cfg Config) (*Service, error) {
	if len(cfg.Methods) == 0 {
		return nil, ErrNoMethods
	}

	methods := make([]Method, 0, len(cfg.Methods))
	seen := map[MethodName]struct{}{}
	for i, m := range cfg.Methods {
		if m.Handler == nil {
			return nil, fmt.Errorf("api: method at index %d has no handler", i)
		}
		if _, ok := seen[m.Name]; ok {
			return nil, fmt.Errorf("api: duplicate method name %q", m.Name)
		}
		seen[m.Name] = struct{}{}
		methods = append(methods, m)
	}

	return &Service{methods: methods}, nil
}

// VerifyRequest contains the submitted code and optional target method.
type VerifyRequest struct {
	Method MethodName
	Code   string
}

// Verify attempts verification using the configured methods.
// With no target method set, each method is tried in configuration order and
// the first success wins; otherwise only the named method is consulted.
func (s *Service) Verify(ctx context.Context, req VerifyRequest) error {
	if s == nil || len(s.methods) == 0 {
		return ErrNoMethods
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if req.Code == "" {
		return ErrMissingCode
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	var targets []Method
	if req.Method != "" {
		for _, m := range s.methods {
			if m.Name == req.Method {
				targets = append(targets, m)
				break
			}
		}
		if len(targets) == 0 {
			return ErrMethodNotFound
		}
	} else {
		targets = s.methods
	}

	var errs []error
	for _, m := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.Handler.Verify(ctx, req.Code); err == nil {
			return nil
		} else {
			errs = append(errs, fmt.Errorf("%s: %w", m.Name, err))
		}
	}

	if len(errs) == 0 {
		return ErrNoMethods
	}
	return errors.Join(errs...)
}

// codeAuthenticator describes authenticators that verify a bare code.
type codeAuthenticator interface {
	Authenticate(ctx context.Context, code string) error
}

// CounterStore persists the moving HOTP counter between validations.
// Implementations own replay protection: Last returns the next counter the
// token is expected to produce, and Store records the counter returned by a
// successful validation.
type CounterStore interface {
	Last(ctx context.Context) (uint64, error)
	Store(ctx context.Context, counter uint64) error
}

// TOTP creates a Handler that delegates to a time-based authenticator.
func TOTP(auth codeAuthenticator) Handler {
	return HandlerFunc(func(ctx context.Context, code string) error {
		return auth.Authenticate(ctx, code)
	})
}

// HOTP creates a Handler that validates against the stored counter and
// persists the advanced counter on success.
func HOTP(auth *otp.Authenticator, store CounterStore) Handler {
	return HandlerFunc(func(ctx context.Context, code string) error {
		counter, err := store.Last(ctx)
		if err != nil {
			return fmt.Errorf("api: loading counter: %w", err)
		}
		next, err := auth.ValidateCounter(ctx, code, counter)
		if err != nil {
			return err
		}
		// The drift window extends behind the stored counter too; a match
		// there is a replay of an already-consumed code.
		if next <= counter {
			return otp.ErrInvalidCode
		}
		return store.Store(ctx, next)
	})
}

// Ensure the concrete authenticator satisfies the codeAuthenticator interface.
var _ codeAuthenticator = (*otp.Authenticator)(nil)
