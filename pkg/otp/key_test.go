package otp

import (
	"errors"
	"strings"
	"testing"
)

func TestKeyURIRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		key  Key
	}{
		{
			name: "totp",
			key: Key{
				Type:        TypeTOTP,
				Issuer:      "TestApp",
				AccountName: "user@example.com",
				Secret:      "JBSWY3DPEHPK3PXP",
				Algorithm:   AlgorithmSHA256,
				Digits:      DigitsEight,
				Period:      60,
			},
		},
		{
			name: "hotp",
			key: Key{
				Type:        TypeHOTP,
				Issuer:      "TestApp",
				AccountName: "user@example.com",
				Secret:      "JBSWY3DPEHPK3PXP",
				Algorithm:   AlgorithmSHA1,
				Digits:      DigitsSix,
				Counter:     42,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseKeyURI(tt.key.URI())
			if err != nil {
				t.Fatalf("ParseKeyURI returned error: %v", err)
			}
			if *parsed != tt.key {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *parsed, tt.key)
			}
		})
	}
}

func TestParseKeyURI_Defaults(t *testing.T) {
	k, err := ParseKeyURI("otpauth://totp/user@example.com?secret=JBSWY3DPEHPK3PXP")
	if err != nil {
		t.Fatalf("ParseKeyURI returned error: %v", err)
	}
	if k.AccountName != "user@example.com" {
		t.Errorf("account = %q, want user@example.com", k.AccountName)
	}
	if k.Algorithm != AlgorithmSHA1 || k.Digits != DigitsSix || k.Period != 30 {
		t.Errorf("defaults not applied: %+v", k)
	}
}

func TestParseKeyURI_Errors(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{"wrong scheme", "https://totp/user?secret=JBSWY3DPEHPK3PXP"},
		{"unknown type", "otpauth://motp/user?secret=JBSWY3DPEHPK3PXP"},
		{"missing secret", "otpauth://totp/user"},
		{"bad digits", "otpauth://totp/user?secret=JBSWY3DPEHPK3PXP&digits=12"},
		{"bad algorithm", "otpauth://totp/user?secret=JBSWY3DPEHPK3PXP&algorithm=MD5"},
		{"zero period", "otpauth://totp/user?secret=JBSWY3DPEHPK3PXP&period=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseKeyURI(tt.uri); !errors.Is(err, ErrInvalidKeyURI) {
				t.Errorf("ParseKeyURI(%q) error = %v, want %v", tt.uri, err, ErrInvalidKeyURI)
			}
		})
	}
}

func TestKeyImage(t *testing.T) {
	k := Key{
		Type:        TypeTOTP,
		Issuer:      "TestApp",
		AccountName: "user@example.com",
		Secret:      "JBSWY3DPEHPK3PXP",
		Algorithm:   AlgorithmSHA1,
		Digits:      DigitsSix,
		Period:      30,
	}

	img, err := k.Image(200, 200)
	if err != nil {
		t.Fatalf("Image returned error: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 200 {
		t.Errorf("image bounds = %dx%d, want 200x200", bounds.Dx(), bounds.Dy())
	}
}

func TestGenerateSecret(t *testing.T) {
	secret, err := GenerateSecret()
	if err != nil {
		t.Fatalf("failed to generate secret: %v", err)
	}
	if secret == "" {
		t.Fatal("expected non-empty secret")
	}

	// Base32 alphabet only, no padding
	if strings.Trim(secret, "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567") != "" {
		t.Errorf("secret %q is not unpadded base32", secret)
	}

	raw, err := DecodeSecret(secret)
	if err != nil {
		t.Fatalf("generated secret failed to decode: %v", err)
	}
	if len(raw) != 20 {
		t.Errorf("secret is %d bytes, want 20", len(raw))
	}

	second, err := GenerateSecret()
	if err != nil {
		t.Fatalf("failed to generate second secret: %v", err)
	}
	if secret == second {
		t.Error("generated secrets should be different")
	}
}

func TestDecodeSecret(t *testing.T) {
	want := []byte("12345678901234567890")

	tests := []struct {
		name  string
		input string
	}{
		{"canonical", "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"},
		{"lowercase", "gezdgnbvgy3tqojqgezdgnbvgy3tqojq"},
		{"spaced", "GEZD GNBV GY3T QOJQ GEZD GNBV GY3T QOJQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := DecodeSecret(tt.input)
			if err != nil {
				t.Fatalf("DecodeSecret returned error: %v", err)
			}
			if string(raw) != string(want) {
				t.Errorf("DecodeSecret = %q, want %q", raw, want)
			}
		})
	}

	if _, err := DecodeSecret("not base32 !!"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("DecodeSecret error = %v, want %v", err, ErrInvalidConfig)
	}

	if EncodeSecret(want) != "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ" {
		t.Errorf("EncodeSecret = %q", EncodeSecret(want))
	}
}
