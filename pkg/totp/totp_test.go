package totp

import (
	"errors"
	"testing"
	"time"

	otp "github.com/jhahn/go-otp/internal/otpshared"
)

// RFC 6238 Appendix B uses an ASCII seed repeated to the HMAC block-friendly
// length of each algorithm.
var (
	seedSHA1   = []byte("12345678901234567890")
	seedSHA256 = []byte("12345678901234567890123456789012")
	seedSHA512 = []byte("1234567890123456789012345678901234567890123456789012345678901234")
)

// TestGenerateCodeCustom_RFC6238Vectors verifies the reference values from
// RFC 6238 Appendix B for all three algorithms.
func TestGenerateCodeCustom_RFC6238Vectors(t *testing.T) {
	tests := []struct {
		ts   int64
		alg  otp.Algorithm
		want string
	}{
		{59, otp.AlgorithmSHA1, "94287082"},
		{59, otp.AlgorithmSHA256, "46119246"},
		{59, otp.AlgorithmSHA512, "90693936"},
		{1111111109, otp.AlgorithmSHA1, "07081804"},
		{1111111109, otp.AlgorithmSHA256, "68084774"},
		{1111111109, otp.AlgorithmSHA512, "25091201"},
		{1111111111, otp.AlgorithmSHA1, "14050471"},
		{1111111111, otp.AlgorithmSHA256, "67062674"},
		{1111111111, otp.AlgorithmSHA512, "99943326"},
		{1234567890, otp.AlgorithmSHA1, "89005924"},
		{1234567890, otp.AlgorithmSHA256, "91819424"},
		{1234567890, otp.AlgorithmSHA512, "93441116"},
		{2000000000, otp.AlgorithmSHA1, "69279037"},
		{2000000000, otp.AlgorithmSHA256, "90698825"},
		{2000000000, otp.AlgorithmSHA512, "38618901"},
		{20000000000, otp.AlgorithmSHA1, "65353130"},
		{20000000000, otp.AlgorithmSHA256, "77737706"},
		{20000000000, otp.AlgorithmSHA512, "47863826"},
	}

	seeds := map[otp.Algorithm][]byte{
		otp.AlgorithmSHA1:   seedSHA1,
		otp.AlgorithmSHA256: seedSHA256,
		otp.AlgorithmSHA512: seedSHA512,
	}

	for _, tt := range tests {
		code, err := GenerateCodeCustom(seeds[tt.alg], time.Unix(tt.ts, 0), GenerateOpts{
			Period:    30,
			Digits:    otp.DigitsEight,
			Algorithm: tt.alg,
		})
		if err != nil {
			t.Fatalf("GenerateCodeCustom(t=%d, %s) returned error: %v", tt.ts, tt.alg, err)
		}
		if code != tt.want {
			t.Errorf("GenerateCodeCustom(t=%d, %s) = %q, want %q", tt.ts, tt.alg, code, tt.want)
		}
	}
}

// TestCounter verifies the time-step mapping, including the epoch offset and
// the floor at step boundaries.
func TestCounter(t *testing.T) {
	tests := []struct {
		name   string
		ts     int64
		period uint
		epoch  int64
		want   uint64
	}{
		{"RFC t=59", 59, 30, 0, 1},
		{"RFC t=1111111109", 1111111109, 30, 0, 37037036},
		{"step start", 60, 30, 0, 2},
		{"step end", 89, 30, 0, 2},
		{"epoch shift", 159, 30, 100, 1},
		{"before epoch", 50, 30, 100, 0},
		{"sub-second floor ignored", 29, 30, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Counter(time.Unix(tt.ts, 0), tt.period, tt.epoch); got != tt.want {
				t.Errorf("Counter(%d, %d, %d) = %d, want %d", tt.ts, tt.period, tt.epoch, got, tt.want)
			}
		})
	}
}

func TestGenerateCodeCustom_InvalidStep(t *testing.T) {
	_, err := GenerateCodeCustom(seedSHA1, time.Unix(59, 0), GenerateOpts{
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if !errors.Is(err, otp.ErrInvalidStep) {
		t.Errorf("GenerateCodeCustom error = %v, want %v", err, otp.ErrInvalidStep)
	}

	_, _, err = ValidateCustom("94287082", time.Unix(59, 0), seedSHA1, ValidateOpts{
		Digits:    otp.DigitsEight,
		Algorithm: otp.AlgorithmSHA1,
	})
	if !errors.Is(err, otp.ErrInvalidStep) {
		t.Errorf("ValidateCustom error = %v, want %v", err, otp.ErrInvalidStep)
	}
}

// TestValidateCustom_SkewWindow verifies that clock skew within the window
// is tolerated and the matched time step is reported.
func TestValidateCustom_SkewWindow(t *testing.T) {
	reference := time.Unix(1111111109, 0) // step 37037036
	opts := ValidateOpts{
		Period:    30,
		Digits:    otp.DigitsEight,
		Algorithm: otp.AlgorithmSHA1,
		Window:    1,
	}

	tests := []struct {
		name      string
		codeTime  time.Time
		wantMatch bool
		wantStep  uint64
	}{
		{"current step", reference, true, 37037036},
		{"next step", reference.Add(30 * time.Second), true, 37037037},
		{"previous step", reference.Add(-30 * time.Second), true, 37037035},
		{"two steps ahead", reference.Add(60 * time.Second), false, 0},
		{"two steps behind", reference.Add(-60 * time.Second), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := GenerateCodeCustom(seedSHA1, tt.codeTime, GenerateOpts{
				Period:    30,
				Digits:    otp.DigitsEight,
				Algorithm: otp.AlgorithmSHA1,
			})
			if err != nil {
				t.Fatalf("GenerateCodeCustom returned error: %v", err)
			}

			matched, ok, err := ValidateCustom(code, reference, seedSHA1, opts)
			if err != nil {
				t.Fatalf("ValidateCustom returned error: %v", err)
			}
			if ok != tt.wantMatch {
				t.Fatalf("ValidateCustom ok = %v, want %v", ok, tt.wantMatch)
			}
			if ok && matched != tt.wantStep {
				t.Errorf("ValidateCustom matched step %d, want %d", matched, tt.wantStep)
			}
		})
	}
}

func TestValidateCustom_InvalidWindow(t *testing.T) {
	_, _, err := ValidateCustom("94287082", time.Unix(59, 0), seedSHA1, ValidateOpts{
		Period:    30,
		Digits:    otp.DigitsEight,
		Algorithm: otp.AlgorithmSHA1,
		Window:    -1,
	})
	if !errors.Is(err, otp.ErrInvalidWindow) {
		t.Errorf("ValidateCustom error = %v, want %v", err, otp.ErrInvalidWindow)
	}
}

func TestValidate(t *testing.T) {
	at := time.Unix(1111111109, 0)
	code, err := GenerateCode(seedSHA1, at)
	if err != nil {
		t.Fatalf("GenerateCode returned error: %v", err)
	}
	if !Validate(code, at, seedSHA1) {
		t.Error("Validate rejected a freshly generated code")
	}
	if Validate(code, at.Add(30*time.Second), seedSHA1) {
		t.Error("Validate accepted a code outside the exact step")
	}
}
