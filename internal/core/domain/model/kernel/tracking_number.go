package kernel

import (
	"crypto/rand"
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

const (
	// trackingNumberPrefix is prepended to every generated tracking number.
	trackingNumberPrefix = "TRK-"
	// trackingNumberLength is the number of random characters after the prefix.
	trackingNumberLength = 20
	// trackingNumberAlphabet is the base32 alphabet used for tracking numbers.
	// All characters are URL-safe; 20 characters of base32 carry 100 bits of
	// entropy, enough for the number to act as the sole authorization token
	// for the public tracking endpoint.
	trackingNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
)

// ErrTrackingNumberIsNotConstructed indicates a TrackingNumber that was not
// created via NewTrackingNumber or ParseTrackingNumber.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking number must be created via NewTrackingNumber or ParseTrackingNumber")

// TrackingNumber is the public identifier of a delivery. It is globally unique,
// immutable, never reused, and non-guessable: knowing a tracking number is the
// only credential required to read the public tracking view of its delivery.
//
// Example:
//
//	tn, err := kernel.NewTrackingNumber()
//	if err != nil {
//	    // crypto/rand failure, not recoverable per-request
//	}
//	fmt.Println(tn) // e.g. TRK-Q7GV3ZJ2M5WXA4BNUCK6
type TrackingNumber struct {
	value string
}

// NewTrackingNumber generates a fresh random tracking number.
// Randomness comes from crypto/rand; an error is returned only if the
// system entropy source fails.
func NewTrackingNumber() (TrackingNumber, error) {
	buf := make([]byte, trackingNumberLength)
	if _, err := rand.Read(buf); err != nil {
		return TrackingNumber{}, fmt.Errorf("generating tracking number: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(trackingNumberPrefix)
	for _, b := range buf {
		sb.WriteByte(trackingNumberAlphabet[int(b)%len(trackingNumberAlphabet)])
	}

	return TrackingNumber{value: sb.String()}, nil
}

// ParseTrackingNumber validates an externally supplied tracking number string.
// Used when reconstructing deliveries from persistence and when handling
// public tracking lookups.
func ParseTrackingNumber(s string) (TrackingNumber, error) {
	if !strings.HasPrefix(s, trackingNumberPrefix) {
		return TrackingNumber{}, errs.NewValueIsInvalidError("trackingNumber")
	}

	body := strings.TrimPrefix(s, trackingNumberPrefix)
	if len(body) != trackingNumberLength {
		return TrackingNumber{}, errs.NewValueIsInvalidError("trackingNumber")
	}

	for _, r := range body {
		if !strings.ContainsRune(trackingNumberAlphabet, r) {
			return TrackingNumber{}, errs.NewValueIsInvalidError("trackingNumber")
		}
	}

	return TrackingNumber{value: s}, nil
}

// String returns the full tracking number including the prefix.
// This method implements the fmt.Stringer interface.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers for equality.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate checks if the TrackingNumber was properly constructed.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}
