package errors

import (
	stdErrors "errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"insufficient points", ErrInsufficientPoints},
		{"invalid amount", ErrInvalidAmount},
		{"below minimum payout", ErrBelowMinimumPayout},
		{"already resolved", ErrAlreadyResolved},
		{"self follow", ErrSelfFollow},
		{"forbidden", ErrForbidden},
		{"unknown award reason", ErrUnknownAwardReason},
		{"missing event ref", ErrMissingEventRef},
		{"invalid wallet", ErrInvalidWallet},
		{"empty content", ErrEmptyContent},
		{"invalid upload", ErrInvalidUpload},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}
