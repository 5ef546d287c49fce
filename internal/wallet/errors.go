package wallet

import "errors"

var (
	// ErrProviderAbsent reports that no account provider is installed.
	// It is a precondition shown to the user, never a failed attempt.
	ErrProviderAbsent = errors.New("wallet: account provider not detected")

	// ErrConnectionRejected wraps any failure returned by the provider while
	// the account request was in flight, including a user decline.
	ErrConnectionRejected = errors.New("wallet: connection rejected")

	// ErrInvalidAccountResult reports a provider response that carried no
	// usable account address.
	ErrInvalidAccountResult = errors.New("wallet: invalid account result")
)
