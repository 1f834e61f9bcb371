package provider

import "errors"

// Failure modes callers are expected to distinguish with errors.Is.
var (
	// ErrUnknownSymbol means the provider has no data for the symbol.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrRateLimited means the provider rejected the call for quota reasons.
	ErrRateLimited = errors.New("provider rate limit reached")
	// ErrMalformedPayload means the response could not be parsed.
	ErrMalformedPayload = errors.New("malformed provider response")
)
