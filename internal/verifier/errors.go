package verifier

import "errors"

var (
	ErrMissingSignature    = errors.New("signature headers are required")
	ErrInvalidCertURL      = errors.New("invalid signature certificate url")
	ErrCertificateFetch    = errors.New("could not fetch signing certificate")
	ErrInvalidCertificate  = errors.New("invalid signing certificate")
	ErrInvalidSignature    = errors.New("invalid signature")
	ErrInvalidTimestamp    = errors.New("invalid request timestamp")
	ErrTimestampExpired    = errors.New("request timestamp outside allowed skew")
	ErrApplicationMismatch = errors.New("request application id does not match")
)
