package lambda

import "errors"

var (
	ErrInvalidBody  = errors.New("invalid base64 request body")
	ErrInvalidEvent = errors.New("invalid API Gateway event")
)
