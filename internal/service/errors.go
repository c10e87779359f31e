package service

import "errors"

var (
	ErrVersionIsNotSpecified    = errors.New("app version is not specified")
	ErrIntentNameIsNotSpecified = errors.New("primary intent name is not specified")
)
