package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNotAnAdmin is returned when a fund is requested for a user that
	// does not carry the admin role.
	ErrNotAnAdmin = errors.New("user is not an admin")

	ErrValidation = errors.New("validation failed")
)
