package client

import "errors"

var (
	ErrNoCommand        = errors.New("no command given")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingArgument  = errors.New("missing argument")
	ErrTooManyArguments = errors.New("too many arguments")
	ErrInvalidAmount    = errors.New("amount must be a positive decimal")
	ErrInvalidID        = errors.New("id must be a positive integer")
	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD or RFC3339")
)
