package models

import "errors"

var (
	ErrUnknownCommand     = errors.New("unknown command")
	ErrUnknownParameter   = errors.New("unknown command parameter")
	ErrUnexpectedResponse = errors.New("response does not match the command schema")
	ErrInvalidRequest     = errors.New("invalid command request")
)
