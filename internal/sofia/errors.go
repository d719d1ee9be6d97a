package sofia

import "errors"

// Domain-specific errors for the assistant dialog package.
var (
	ErrUnknownCommand = errors.New("unknown command id")
	ErrUnknownAction  = errors.New("unknown ui action")
	ErrEmptyCommand   = errors.New("command is empty")
)
