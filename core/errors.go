package core

import "errors"

var (
	ErrInvalidArgs        = errors.New("invalid args")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Lookup errors: a missing row is a normal outcome for every Get, never a
// store fault.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrPriorityNotFound = errors.New("priority not found")
	ErrStatusNotFound   = errors.New("status not found")
	ErrUserNotFound     = errors.New("user not found")
)
