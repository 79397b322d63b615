package provider

import (
	"errors"
	"fmt"
)

var (
	ErrWorkflowNotFound = errors.New("workflow not found")
	ErrRateLimited      = errors.New("rate limited")
	ErrNetworkTimeout   = errors.New("network timeout")
)

// UserError wraps errors with user-friendly messages
type UserError struct {
	Message string
	Hint    string
	Err     error
}

func (e *UserError) Error() string {
	msg := e.Message
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n\nDetails: %v", e.Err)
	}
	return msg
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// WrapError converts API errors to user-friendly messages
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrWorkflowNotFound) {
		return &UserError{
			Message: "Nightly workflow not found",
			Hint:    "Check that the monitored repository still defines a workflow whose name or path contains \"nightly build\".",
			Err:     err,
		}
	}

	if errors.Is(err, ErrRateLimited) {
		return &UserError{
			Message: "GitHub API rate limit exceeded",
			Hint:    "Unauthenticated requests share a low hourly quota per IP. Wait for the window to reset; cached statistics remain usable.",
			Err:     err,
		}
	}

	return err
}
