package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	codeValidationFailed = "COMMAND_VALIDATION_FAILED"
	codeContextCanceled  = "COMMAND_CONTEXT_CANCELED"
	codeContextTimeout   = "COMMAND_CONTEXT_TIMEOUT"
	codeContextError     = "COMMAND_CONTEXT_ERROR"
	codeExecutionFailed  = "COMMAND_EXECUTION_FAILED"
)

// wrapValidationError categorises message validation failures. Errors already
// wrapped upstream pass through untouched so categories are not overwritten.
func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode(codeValidationFailed)
}

func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}

	message := "command context error"
	code := codeContextError
	switch {
	case errors.Is(err, context.Canceled):
		message = "command execution cancelled"
		code = codeContextCanceled
	case errors.Is(err, context.DeadlineExceeded):
		message = "command execution deadline exceeded"
		code = codeContextTimeout
	}

	return goerrors.Wrap(err, goerrors.CategoryCommand, message).WithTextCode(code)
}

func wrapExecuteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(codeExecutionFailed)
}
