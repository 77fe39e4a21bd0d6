package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to command failures so callers and log pipelines can
// tell outcomes apart without matching on message strings.
const (
	CodeCommandInvalid  = "SITEBUILDER_COMMAND_INVALID"
	CodeCommandCanceled = "SITEBUILDER_COMMAND_CANCELED"
	CodeCommandTimedOut = "SITEBUILDER_COMMAND_TIMED_OUT"
	CodeCommandFailed   = "SITEBUILDER_COMMAND_FAILED"
)

// Already-categorized errors pass through untouched so a handler calling
// another handler does not stack wrappers.

func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command message rejected").
		WithTextCode(CodeCommandInvalid)
}

func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	message, code := "command context error", CodeCommandFailed
	switch {
	case errors.Is(err, context.Canceled):
		message, code = "command canceled", CodeCommandCanceled
	case errors.Is(err, context.DeadlineExceeded):
		message, code = "command timed out", CodeCommandTimedOut
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, message).WithTextCode(code)
}

func wrapExecuteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command failed").
		WithTextCode(CodeCommandFailed)
}
