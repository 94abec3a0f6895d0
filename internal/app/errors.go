package app

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailure is matched by any error terminating a leaderboard load.
	ErrFetchFailure = errors.New("failed to load data")

	// ErrOutOfRange is matched by errors returned for pages outside of a leaderboard.
	ErrOutOfRange = errors.New("page out of range")

	// ErrCommitCountUnavailable is returned when total commit count can't be read from pagination metadata.
	ErrCommitCountUnavailable = errors.New("commit count unavailable")

	// ErrNoSnapshot is returned when no leaderboard snapshot was recorded for repository.
	ErrNoSnapshot = errors.New("no snapshot recorded")
)

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	type invalidReqErr interface {
		IsInvalidRequest() bool
	}

	var ire invalidReqErr
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// TooManyRequestsError is returned when outgoing calls can't be made because of rate limits.
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequestsError checks if given error is caused by outgoing rate limit.
func IsTooManyRequestsError(err error) bool {
	var tme TooManyRequestsError
	return errors.As(err, &tme)
}

// NotFoundError is returned when contributor is not present on the leaderboard.
type NotFoundError struct {
	Login string
}

// Error implements error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("contributor %s not found on leaderboard", e.Login)
}

// IsNotFoundError checks if given error is caused by missing contributor.
func IsNotFoundError(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// OutOfRangeError is returned for page numbers outside of <1..TotalPages>.
type OutOfRangeError struct {
	Page       int
	TotalPages int
}

// Error implements error interface
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("page %d out of range <1..%d>", e.Page, e.TotalPages)
}

// Is makes OutOfRangeError match ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// LoadError is a terminal leaderboard load failure.
// Stage names the request that failed.
type LoadError struct {
	Repo  Repo
	Stage string
	Err   error
}

// Error implements error interface
func (e *LoadError) Error() string {
	return fmt.Sprintf("%v: %s %s: %v", ErrFetchFailure, e.Repo, e.Stage, e.Err)
}

// Unwrap returns the cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is makes LoadError match ErrFetchFailure.
func (e *LoadError) Is(target error) bool {
	return target == ErrFetchFailure
}
