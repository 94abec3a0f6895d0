package app

import (
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInvalidRequestError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsInvalidRequestError(stdErr))

	irErr := InvalidRequestError("invalid request")
	assert.True(t, IsInvalidRequestError(irErr))

	wrapperErr := fmt.Errorf("wrapping message: %w", irErr)
	assert.True(t, IsInvalidRequestError(wrapperErr))
}

func TestLoadErrorMatchesFetchFailure(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("loading: %w", &LoadError{
		Repo:  Repo{Owner: "o", Name: "r"},
		Stage: "contributors",
		Err:   cause,
	})

	assert.True(t, errors.Is(err, ErrFetchFailure))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrOutOfRange))
	assert.Contains(t, err.Error(), "o/r contributors")
}

func TestOutOfRangeError(t *testing.T) {
	var err error = &OutOfRangeError{Page: 4, TotalPages: 3}

	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.False(t, IsInvalidRequestError(err))
	assert.Equal(t, "page 4 out of range <1..3>", err.Error())
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(fmt.Errorf("x: %w", &NotFoundError{Login: "ghost"})))
	assert.False(t, IsNotFoundError(errors.New("ghost")))
}

func TestIsTooManyRequestsError(t *testing.T) {
	assert.False(t, IsTooManyRequestsError(errors.New("simple error")))
	assert.True(t, IsTooManyRequestsError(TooManyRequestsError("limit")))

	// Transport errors reach the service wrapped by http client and load stage.
	err := &LoadError{
		Repo:  Repo{Owner: "o", Name: "r"},
		Stage: "repository",
		Err: fmt.Errorf("getting repository: %w", &url.Error{
			Op:  "Get",
			URL: "https://api.github.com/repos/o/r",
			Err: TooManyRequestsError("waiting for transport limiter"),
		}),
	}
	assert.True(t, IsTooManyRequestsError(err))
	assert.True(t, errors.Is(err, ErrFetchFailure))
}
