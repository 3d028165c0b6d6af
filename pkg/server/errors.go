package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
)

type ErrorCode uint

const (
	ErrUnknown ErrorCode = iota
	ErrBadParamInput
	ErrUnavailable
	ErrDeadlineExceeded
	ErrCanceled
	ErrInternalServerError
)

// StatusClientClosedRequest nginx's non standard status for a request the client gave up on.
const StatusClientClosedRequest = 499

type Error struct {
	orig error
	msg  string
	code ErrorCode
}

func WrapErrorf(orig error, code ErrorCode, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func NewErrorf(code ErrorCode, format string, a ...interface{}) error {
	return WrapErrorf(nil, code, format, a...)
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func (e *Error) Code() ErrorCode {
	return e.code
}

// Message the user facing part of the error, without the wrapped cause.
func (e *Error) Message() string {
	return e.msg
}

func (c ErrorCode) String() string {
	switch c {
	case ErrBadParamInput:
		return "bad_param_input"
	case ErrUnavailable:
		return "unavailable"
	case ErrDeadlineExceeded:
		return "deadline_exceeded"
	case ErrCanceled:
		return "canceled"
	case ErrInternalServerError:
		return "internal"
	default:
		return "unknown"
	}
}

// CodeOf code of the outermost server.Error in err's chain. context errors map to their own codes.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrUnknown
	}
	var serr *Error
	if errors.As(err, &serr) {
		return serr.code
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ErrDeadlineExceeded
	case errors.Is(err, context.Canceled):
		return ErrCanceled
	}
	return ErrUnknown
}

// WrapContextErr wraps err with the code matching ctx's state, or fallback when ctx is still live.
func WrapContextErr(ctx context.Context, err error, fallback ErrorCode, format string, a ...interface{}) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		return WrapErrorf(err, ErrDeadlineExceeded, format, a...)
	case errors.Is(ctx.Err(), context.Canceled), errors.Is(err, context.Canceled):
		return WrapErrorf(err, ErrCanceled, format, a...)
	}
	return WrapErrorf(err, fallback, format, a...)
}

func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case ErrBadParamInput:
		return http.StatusBadRequest
	case ErrUnavailable:
		return http.StatusServiceUnavailable
	case ErrDeadlineExceeded:
		return http.StatusGatewayTimeout
	case ErrCanceled:
		return StatusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

func GRPCCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	switch CodeOf(err) {
	case ErrBadParamInput:
		return codes.InvalidArgument
	case ErrUnavailable:
		return codes.Unavailable
	case ErrDeadlineExceeded:
		return codes.DeadlineExceeded
	case ErrCanceled:
		return codes.Canceled
	case ErrInternalServerError:
		return codes.Internal
	default:
		return codes.Unknown
	}
}
