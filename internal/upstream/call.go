// Package upstream implements the resilient call policy that is the single
// surface through which the orchestration core reaches external collaborators.
package upstream

import (
	"context"

	"shelter/internal/errors"
)

// ErrUnavailable is returned when a collaborator stays unreachable after the
// retry. It deliberately carries no cause: raw connectivity failures never
// reach callers.
var ErrUnavailable = errors.New("upstream unavailable")

// ConnectivityError marks a transient transport failure. A call failing with
// it may succeed when retried.
type ConnectivityError struct {
	Err error
}

// Error implements the error interface.
func (e *ConnectivityError) Error() string {
	return "upstream unreachable: " + e.Err.Error()
}

// Unwrap returns the underlying transport error.
func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// Connectivity classifies err as a transient connectivity failure.
func Connectivity(err error) error {
	return &ConnectivityError{Err: err}
}

// DomainError marks a permanent collaborator failure (not found, invalid
// request, rejected session). Retrying cannot help.
type DomainError struct {
	Err error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the typed cause, usually a domain/service sentinel.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Domain classifies err as a permanent domain failure.
func Domain(err error) error {
	return &DomainError{Err: err}
}

// IsDomain reports whether err is classified as a permanent domain failure.
func IsDomain(err error) bool {
	var domainErr *DomainError

	return errors.As(err, &domainErr)
}

// Call executes one collaborator operation under the uniform retry policy:
// a connectivity failure is retried once, a second connectivity failure
// becomes ErrUnavailable, a domain failure propagates unchanged on first
// occurrence, and a cancelled context aborts without retrying.
func Call[T any](ctx context.Context, op func(context.Context) (T, error)) (T, error) {
	var zero T

	for attempt := 0; ; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		var connErr *ConnectivityError
		if !errors.As(err, &connErr) {
			// Permanent or unclassified failures propagate unchanged.
			return zero, err
		}

		if ctx.Err() != nil {
			return zero, errors.WithStack(ctx.Err())
		}

		if attempt > 0 {
			return zero, ErrUnavailable
		}
	}
}

// CallVoid executes a result-less collaborator operation under the same policy.
func CallVoid(ctx context.Context, op func(context.Context) error) error {
	_, err := Call(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})

	return err
}
