package reconcile

import (
	"errors"
	"fmt"
)

// Failure kinds surfaced by a reconciliation pass. Adapters wrap their causes with
// these sentinels so callers can distinguish them with errors.Is.
var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrUpstreamUnavailable  = errors.New("upstream unavailable")
	ErrUpstreamError        = errors.New("upstream error")
	ErrDecode               = errors.New("decode error")
	ErrStorageUnavailable   = errors.New("storage unavailable")
)

// ErrorKind is the stable, caller-visible name of a failure kind.
type ErrorKind string

const (
	KindNone                 ErrorKind = ""
	KindAuthenticationFailed ErrorKind = "AUTHENTICATION_FAILED"
	KindUpstreamUnavailable  ErrorKind = "UPSTREAM_UNAVAILABLE"
	KindUpstreamError        ErrorKind = "UPSTREAM_ERROR"
	KindDecodeError          ErrorKind = "DECODE_ERROR"
	KindStorageUnavailable   ErrorKind = "STORAGE_UNAVAILABLE"
	KindInternal             ErrorKind = "INTERNAL"
)

// KindOf classifies err into one of the failure kinds.
// A nil error yields KindNone; an unclassified error yields KindInternal.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrAuthenticationFailed):
		return KindAuthenticationFailed
	case errors.Is(err, ErrUpstreamUnavailable):
		return KindUpstreamUnavailable
	case errors.Is(err, ErrUpstreamError):
		return KindUpstreamError
	case errors.Is(err, ErrDecode):
		return KindDecodeError
	case errors.Is(err, ErrStorageUnavailable):
		return KindStorageUnavailable
	default:
		return KindInternal
	}
}

// Wrap attaches a failure kind to cause. The result matches both the kind sentinel
// and cause under errors.Is.
func Wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %w", kind, fmt.Errorf(format, args...))
}

// SourceError classifies a snapshot failure. Errors without a kind are treated as
// the upstream being unavailable; classified errors are returned unchanged.
func SourceError(err error) error {
	if err != nil && KindOf(err) == KindInternal {
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	return err
}
