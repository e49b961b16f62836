package reconcile

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"Nil", nil, KindNone},
		{"Authentication", ErrAuthenticationFailed, KindAuthenticationFailed},
		{"Unavailable", ErrUpstreamUnavailable, KindUpstreamUnavailable},
		{"Upstream", ErrUpstreamError, KindUpstreamError},
		{"Decode", ErrDecode, KindDecodeError},
		{"Storage", ErrStorageUnavailable, KindStorageUnavailable},
		{"Wrapped storage", fmt.Errorf("insert order: %w", ErrStorageUnavailable), KindStorageUnavailable},
		{"Unknown", errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestWrap_KeepsKindAndCause(t *testing.T) {
	err := Wrap(ErrUpstreamUnavailable, "fetch snapshot: %w", context.DeadlineExceeded)

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, KindUpstreamUnavailable, KindOf(err))
	assert.Contains(t, err.Error(), "upstream unavailable")
	assert.Contains(t, err.Error(), "fetch snapshot")
}

func TestSourceError(t *testing.T) {
	assert.NoError(t, SourceError(nil))

	cause := errors.New("dial tcp: connection refused")
	err := SourceError(cause)
	assert.Equal(t, KindUpstreamUnavailable, KindOf(err))
	assert.ErrorIs(t, err, cause)

	decodeErr := Wrap(ErrDecode, "bad body")
	assert.Equal(t, decodeErr, SourceError(decodeErr))
}
