package apperr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"plain error is internal", errors.New("boom"), Internal},
		{"deadline is internal", context.DeadlineExceeded, Internal},
		{"validation", Validation("bad", nil), ValidationFailed},
		{"wrapped not found", fmt.Errorf("lookup: %w", NotFoundf("Goal not found.")), NotFound},
		{"invalid date", InvalidDateField("date", "nope"), InvalidDate},
		{"unauthenticated", Unauthorized("no token"), Unauthenticated},
		{"conflict", New(Conflict, "exists"), Conflict},
		{"rate limited", New(RateLimited, "slow down"), RateLimited},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := context.DeadlineExceeded
	err := Wrap(Internal, "failed to load goals", cause)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "failed to load goals: context deadline exceeded", err.Error())

	got, ok := As(fmt.Errorf("outer: %w", err))
	require.True(t, ok)
	assert.Equal(t, "failed to load goals", got.Message)
}

func TestInvalidDateFieldNamesField(t *testing.T) {
	err := InvalidDateField("startDate", "yesterday")

	assert.Equal(t, "Invalid date format", err.Message)
	assert.Contains(t, err.Fields, "startDate")
}

func TestClientError(t *testing.T) {
	assert.False(t, Internal.ClientError())
	for _, k := range []Kind{Unauthenticated, ValidationFailed, NotFound, InvalidDate, Conflict} {
		assert.True(t, k.ClientError(), k.String())
	}
}

func TestIsNil(t *testing.T) {
	assert.False(t, Is(nil, Internal))
}
