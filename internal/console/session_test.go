package console_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchant-console/internal/auth"
	"merchant-console/internal/console"
)

func TestSession_StartAcquiresTokenOnce(t *testing.T) {
	tokens := &MockTokenSource{}
	presenter := &MockPresenter{}
	session := console.NewSession(tokens, presenter, testLogger())

	require.Equal(t, console.SessionLoading, session.State())
	_, ok := session.Token()
	assert.False(t, ok, "no token before bootstrap")

	require.NoError(t, session.Start(context.Background()))

	assert.Equal(t, console.SessionReady, session.State())
	token, ok := session.Token()
	require.True(t, ok)
	assert.Equal(t, "test-token", token.AccessToken)
	assert.Equal(t, 1, tokens.Acquires())

	// Starting a ready session does not re-acquire.
	require.NoError(t, session.Start(context.Background()))
	assert.Equal(t, 1, tokens.Acquires())
}

func TestSession_FailureSurfacesErrorAndBlocksToken(t *testing.T) {
	authErr := errors.New("invalid client credentials")
	tokens := &MockTokenSource{
		AcquireFn: func(ctx context.Context) (auth.Token, error) {
			return auth.Token{}, authErr
		},
	}
	presenter := &MockPresenter{}
	session := console.NewSession(tokens, presenter, testLogger())

	err := session.Start(context.Background())

	require.Error(t, err)
	assert.Equal(t, console.SessionFailed, session.State())
	assert.ErrorIs(t, session.Err(), authErr)

	_, ok := session.Token()
	assert.False(t, ok, "failed session must not hand out a token")

	failures := presenter.NotificationsOf(console.NoteError)
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0].Message, "invalid client credentials")
}

func TestSession_UserRetryAfterFailure(t *testing.T) {
	fail := true
	tokens := &MockTokenSource{
		AcquireFn: func(ctx context.Context) (auth.Token, error) {
			if fail {
				return auth.Token{}, errors.New("provider unavailable")
			}
			return auth.Token{AccessToken: "second-try"}, nil
		},
	}
	session := console.NewSession(tokens, &MockPresenter{}, testLogger())

	require.Error(t, session.Start(context.Background()))
	assert.Equal(t, console.SessionFailed, session.State())

	// No automatic retry happened in between.
	assert.Equal(t, 1, tokens.Acquires())

	fail = false
	require.NoError(t, session.Start(context.Background()))
	assert.Equal(t, console.SessionReady, session.State())

	token, ok := session.Token()
	require.True(t, ok)
	assert.Equal(t, "second-try", token.AccessToken)
}
