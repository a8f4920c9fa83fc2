package session_test

import (
	"context"
	"testing"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/pkg/errs"
	"ootdverse/internal/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHeader(t *testing.T) {
	id := kernel.NewUUID()

	s, err := session.FromHeader("  " + id.String() + " ")
	require.NoError(t, err)
	assert.True(t, id.IsEqual(s.UserID))

	_, err = session.FromHeader("")
	require.ErrorIs(t, err, session.ErrNoSession)

	_, err = session.FromHeader("not-a-uuid")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestContext(t *testing.T) {
	_, err := session.FromContext(context.Background())
	require.ErrorIs(t, err, session.ErrNoSession)

	want := session.Session{UserID: kernel.NewUUID()}
	got, err := session.FromContext(session.WithSession(context.Background(), want))

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
