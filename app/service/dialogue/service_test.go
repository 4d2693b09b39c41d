package dialogue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRegistry(t *testing.T) {
	t.Parallel()

	svc := NewService(&stubGenerator{}, allValidStub(), &stubStore{})

	id, session := svc.CreateSession()
	require.NotEmpty(t, id)

	got, ok := svc.Session(id)
	assert.True(t, ok)
	assert.Same(t, session, got)

	_, ok = svc.Session("unknown-id")
	assert.False(t, ok)
}

func TestSessionsAreIndependent(t *testing.T) {
	t.Parallel()

	svc := NewService(&stubGenerator{}, allValidStub(), &stubStore{})

	_, first := svc.CreateSession()
	_, second := svc.CreateSession()

	first.Handle(context.Background(), "hello")

	assert.Equal(t, StateCollectingName, first.State())
	assert.Equal(t, StateIntroduction, second.State())
}
