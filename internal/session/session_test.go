package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextRoundTrip(t *testing.T) {
	s := &Session{UserName: "alice", Token: "t0k3n"}
	ctx := NewContext(context.Background(), s)

	got, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, s, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}

func TestAnonymous(t *testing.T) {
	var nilSession *Session
	assert.True(t, nilSession.Anonymous())
	assert.True(t, (&Session{}).Anonymous())
	assert.False(t, (&Session{UserName: "bob"}).Anonymous())
}
