package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"
)

func TestGetSessionID(t *testing.T) {
	assert.Equal(t, DefaultID, GetSessionID(context.Background()))

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(Header, " terminal-2 "))
	assert.Equal(t, "terminal-2", GetSessionID(ctx))

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs(Header, ""))
	assert.Equal(t, DefaultID, GetSessionID(ctx))
}
