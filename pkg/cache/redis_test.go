package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisClientJSONRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(&Config{Addr: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	type level struct {
		Name     string
		Quantity int
	}

	var got []level
	hit, err := client.GetJSON(ctx, "reports:top_stock", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, client.SetJSON(ctx, "reports:top_stock", []level{{"Caneca", 12}}, time.Minute))
	hit, err = client.GetJSON(ctx, "reports:top_stock", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []level{{"Caneca", 12}}, got)

	mr.FastForward(2 * time.Minute)
	hit, err = client.GetJSON(ctx, "reports:top_stock", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestNewRedisClientFailsWhenUnreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = NewRedisClient(&Config{Addr: addr})
	assert.Error(t, err)
}
