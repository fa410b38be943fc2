package publisher

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/fekuna/omnipos-pos-service/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureProducer struct {
	key, value []byte
}

func (c *captureProducer) Publish(ctx context.Context, key, value []byte) error {
	c.key, c.value = key, value
	return nil
}

func TestPublishSaleFinalized(t *testing.T) {
	producer := &captureProducer{}
	pub := NewSalePublisher(producer)
	pub.now = func() time.Time { return time.Date(2026, 10, 16, 18, 0, 1, 0, time.UTC) }

	p := &model.Product{Code: "A1", Name: "Caneca", Price: decimal.RequireFromString("12.5")}
	s, err := model.NewSale([]model.CartLine{model.NewCartLine(p, 2)}, model.PaymentPix, nil, time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	s.ID = 42

	require.NoError(t, pub.PublishSaleFinalized(context.Background(), s))
	assert.Equal(t, "42", string(producer.key))

	var event SaleFinalizedEvent
	require.NoError(t, json.Unmarshal(producer.value, &event))
	assert.Equal(t, EventSaleFinalized, event.EventType)
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, int64(42), event.Payload.ID)
	assert.Equal(t, "25.00", event.Payload.Total)
	assert.Equal(t, "pix", event.Payload.PaymentMethod)
	require.Len(t, event.Payload.Items, 1)
	assert.Equal(t, SaleItemPayload{ProductCode: "A1", Quantity: 2, Subtotal: "25.00"}, event.Payload.Items[0])
}
