package publisher

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/fekuna/omnipos-pos-service/internal/model"
	"github.com/google/uuid"
)

const EventSaleFinalized = "SaleFinalized"

// Producer is satisfied by broker.KafkaProducer.
type Producer interface {
	Publish(ctx context.Context, key, value []byte) error
}

type SaleFinalizedEvent struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	Payload   SalePayload `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type SalePayload struct {
	ID            int64             `json:"id"`
	SoldAt        time.Time         `json:"sold_at"`
	Total         string            `json:"total"`
	PaymentMethod string            `json:"payment_method"`
	Items         []SaleItemPayload `json:"items"`
}

type SaleItemPayload struct {
	ProductCode string `json:"product_code"`
	Quantity    int    `json:"quantity"`
	Subtotal    string `json:"subtotal"`
}

type SalePublisher struct {
	producer Producer
	now      func() time.Time
}

func NewSalePublisher(producer Producer) *SalePublisher {
	return &SalePublisher{producer: producer, now: time.Now}
}

// PublishSaleFinalized writes the event keyed by sale id.
func (p *SalePublisher) PublishSaleFinalized(ctx context.Context, s *model.Sale) error {
	event := SaleFinalizedEvent{
		EventID:   uuid.New().String(),
		EventType: EventSaleFinalized,
		Payload: SalePayload{
			ID:            s.ID,
			SoldAt:        s.SoldAt,
			Total:         s.Total.StringFixed(2),
			PaymentMethod: string(s.PaymentMethod),
			Items:         make([]SaleItemPayload, 0, len(s.Items)),
		},
		Timestamp: p.now().UTC(),
	}
	for _, item := range s.Items {
		event.Payload.Items = append(event.Payload.Items, SaleItemPayload{
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal.StringFixed(2),
		})
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.producer.Publish(ctx, []byte(strconv.FormatInt(s.ID, 10)), value)
}
