package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/fekuna/omnipos-pos-service/internal/product"
	"github.com/fekuna/omnipos-pos-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const EventStockReceived = "StockReceived"

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// RestockListener applies goods-received events from the back office to the
// catalog stock.
type RestockListener struct {
	consumer MessageReader
	uc       product.UseCase
	logger   logger.ZapLogger
	backoff  time.Duration
	maxWait  time.Duration
}

func NewRestockListener(consumer MessageReader, uc product.UseCase, log logger.ZapLogger) *RestockListener {
	return &RestockListener{
		consumer: consumer,
		uc:       uc,
		logger:   log,
		backoff:  time.Second,
		maxWait:  30 * time.Second,
	}
}

func (l *RestockListener) Start(ctx context.Context) {
	l.logger.Info("Starting restock listener")
	wait := l.backoff
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping restock listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err), zap.Duration("retry_in", wait))
				select {
				case <-ctx.Done():
					return
				case <-time.After(wait):
				}
				wait = min(wait*2, l.maxWait)
				continue
			}
			wait = l.backoff
			l.processMessage(ctx, msg.Value)
		}
	}
}

type StockReceivedEvent struct {
	EventID   string         `json:"event_id"`
	EventType string         `json:"event_type"`
	Payload   RestockPayload `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

type RestockPayload struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

func (l *RestockListener) processMessage(ctx context.Context, value []byte) {
	var event StockReceivedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != EventStockReceived {
		return
	}

	if _, err := l.uc.Restock(ctx, event.Payload.Code, event.Payload.Quantity); err != nil {
		fields := []zap.Field{
			zap.String("event_id", event.EventID),
			zap.String("code", event.Payload.Code),
			zap.Int("quantity", event.Payload.Quantity),
			zap.Error(err),
		}
		// Bad events are dropped; storage failures are worth an alert.
		if apperr.Is(err, apperr.KindPersistence) {
			l.logger.Error("Failed to apply restock", fields...)
		} else {
			l.logger.Warn("Skipped restock event", fields...)
		}
		return
	}

	l.logger.Info("Restock applied", zap.String("event_id", event.EventID), zap.String("code", event.Payload.Code))
}
