package service

import (
	"context"
	"encoding/json"
	"time"

	"fusion-kitchen/agg-svc/internal/domain"

	"go.uber.org/zap"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Logger *zap.Logger
	Now    func() time.Time
}

func NewConsumer(reader MessageReader, store StoreInterface, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		Reader: reader,
		Store:  store,
		Logger: logger,
		Now:    time.Now,
	}
}

// Start reads until ctx is cancelled. Bad messages are logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	c.logger().Info("order events consumer started")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger().Info("order events consumer stopped")
				return
			}
			c.logger().Error("failed to read message", zap.Error(err))
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.logger().Warn("failed to unmarshal order event",
				zap.Int64("offset", message.Offset),
				zap.Error(err))
			continue
		}

		if err := c.ProcessEvent(ctx, event); err != nil {
			c.logger().Error("failed to record order event",
				zap.String("type", event.Type),
				zap.String("order_id", event.OrderID),
				zap.Error(err))
		}
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) error {
	day := event.Day(c.now())

	switch event.Type {
	case domain.EventOrderCreated:
		if err := c.Store.RecordOrderCreated(ctx, day, event.Items); err != nil {
			return err
		}
		c.logger().Debug("order counted",
			zap.String("order_id", event.OrderID),
			zap.String("day", day),
			zap.Int("items", len(event.Items)))
	case domain.EventOrderStatusChanged:
		if event.Status != domain.StatusCompleted {
			return nil
		}
		return c.Store.RecordOrderCompleted(ctx, day)
	}
	return nil
}

func (c *Consumer) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c *Consumer) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

var _ ConsumerInterface = (*Consumer)(nil)
