package kafka

import (
	"context"
	"errors"
	"strings"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/skillbridge/service-core/internal/observability"
)

type MessageHandler interface {
	Handle(ctx context.Context, msg kafkago.Message) error
}

type Reader interface {
	Config() kafkago.ReaderConfig
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type Consumer struct {
	handler MessageHandler
	reader  Reader
	metrics observability.Metrics
	zlogger *zap.Logger

	workerPoolSize int
	jobs           chan jobItem
}

type jobItem struct {
	msg    kafkago.Message
	result chan error
}

func NewConsumer(handler MessageHandler, reader Reader, workers int, metrics observability.Metrics, logger *zap.Logger) *Consumer {
	if workers <= 0 {
		workers = 4
	}
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Consumer{
		handler:        handler,
		reader:         reader,
		metrics:        metrics,
		zlogger:        logger,
		workerPoolSize: workers,
		jobs:           make(chan jobItem, workers*2),
	}
}

func (c *Consumer) Start(ctx context.Context) {
	rc := c.reader.Config()
	c.zlogger.Info("Starting Kafka consumer",
		zap.Strings("brokers", rc.Brokers),
		zap.String("group", rc.GroupID),
		zap.String("topic", rc.Topic),
	)

	for i := 0; i < c.workerPoolSize; i++ {
		go c.worker(ctx)
	}

	// Main fetch cycle. The fetched message goes to a worker and we wait for
	// its result before fetching the next one, so commits happen in the order
	// messages were received.
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			if isBenignFetchTimeout(err) {
				c.zlogger.Debug("fetch timeout (idle), backing off", zap.Error(err))
				sleepWithContext(ctx, 10*time.Second)
				continue
			}

			// Temporary errors during rebalancing are expected, wait and retry.
			c.zlogger.Warn("FetchMessage error, backing off", zap.Error(err))
			sleepWithContext(ctx, 500*time.Millisecond)
			continue
		}

		done := make(chan error, 1)
		select {
		case c.jobs <- jobItem{msg: msg, result: done}:
		case <-ctx.Done():
			return
		}

		var procErr error
		select {
		case procErr = <-done:
		case <-ctx.Done():
			return
		}

		if procErr != nil {
			c.zlogger.Error("handler failed; message will not be committed",
				zap.Error(procErr),
				zap.String("topic", msg.Topic),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
			)
			sleepWithContext(ctx, 200*time.Millisecond)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.zlogger.Warn(
				"commit failed",
				zap.Error(err),
				zap.String("topic", msg.Topic),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
			)
			sleepWithContext(ctx, 200*time.Millisecond)
			continue
		}
		c.zlogger.Debug("message committed",
			zap.String("topic", msg.Topic), zap.Int("partition", msg.Partition), zap.Int64("offset", msg.Offset))
	}
}

func (c *Consumer) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case it := <-c.jobs:
			if it.result == nil {
				continue
			}

			msg := it.msg
			start := time.Now()

			err := c.handler.Handle(ctx, msg)

			elapsed := time.Since(start)
			c.metrics.ObserveKafka(float64(elapsed.Microseconds())/1000.0, err == nil)
			if err != nil {
				c.zlogger.Error("message handling failed",
					zap.Error(err),
					zap.String("topic", msg.Topic),
					zap.Int("partition", msg.Partition),
					zap.Int64("offset", msg.Offset),
					zap.Duration("elapsed", elapsed),
				)
				it.result <- err
				continue
			}

			c.zlogger.Debug("message handled",
				zap.String("topic", msg.Topic),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
				zap.Int("value_bytes", len(msg.Value)),
				zap.Duration("elapsed", elapsed),
			)

			it.result <- nil
		}
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func isBenignFetchTimeout(err error) bool {
	s := err.Error()
	return strings.Contains(s, "Request Timed Out") ||
		strings.Contains(s, "no messages received from kafka within the allocated time")
}
