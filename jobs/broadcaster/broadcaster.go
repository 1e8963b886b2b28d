// Package broadcaster drains the event outbox to Kafka.
//
// Delivery is at-least-once: a row is marked SENT before the publish and
// ACKED after the broker confirms, so a crash between the two replays the
// event on the next pass. Consumers dedupe on seq.
package broadcaster

import (
	"context"
	"fmt"
	"log"
	"time"

	"forseti/infra/outbox"

	"github.com/IBM/sarama"
)

type Broadcaster struct {
	outbox   *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

// ------------------------------------------------
// CONSTRUCTOR
// ------------------------------------------------

func New(
	ob *outbox.Outbox,
	brokers []string,
	topic string,
	interval time.Duration,
) (*Broadcaster, error) {

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		outbox:   ob,
		producer: producer,
		topic:    topic,
		interval: interval,
	}, nil
}

// ------------------------------------------------
// LOOP
// ------------------------------------------------

func (b *Broadcaster) Start(ctx context.Context) {
	log.Println("[broadcaster] started")

	go func() {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-ticker.C:
				b.drainOnce()
			}
		}
	}()
}

func (b *Broadcaster) drainOnce() {
	_ = b.outbox.ScanPending(func(rec outbox.Record) error {

		// 1. Mark SENT (idempotent)
		_ = b.outbox.MarkSent(rec.Seq)

		// 2. Publish
		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.StringEncoder(keyFor(rec.Seq)),
			Value: sarama.ByteEncoder(rec.Payload),
		}

		if _, _, err := b.producer.SendMessage(msg); err != nil {
			return nil // row stays pending, retried next pass
		}

		// 3. Mark ACKED
		_ = b.outbox.MarkAcked(rec.Seq)

		return nil
	})
}

// ------------------------------------------------
// SHUTDOWN
// ------------------------------------------------

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}

func keyFor(seq uint64) string {
	return fmt.Sprintf("%020d", seq)
}
