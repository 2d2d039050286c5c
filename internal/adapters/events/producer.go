// Package events publishes domain change events to Kafka
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"funnel/internal/platform/logger"

	"github.com/segmentio/kafka-go"
)

// Event is one domain change notification
type Event struct {
	OrgID      string    `json:"org_id"`
	ActorID    string    `json:"actor_id"`
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher is the seam modules use to emit events
// implementations must never block request handling on broker errors
type Publisher interface {
	Publish(ctx context.Context, topic string, ev Event)
	Close() error
}

// Producer lazily manages one kafka writer per topic
type Producer struct {
	brokers []string
	log     logger.Logger

	mu      sync.Mutex
	writers map[string]*kafka.Writer
}

// NewProducer creates a Producer, brokers empty returns a nop publisher
func NewProducer(brokers []string, log logger.Logger) Publisher {
	if len(brokers) == 0 {
		return nopPublisher{}
	}
	return &Producer{
		brokers: brokers,
		log:     log,
		writers: make(map[string]*kafka.Writer),
	}
}

// Publish emits the event fire-and-forget, logging failures instead of
// surfacing them to the request path
func (p *Producer) Publish(ctx context.Context, topic string, ev Event) {
	body, err := json.Marshal(ev)
	if err != nil {
		p.log.Error().Err(err).Str("topic", topic).Msg("event marshal failed")
		return
	}
	w := p.writerForTopic(topic)
	if err := w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.OrgID),
		Value: body,
	}); err != nil {
		p.log.Error().Err(err).
			Str("topic", topic).
			Str("entity", ev.Entity).
			Str("action", ev.Action).
			Msg("event publish failed")
	}
}

func (p *Producer) writerForTopic(topic string) *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if w, ok := p.writers[topic]; ok {
		return w
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(p.brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	p.writers[topic] = w
	return w
}

// Close releases all writers
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, w := range p.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.writers, topic)
	}
	return firstErr
}

// nopPublisher drops events, used when no brokers are configured
type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, Event) {}
func (nopPublisher) Close() error                           { return nil }
