// Package events publishes ward domain events (admissions, discharges and
// note changes) to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ariebrainware/ward-census/util"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	TypePatientAdmitted = "patient.admitted"
	TypeVisitDischarged = "visit.discharged"
	TypeNoteCreated     = "note.created"
	TypeNoteUpdated     = "note.updated"
)

const source = "ward-census"

type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Source    string                 `json:"source"`
	MRN       string                 `json:"mrn"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
}

// Publisher delivers domain events. Callers treat failures as best effort.
type Publisher interface {
	Publish(ctx context.Context, eventType, mrn string, data map[string]interface{}) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
	topic  string
	now    func() time.Time
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		BatchSize:    1,
		BatchTimeout: 10 * time.Millisecond,
	}
	return &KafkaPublisher{writer: writer, topic: topic, now: time.Now}
}

// Publish writes one event keyed by MRN so a patient's events stay ordered
// within a partition.
func (p *KafkaPublisher) Publish(ctx context.Context, eventType, mrn string, data map[string]interface{}) error {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    source,
		MRN:       mrn,
		Data:      data,
		Timestamp: p.now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(mrn),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-id", Value: []byte(event.ID)},
			{Key: "event-type", Value: []byte(eventType)},
			{Key: "source", Value: []byte(source)},
		},
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		util.WithFields(map[string]interface{}{
			"event_id":   event.ID,
			"event_type": eventType,
			"topic":      p.topic,
		}).WithError(err).Error("Failed to publish event")
		return err
	}

	util.WithFields(map[string]interface{}{
		"event_id":   event.ID,
		"event_type": eventType,
		"topic":      p.topic,
	}).Debug("Event published")
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, eventType, mrn string, data map[string]interface{}) error {
	return nil
}

func (NopPublisher) Close() error { return nil }

// NewPublisher returns a Kafka publisher when brokers are configured and a
// NopPublisher otherwise.
func NewPublisher(brokers []string, topic string) Publisher {
	if len(brokers) == 0 || topic == "" {
		util.Log.Info("Kafka not configured, domain events disabled")
		return NopPublisher{}
	}
	return NewKafkaPublisher(brokers, topic)
}
