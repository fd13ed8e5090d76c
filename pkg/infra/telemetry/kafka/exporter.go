package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/mitchellh/mapstructure"
)

const (
	ExporterName = "kafka"

	flushTimeoutMs = 5000
)

type Config struct {
	Host  string `mapstructure:"host"`
	Port  string `mapstructure:"port"`
	Topic string `mapstructure:"topic"`
}

type producer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
	Flush(timeoutMs int) int
	Close()
}

// Exporter publishes stored assessments to a kafka topic, keyed by
// conversation id so updates for one conversation stay ordered.
type Exporter struct {
	cfg      Config
	producer producer
}

type assessmentMessage struct {
	ConversationID string                `json:"conversation_id"`
	AgentID        string                `json:"agent_id"`
	UserID         *string               `json:"user_id,omitempty"`
	RiskLevel      string                `json:"risk_level"`
	RiskScore      int                   `json:"risk_score"`
	Summary        string                `json:"conversation_summary"`
	DetectedAt     time.Time             `json:"detected_at"`
	Assessment     assessment.Assessment `json:"assessment"`
}

func DecodeConfig(settings map[string]interface{}) (Config, error) {
	var conf Config
	if err := mapstructure.Decode(settings, &conf); err != nil {
		return Config{}, fmt.Errorf("invalid kafka config: %w", err)
	}
	if conf.Host == "" {
		return Config{}, errors.New("kafka host is required")
	}
	if conf.Port == "" {
		return Config{}, errors.New("kafka port is required")
	}
	if conf.Topic == "" {
		return Config{}, errors.New("kafka topic is required")
	}
	return conf, nil
}

func NewExporter(settings map[string]interface{}) (*Exporter, error) {
	conf, err := DecodeConfig(settings)
	if err != nil {
		return nil, err
	}
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": fmt.Sprintf("%s:%s", conf.Host, conf.Port),
		"acks":              "all",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return &Exporter{cfg: conf, producer: p}, nil
}

func (p *Exporter) Name() string {
	return ExporterName
}

func (p *Exporter) Deliver(ctx context.Context, record *assessment.Record) error {
	if p.producer == nil {
		return errors.New("kafka producer is not initialized")
	}
	data, err := json.Marshal(assessmentMessage{
		ConversationID: record.ConversationID,
		AgentID:        record.AgentID,
		UserID:         record.UserID,
		RiskLevel:      string(record.RiskLevel),
		RiskScore:      record.RiskScore,
		Summary:        record.ConversationSummary,
		DetectedAt:     record.DetectedAt,
		Assessment:     record.Assessment,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal assessment: %w", err)
	}

	deliveryChan := make(chan kafka.Event, 1)
	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.cfg.Topic, Partition: kafka.PartitionAny},
		Key:            []byte(record.ConversationID),
		Value:          data,
		Headers: []kafka.Header{
			{Key: "risk_level", Value: []byte(record.RiskLevel)},
		},
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("failed to produce message: %w", err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case e := <-deliveryChan:
		m, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected delivery event %T", e)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("delivery failed: %w", m.TopicPartition.Error)
		}
		return nil
	}
}

func (p *Exporter) Close() {
	if p.producer != nil {
		p.producer.Flush(flushTimeoutMs)
		p.producer.Close()
	}
}
