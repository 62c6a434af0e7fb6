package kafka

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
)

const LibraryTopic = "library-events"

type Config struct {
	Addrs   []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
	Enabled bool     `yaml:"enabled" envconfig:"KAFKA_ENABLED"`
}

type EventType string

const (
	EventBorrowed      EventType = "BORROWED"
	EventReturned      EventType = "RETURNED"
	EventStatusChanged EventType = "STATUS_CHANGED"
)

// Event mirrors the payload consumed by downstream analytics.
type Event struct {
	Timestamp        time.Time `json:"timestamp"`
	EventType        EventType `json:"eventType"`
	CollectionNumber string    `json:"collectionNumber"`
	CardNumber       string    `json:"cardNumber,omitempty"`
	RecordID         string    `json:"recordId,omitempty"`
	Status           string    `json:"status,omitempty"`
	Operator         string    `json:"operator,omitempty"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func Publish(producer sarama.SyncProducer, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, _, err = producer.SendMessage(&sarama.ProducerMessage{
		Topic: LibraryTopic,
		Key:   sarama.StringEncoder(event.CollectionNumber),
		Value: sarama.ByteEncoder(payload),
	})
	return err
}
