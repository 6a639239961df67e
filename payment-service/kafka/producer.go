package kafka

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/IBM/sarama"
)

type Producer struct {
	producer sarama.SyncProducer
}

func NewProducer() *Producer {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		broker = "kafka:9092"
	}

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	var producer sarama.SyncProducer
	var err error

	for i := 1; i <= 10; i++ {
		producer, err = sarama.NewSyncProducer([]string{broker}, config)
		if err == nil {
			log.Println("Kafka producer initialized for payment-service")
			return &Producer{producer: producer}
		}

		log.Printf("Waiting for Kafka... (%d/10) Error: %v", i, err)
		time.Sleep(5 * time.Second)
	}

	log.Fatalf("Failed to start Kafka producer after retries: %v", err)
	return nil
}

func (p *Producer) PublishPaymentAccepted(event interface{}) {
	p.publish("payment.accepted", event)
}

func (p *Producer) PublishStatusChanged(event interface{}) {
	p.publish("payment.status.changed", event)
}

func (p *Producer) publish(topic string, event interface{}) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", topic, err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(data),
	}

	if _, _, err = p.producer.SendMessage(msg); err != nil {
		log.Printf("Failed to send %s Kafka message: %v", topic, err)
		return
	}

	log.Printf("Published %s event: %v", topic, string(data))
}
