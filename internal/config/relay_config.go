package config

import (
	"os"

	"github.com/joho/godotenv"
)

// RelayConfig holds configuration for the outbox relay binary. It carries only
// what the relay needs: the database to listen on and the queue to publish to.
type RelayConfig struct {
	DatabaseURL string
	RabbitMQURL string
	QueueName   string
}

func LoadRelayConfig() *RelayConfig {
	_ = godotenv.Load()

	dbURL := os.Getenv("DB_CONNECTION_STRING")
	if dbURL == "" {
		panic("DB_CONNECTION_STRING environment variable is required")
	}

	rabbitURL := os.Getenv("RABBITMQ_URL")
	if rabbitURL == "" {
		panic("RABBITMQ_URL environment variable is required")
	}

	queueName := os.Getenv("EVENT_QUEUE_NAME")
	if queueName == "" {
		queueName = "hostel-events"
	}

	return &RelayConfig{
		DatabaseURL: dbURL,
		RabbitMQURL: rabbitURL,
		QueueName:   queueName,
	}
}
