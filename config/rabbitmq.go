package config

import (
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(cfg *Config) (*amqp.Connection, error) {
	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq connect: %w", err)
	}

	// alert delivery is fire-and-forget, so a dropped connection only shows
	// up here and in the health endpoint
	go func() {
		if closeErr := <-conn.NotifyClose(make(chan *amqp.Error, 1)); closeErr != nil {
			log.Printf("rabbitmq connection closed: %v", closeErr)
		}
	}()

	return conn, nil
}
