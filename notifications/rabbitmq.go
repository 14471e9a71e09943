// Package notifications is the fire-and-forget order notification pipeline:
// checkout publishes the committed order to RabbitMQ and a consumer renders
// and dispatches the email. Nothing in here ever fails a checkout.
package notifications

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitMQ struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel
}

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	return &RabbitMQ{Conn: conn, Channel: ch}, nil
}

// SetupQueues declares the order exchange and binds the notification queue.
func (r *RabbitMQ) SetupQueues(exchange, queue string) error {
	if err := r.Channel.ExchangeDeclare(
		exchange, "direct", true, false, false, false, nil,
	); err != nil {
		return err
	}
	if _, err := r.Channel.QueueDeclare(
		queue, true, false, false, false, nil,
	); err != nil {
		return err
	}
	return r.Channel.QueueBind(queue, routingKeyOrderCreated, exchange, false, nil)
}

func (r *RabbitMQ) Close() {
	if r.Channel != nil {
		r.Channel.Close()
	}
	if r.Conn != nil {
		r.Conn.Close()
	}
}
