package notifications

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EmailSender delivers a rendered notification; swapped for a real SMTP or
// API client in production, a logger in development.
type EmailSender interface {
	Send(subject, htmlBody string) error
}

// LogSender writes the email to the log instead of sending it.
type LogSender struct{}

func (LogSender) Send(subject, htmlBody string) error {
	log.Printf("email notification (subject %q, %d bytes)", subject, len(htmlBody))
	return nil
}

// StartOrderConsumer drains the notification queue, rendering and sending
// one email per committed order. Malformed messages are dropped; send
// failures are requeued once by the broker via nack.
func StartOrderConsumer(rmq *RabbitMQ, queue string, sender EmailSender) error {
	msgs, err := rmq.Channel.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}
	go func() {
		for msg := range msgs {
			handleOrderMessage(msg, sender)
		}
	}()
	return nil
}

func handleOrderMessage(msg amqp.Delivery, sender EmailSender) {
	var n OrderNotification
	if err := json.Unmarshal(msg.Body, &n); err != nil {
		log.Printf("dropping malformed order notification: %v", err)
		_ = msg.Nack(false, false)
		return
	}

	subject := "Nuevo Pedido " + n.Order.OrderNumber
	if err := sender.Send(subject, RenderOrderEmail(n)); err != nil {
		log.Printf("email send failed for order %s: %v", n.Order.OrderNumber, err)
		_ = msg.Nack(false, !msg.Redelivered)
		return
	}
	_ = msg.Ack(false)
}
