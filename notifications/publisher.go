package notifications

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/HectorSandate/Hilosaki/models"
)

const routingKeyOrderCreated = "order.created"

// OrderNotification is the message the consumer renders into the email.
type OrderNotification struct {
	Order        models.Order        `json:"order"`
	Items        []models.OrderItem  `json:"items"`
	DeliveryType models.DeliveryType `json:"delivery_type"`
}

// Publisher pushes committed orders onto the exchange. It satisfies
// services.Notifier: failures are logged and swallowed, never returned.
type Publisher struct {
	channel  *amqp.Channel
	exchange string
}

func NewPublisher(rmq *RabbitMQ, exchange string) *Publisher {
	return &Publisher{channel: rmq.Channel, exchange: exchange}
}

func (p *Publisher) OrderCreated(order *models.Order) {
	msg := OrderNotification{
		Order:        *order,
		Items:        order.Items,
		DeliveryType: order.DeliveryType,
	}
	body, err := json.Marshal(msg)
	if err != nil {
		log.Printf("order notification marshal failed for %s: %v", order.OrderNumber, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = p.channel.PublishWithContext(ctx, p.exchange, routingKeyOrderCreated, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		log.Printf("order notification publish failed for %s: %v", order.OrderNumber, err)
	}
}
