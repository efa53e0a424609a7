package messaging

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
)

// PublishHostelEvent delivers one outbox event to the queue. The event type
// travels in the message Type property; the body is the raw payload the
// service enqueued.
func (rmq *RabbitMQBroker) PublishHostelEvent(ctx context.Context, evt ports.HostelEvent) error {
	if deadline, ok := ctx.Deadline(); ok {
		if time.Until(deadline) <= 0 {
			return ctx.Err()
		}
	}

	_, err := rmq.cb.Execute(func() (interface{}, error) {
		err := rmq.ch.PublishWithContext(
			ctx,
			"",            // exchange (default)
			rmq.queueName, // routing key == queue name
			false,         // mandatory
			false,         // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				Type:         evt.EventType,
				DeliveryMode: amqp.Persistent,
				Body:         evt.Payload,
			},
		)
		return nil, err
	})
	return err
}
