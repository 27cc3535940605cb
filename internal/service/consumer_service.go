package service

import (
	"context"

	"noteboard-be/internal/pkg/logger"
	"noteboard-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService writes every domain event to the audit log.
type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		logger:     logger,
	}
}

// Consume subscribes and returns; messages are handled on a goroutine that
// ends when ctx is cancelled or the subscriber is closed.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	event, err := events.Unmarshal(msg.Payload)
	if err != nil {
		// a malformed message will never parse; ack so it is not redelivered
		cs.logger.Error("Audit", "Dropping malformed event", map[string]interface{}{"message_id": msg.UUID, "error": err})
		msg.Ack()
		return
	}

	cs.logger.Info("Audit", event.EventType(), map[string]interface{}{
		"message_id":  msg.UUID,
		"occurred_at": event.Timestamp(),
		"data":        event.Payload(),
	})
	msg.Ack()
}
