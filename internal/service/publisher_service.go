package service

import (
	"context"

	"noteboard-be/internal/pkg/logger"
	"noteboard-be/pkg/events"
	pktNats "noteboard-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// IPublisherService emits domain events. Failures are logged and swallowed so
// that a broken bus never fails the request that produced the event.
type IPublisherService interface {
	Publish(ctx context.Context, event events.Event)
}

// EventForwarder is the external bus (NATS JetStream in production).
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type publisherService struct {
	publisher message.Publisher
	topicName string
	forwarder EventForwarder
	logger    logger.ILogger
}

// NewPublisherService publishes to topicName on the in-process bus and, when
// forwarder is non-nil, to the external bus as well.
func NewPublisherService(
	publisher message.Publisher,
	topicName string,
	forwarder EventForwarder,
	logger logger.ILogger,
) IPublisherService {
	return &publisherService{
		publisher: publisher,
		topicName: topicName,
		forwarder: forwarder,
		logger:    logger,
	}
}

func (p *publisherService) Publish(ctx context.Context, event events.Event) {
	payload, err := events.Marshal(event)
	if err != nil {
		p.logger.Error("Publisher", "Failed to marshal event", map[string]interface{}{"type": event.EventType(), "error": err})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", event.EventType())
	if err := p.publisher.Publish(p.topicName, msg); err != nil {
		p.logger.Error("Publisher", "Failed to publish event", map[string]interface{}{"type": event.EventType(), "error": err})
	}

	if p.forwarder == nil {
		return
	}
	if err := p.forwarder.Publish(ctx, event); err != nil {
		p.logger.Warn("Publisher", "Failed to forward event to NATS", map[string]interface{}{"type": event.EventType(), "error": err.Error()})
	}
}

var _ EventForwarder = (*pktNats.Publisher)(nil)
