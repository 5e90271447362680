package service

import (
	"context"
	"encoding/json"

	"github.com/LionGx2004/cannatracker/internal/pkg/logger"
	"github.com/LionGx2004/cannatracker/pkg/events"
	pktNats "github.com/LionGx2004/cannatracker/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process event topic and bridges each event
// to NATS JetStream when a publisher is connected. Runs as a background
// goroutine for the lifetime of the process.
type consumerService struct {
	subscriber message.Subscriber
	topic      string
	natsPub    *pktNats.Publisher
	log        logger.ILogger
}

func NewConsumerService(subscriber message.Subscriber, topic string, natsPub *pktNats.Publisher, log logger.ILogger) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topic:      topic,
		natsPub:    natsPub,
		log:        log,
	}
}

func (s *consumerService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topic)
	if err != nil {
		return err
	}

	for msg := range messages {
		var event events.SessionLogged
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			s.log.Warn("consumer", "dropping malformed event", map[string]interface{}{
				"error": err.Error(),
			})
			msg.Ack()
			continue
		}

		s.log.Info("consumer", "session logged", map[string]interface{}{
			"session_id": event.SessionId.String(),
			"user_id":    event.UserId.String(),
			"strain":     event.Strain,
		})

		if s.natsPub != nil {
			if err := s.natsPub.Publish(ctx, event); err != nil {
				s.log.Warn("consumer", "failed to forward event to NATS", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}

		msg.Ack()
	}
	return nil
}
