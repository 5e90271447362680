package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/LionGx2004/cannatracker/internal/entity"
	"github.com/LionGx2004/cannatracker/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	PublishSessionLogged(ctx context.Context, session *entity.Session) error
}

type publisherService struct {
	topic     string
	publisher message.Publisher
}

func NewPublisherService(topic string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topic:     topic,
		publisher: publisher,
	}
}

func (s *publisherService) PublishSessionLogged(_ context.Context, session *entity.Session) error {
	event := events.SessionLogged{
		SessionId:  session.Id,
		UserId:     session.UserId,
		Strain:     session.Strain,
		Amount:     session.Amount,
		OccurredAt: time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return s.publisher.Publish(s.topic, msg)
}
