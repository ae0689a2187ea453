package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Fairanova/2026-room-booking-backend/config"
	"github.com/Fairanova/2026-room-booking-backend/infras/kafka"
	"github.com/Fairanova/2026-room-booking-backend/infras/otel"
	"github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/model"
	"github.com/Fairanova/2026-room-booking-backend/shared/constant"
	"github.com/Fairanova/2026-room-booking-backend/shared/timezone"
)

const (
	TypeCreated   = "booking.created"
	TypeDecided   = "booking.decided"
	TypeCancelled = "booking.cancelled"
)

// BookingEvent is the payload published on every booking lifecycle change.
type BookingEvent struct {
	Type            string  `json:"type"`
	BookingID       string  `json:"booking_id"`
	RoomID          string  `json:"room_id"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	ActorID         string  `json:"actor_id"`
	OccurredAt      string  `json:"occurred_at"`
}

// Publisher emits booking lifecycle events. Publishing is best effort; a
// broker outage never fails the request that triggered the event.
type Publisher interface {
	Publish(ctx context.Context, eventType, actorID string, booking model.Booking)
}

type publisherImpl struct {
	producer kafka.Producer
	cfg      *config.Config
	otel     otel.Otel
}

func NewPublisher(producer kafka.Producer, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		producer: producer,
		cfg:      cfg,
		otel:     otel,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, eventType, actorID string, booking model.Booking) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	payload := BookingEvent{
		Type:            eventType,
		BookingID:       booking.ID,
		RoomID:          booking.RoomID,
		Status:          booking.Status,
		RejectionReason: booking.RejectionReason,
		ActorID:         actorID,
		OccurredAt:      timezone.Format(timezone.Now(), constant.TimestampFormat),
	}

	message := kafka.Message{
		Key:   booking.ID,
		Value: payload,
	}

	if err := p.producer.SendMessages(ctx, p.cfg.Kafka.Topics.BookingEvents, message); err != nil {
		log.Error().Err(err).
			Str("type", eventType).
			Str("bookingID", booking.ID).
			Msg("failed to publish booking event")
	}
}
