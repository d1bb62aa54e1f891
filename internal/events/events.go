package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"fmt"

	"rentcar/config"
	"rentcar/infras/kafka"
	"rentcar/infras/otel"
	"rentcar/internal/domains/booking/model"
	"rentcar/shared/constant"
	"rentcar/shared/timezone"

	"github.com/rs/zerolog/log"
)

type BookingEvent struct {
	BookingID  string `json:"booking_id"`
	CarID      string `json:"car_id"`
	CarName    string `json:"car_name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
	CreatedBy  string `json:"created_by"`
	OccurredAt string `json:"occurred_at"`
}

func NewBookingEvent(booking model.Booking) BookingEvent {
	return BookingEvent{
		BookingID:  booking.ID,
		CarID:      booking.CarID,
		CarName:    booking.CarName,
		StartDate:  booking.StartDate.Format(constant.BookingDateFormat),
		EndDate:    booking.EndDate.Format(constant.BookingDateFormat),
		Status:     booking.Status,
		CreatedBy:  booking.CreatedBy,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}
}

type Publisher interface {
	BookingCreated(ctx context.Context, event BookingEvent) error
	BookingCancelled(ctx context.Context, event BookingEvent) error
}

type publisherImpl struct {
	cfg    *config.Config
	client kafka.Client
	otel   otel.Otel
}

func New(cfg *config.Config, client kafka.Client, otel otel.Otel) Publisher {
	return &publisherImpl{
		cfg:    cfg,
		client: client,
		otel:   otel,
	}
}

func (p *publisherImpl) BookingCreated(ctx context.Context, event BookingEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingCreated")
	defer scope.End()
	defer scope.TraceIfError(err)

	return p.publish(ctx, p.cfg.Kafka.Topics.BookingCreated, event)
}

func (p *publisherImpl) BookingCancelled(ctx context.Context, event BookingEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingCancelled")
	defer scope.End()
	defer scope.TraceIfError(err)

	return p.publish(ctx, p.cfg.Kafka.Topics.BookingCancelled, event)
}

func (p *publisherImpl) publish(ctx context.Context, topic string, event BookingEvent) error {
	message := kafka.Message{
		Key:   event.BookingID,
		Value: event,
	}

	if err := p.client.SendMessages(ctx, topic, message); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to publish booking event")

		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}
