package publisher

import (
	"batch-schedule-service/internal/app/contracts"
	"batch-schedule-service/internal/app/models"
	"batch-schedule-service/internal/pkg/constvars"
	"batch-schedule-service/internal/pkg/exceptions"
	"batch-schedule-service/internal/pkg/utils"
	"context"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Channel is the part of *amqp091.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type schedulePublisher struct {
	Channel Channel
	Queue   string
	Log     *zap.Logger
}

// NewSchedulePublisher opens a channel on connection and declares the durable queue.
func NewSchedulePublisher(connection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.ScheduleEventPublisher, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return NewSchedulePublisherWithChannel(channel, queue, logger), nil
}

func NewSchedulePublisherWithChannel(channel Channel, queue string, logger *zap.Logger) contracts.ScheduleEventPublisher {
	return &schedulePublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (p *schedulePublisher) PublishScheduleSaved(ctx context.Context, event *models.ScheduleSavedEvent) error {
	requestID := utils.GetRequestID(ctx)
	p.Log.Info("schedulePublisher.PublishScheduleSaved called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.Queue),
		zap.String(constvars.LoggingBatchIDKey, event.BatchID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":  "JSON",
		"schedule_kind": event.Kind,
		"request_id":    requestID,
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.SavedAt,
		Headers:      headers,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		p.Log.Error("schedulePublisher.PublishScheduleSaved error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, p.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("schedulePublisher.PublishScheduleSaved succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.Queue),
	)
	return nil
}
