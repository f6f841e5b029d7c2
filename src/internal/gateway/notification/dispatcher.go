package notification

import (
	"context"
	"encoding/json"
	"time"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/internal/gateway/messaging"
	"greendrop-service/src/internal/model"
	"greendrop-service/src/internal/repository"
	"greendrop-service/src/pkg/log"
	"greendrop-service/src/pkg/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeOrderStatusNotice = "notification:order-status"

// Dispatcher queues order-status notices for asynchronous delivery.
// Dispatch is best effort: a failed enqueue is logged and never fails
// the triggering status update.
type Dispatcher struct {
	Client *asynq.Client
	Log    log.Log
}

func NewDispatcher(client *asynq.Client, logger log.Log) *Dispatcher {
	return &Dispatcher{
		Client: client,
		Log:    logger,
	}
}

func (d *Dispatcher) Dispatch(notice *model.OrderStatusNotice) {
	if d.Client == nil {
		return
	}

	payload, err := json.Marshal(notice)
	if err != nil {
		d.Log.Error("notification-dispatcher", "failed to marshal notice", "Dispatch", err.Error())
		return
	}

	task := asynq.NewTask(TypeOrderStatusNotice, payload)
	if _, err := d.Client.Enqueue(task, asynq.MaxRetry(3), asynq.Timeout(30*time.Second)); err != nil {
		d.Log.Error("notification-dispatcher", "failed to enqueue notice", "Dispatch", err.Error())
	}
}

// Worker consumes queued notices: persists the notification record and
// publishes the push event.
type Worker struct {
	NotificationRepository *repository.NotificationRepository
	OrderProducer          *messaging.OrderProducer
	Log                    log.Log
}

func NewWorker(notificationRepository *repository.NotificationRepository, orderProducer *messaging.OrderProducer, logger log.Log) *Worker {
	return &Worker{
		NotificationRepository: notificationRepository,
		OrderProducer:          orderProducer,
		Log:                    logger,
	}
}

func (w *Worker) HandleOrderStatusNotice(ctx context.Context, task *asynq.Task) error {
	var notice model.OrderStatusNotice
	if err := json.Unmarshal(task.Payload(), &notice); err != nil {
		w.Log.Error("notification-worker", "failed to unmarshal notice", "HandleOrderStatusNotice", err.Error())
		return err
	}

	record := &entity.Notification{
		ID:        uuid.NewString(),
		UserID:    notice.UserID,
		OrderID:   &notice.OrderID,
		Title:     notice.Title,
		Body:      notice.Body,
		CreatedAt: time.Now().UTC(),
	}
	if err := w.NotificationRepository.Create(ctx, record); err != nil {
		w.Log.Error("notification-worker", "failed to persist notification", "HandleOrderStatusNotice", err.Error())
		return err
	}

	if w.OrderProducer != nil {
		event := &model.PushEvent{
			ID:     record.ID,
			UserID: notice.UserID,
			Title:  notice.Title,
			Body:   notice.Body,
		}
		if err := w.OrderProducer.SendPush(event); err != nil {
			w.Log.Error("notification-worker", "failed to publish push event", "HandleOrderStatusNotice", utils.ConvertString(event))
		}
	}

	return nil
}
