package messaging

import (
	"greendrop-service/src/internal/model"
	"greendrop-service/src/pkg/kafka"
	"greendrop-service/src/pkg/log"
)

type OrderProducer struct {
	OrderCreatedProducer Producer[*model.OrderCreatedEvent]
	OrderStatusProducer  Producer[*model.OrderStatusEvent]
	PushProducer         Producer[*model.PushEvent]
}

func NewOrderProducer(producer kafka.Producer, log log.Log) *OrderProducer {
	return &OrderProducer{
		OrderCreatedProducer: Producer[*model.OrderCreatedEvent]{
			Producer: producer,
			Topic:    "order-created",
			Log:      log,
		},
		OrderStatusProducer: Producer[*model.OrderStatusEvent]{
			Producer: producer,
			Topic:    "order-status",
			Log:      log,
		},
		PushProducer: Producer[*model.PushEvent]{
			Producer: producer,
			Topic:    "push-notifications",
			Log:      log,
		},
	}
}

func (p *OrderProducer) SendOrderCreated(event *model.OrderCreatedEvent) error {
	return p.OrderCreatedProducer.Send(event)
}

func (p *OrderProducer) SendOrderStatus(event *model.OrderStatusEvent) error {
	return p.OrderStatusProducer.Send(event)
}

func (p *OrderProducer) SendPush(event *model.PushEvent) error {
	return p.PushProducer.Send(event)
}
