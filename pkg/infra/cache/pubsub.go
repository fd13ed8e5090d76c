package cache

import (
	"context"
	"reflect"

	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/channel"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/event"
)

// EventPublisher fans an event out to every replica subscribed to channel.
//
//go:generate mockery --name=EventPublisher --dir=. --output=./mocks --filename=event_publisher_mock.go --case=underscore --with-expecter
type EventPublisher interface {
	Publish(ctx context.Context, channel channel.Channel, ev event.Event) error
}

// EventListener decodes envelopes from the subscribed channels and hands each
// event to the handler registered for its concrete type.
type EventListener interface {
	Listen(ctx context.Context, channels ...channel.Channel)
	Register(eventType reflect.Type, handler func(ctx context.Context, ev interface{}) error)
}

type EventSubscriber[T any] interface {
	OnEvent(ctx context.Context, ev T) error
}
