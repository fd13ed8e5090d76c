package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/channel"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type eventHandler func(ctx context.Context, ev interface{}) error

type redisEventListener struct {
	logger   *logrus.Logger
	cache    Client
	mu       sync.RWMutex
	handlers map[reflect.Type][]eventHandler
	registry map[string]reflect.Type
}

func NewRedisEventListener(
	logger *logrus.Logger,
	cache Client,
	registry map[string]reflect.Type,
) EventListener {
	return &redisEventListener{
		logger:   logger,
		cache:    cache,
		handlers: make(map[reflect.Type][]eventHandler),
		registry: registry,
	}
}

func RegisterEventSubscriber[T event.Event](l EventListener, subscriber EventSubscriber[T]) {
	var evt T
	l.Register(reflect.TypeOf(evt), func(ctx context.Context, ev interface{}) error {
		typed, ok := ev.(T)
		if !ok {
			return fmt.Errorf("unexpected event %T", ev)
		}
		return subscriber.OnEvent(ctx, typed)
	})
}

func (r *redisEventListener) Register(eventType reflect.Type, handler func(ctx context.Context, ev interface{}) error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[eventType] = append(r.handlers[eventType], handler)
}

// Listen blocks until ctx is done, resubscribing after connection loss.
func (r *redisEventListener) Listen(ctx context.Context, channels ...channel.Channel) {
	channelNames := make([]string, 0, len(channels))
	for _, ch := range channels {
		channelNames = append(channelNames, string(ch))
	}

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("redis pubsub listener shutting down")
			return
		default:
		}

		r.listenOnce(ctx, channelNames)

		if ctx.Err() != nil {
			return
		}

		r.logger.Warn("redis pubsub disconnected, reconnecting in 1s...")
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Second):
		}
	}
}

func (r *redisEventListener) listenOnce(ctx context.Context, channelNames []string) {
	pubSub := r.cache.RedisClient().Subscribe(ctx, channelNames...)
	defer func() { _ = pubSub.Close() }()

	r.logger.WithField("channels", channelNames).Debug("redis pubsub connected")

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = pubSub.Close()
		case <-done:
		}
	}()

	for msg := range pubSub.Channel() {
		if ctx.Err() != nil {
			return
		}
		r.handleMessage(ctx, msg.Payload)
	}
}

func (r *redisEventListener) handleMessage(ctx context.Context, payload string) {
	msg, err := decodeEnvelope(payload)
	if err != nil {
		r.logger.WithError(err).Error("error decoding redis message")
		return
	}
	if lag := msg.lag(time.Now()); lag > time.Second {
		r.logger.WithFields(logrus.Fields{
			"type": msg.Type,
			"lag":  lag.String(),
		}).Warn("slow pubsub delivery")
	}

	concreteType, ok := r.registry[msg.Type]
	if !ok {
		r.logger.WithField("type", msg.Type).Warn("unknown event type")
		return
	}

	eventPtr := reflect.New(concreteType)
	if err := json.Unmarshal(msg.Event, eventPtr.Interface()); err != nil {
		r.logger.WithError(err).Error("error unmarshalling event data into concrete type")
		return
	}
	concreteEvent := eventPtr.Elem().Interface()

	r.mu.RLock()
	handlers := r.handlers[concreteType]
	r.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, concreteEvent); err != nil {
			r.logger.WithError(err).WithField("type", msg.Type).Error("error executing subscriber")
		}
	}
}
