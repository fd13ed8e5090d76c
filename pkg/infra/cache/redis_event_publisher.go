package cache

import (
	"context"

	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/channel"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/event"
)

type redisEventPublisher struct {
	cache Client
}

func NewRedisEventPublisher(cache Client) EventPublisher {
	return &redisEventPublisher{
		cache: cache,
	}
}

func (p *redisEventPublisher) Publish(ctx context.Context, ch channel.Channel, ev event.Event) error {
	data, err := encodeMessage(ev)
	if err != nil {
		return err
	}
	return p.cache.RedisClient().Publish(ctx, string(ch), data).Err()
}
