package cache

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	AssessmentKeyPattern = "assessment:%s"

	AssessmentTTLName = "assessment"

	defaultLocalTTL = 30 * time.Second
)

var ErrCacheMiss = errors.New("cache miss")

type Client interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	RedisClient() *redis.Client
	CreateTTLMap(name string, ttl time.Duration) *TTLMap
	GetTTLMap(name string) *TTLMap

	GetAssessment(ctx context.Context, conversationID string) (*assessment.Record, error)
	SaveAssessment(ctx context.Context, record *assessment.Record, ttl time.Duration) error
	DeleteAssessment(ctx context.Context, conversationID string) error
	ClearAllTTLMaps()
}

type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	TLS      bool
	// LocalTTL bounds how long a replica serves a value without asking redis.
	LocalTTL time.Duration
}

type client struct {
	redisClient *redis.Client
	localCache  *TTLMap
	ttlMaps     sync.Map
}

func NewClient(config Config, logger *logrus.Logger) (Client, error) {
	options := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	}
	if config.TLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.WithFields(logrus.Fields{
			"host":  config.Host,
			"port":  config.Port,
			"error": err.Error(),
		}).Error("failed to connect to redis")
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"host": config.Host,
		"port": config.Port,
	}).Info("redis connected successfully")

	return NewClientFromRedis(redisClient, config.LocalTTL), nil
}

// NewClientFromRedis wraps an existing connection without pinging it.
func NewClientFromRedis(redisClient *redis.Client, localTTL time.Duration) Client {
	if localTTL <= 0 {
		localTTL = defaultLocalTTL
	}
	c := &client{
		redisClient: redisClient,
		localCache:  NewTTLMap(localTTL),
	}
	c.ttlMaps.Store(AssessmentTTLName, c.localCache)
	return c
}

func (c *client) Get(ctx context.Context, key string) (string, error) {
	if value, ok := c.localCache.Get(key); ok {
		str, err := safeStringCast(value)
		if err != nil {
			return "", fmt.Errorf("cache value error: %w", err)
		}
		return str, nil
	}
	val, err := c.redisClient.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	c.localCache.Set(key, val)
	return val, nil
}

func (c *client) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := c.redisClient.Set(ctx, key, value, expiration).Err(); err != nil {
		return err
	}
	c.localCache.Set(key, value)
	return nil
}

func (c *client) Delete(ctx context.Context, key string) error {
	c.localCache.Delete(key)
	return c.redisClient.Del(ctx, key).Err()
}

func (c *client) RedisClient() *redis.Client {
	return c.redisClient
}

func (c *client) CreateTTLMap(name string, ttl time.Duration) *TTLMap {
	ttlMap := NewTTLMap(ttl)
	c.ttlMaps.Store(name, ttlMap)
	return ttlMap
}

func (c *client) GetTTLMap(name string) *TTLMap {
	if value, ok := c.ttlMaps.Load(name); ok {
		ttlMap, err := safeTTLMapCast(value)
		if err != nil {
			return nil
		}
		return ttlMap
	}
	return nil
}

func (c *client) ClearAllTTLMaps() {
	c.ttlMaps.Range(func(key, value interface{}) bool {
		if ttlMap, ok := value.(*TTLMap); ok {
			ttlMap.Clear()
		}
		return true
	})
}

func (c *client) GetAssessment(ctx context.Context, conversationID string) (*assessment.Record, error) {
	res, err := c.Get(ctx, fmt.Sprintf(AssessmentKeyPattern, conversationID))
	if err != nil {
		return nil, err
	}
	record := new(assessment.Record)
	if err := json.Unmarshal([]byte(res), record); err != nil {
		return nil, err
	}
	return record, nil
}

func (c *client) SaveAssessment(ctx context.Context, record *assessment.Record, ttl time.Duration) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return c.Set(ctx, fmt.Sprintf(AssessmentKeyPattern, record.ConversationID), string(recordJSON), ttl)
}

func (c *client) DeleteAssessment(ctx context.Context, conversationID string) error {
	return c.Delete(ctx, fmt.Sprintf(AssessmentKeyPattern, conversationID))
}

func safeStringCast(value interface{}) (string, error) {
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("invalid type assertion to string")
	}
	return str, nil
}

func safeTTLMapCast(value interface{}) (*TTLMap, error) {
	ttlMap, ok := value.(*TTLMap)
	if !ok {
		return nil, fmt.Errorf("invalid type assertion to TTLMap")
	}
	return ttlMap, nil
}
