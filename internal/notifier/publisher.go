package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	notificationQueueKey = "notification_events"
)

// Notification - письмо для жителя или секретаря: адрес, тема, текст.
// Доставка всегда best-effort, отказ доставки не влияет на вызывающий поток.
type Notification struct {
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher - интерфейс для постановки уведомлений в очередь
type Publisher interface {
	Publish(ctx context.Context, notification Notification) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует уведомление в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, notification Notification) error {
	if notification.Timestamp.IsZero() {
		notification.Timestamp = time.Now()
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	// Используем LPUSH для добавления уведомления в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, notificationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification to Redis: %w", err)
	}
	return nil
}
