package notifier

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fire_dispatch_system/internal/config"
	"github.com/sirupsen/logrus"
)

// Worker - обработчик очереди уведомлений, доставляет их во внешний шлюз
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.GatewayTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди уведомлений
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting notification worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping notification worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, notificationQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop notification from Redis")
					time.Sleep(w.cfg.GatewayBaseDelay)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var notification Notification
				if err := json.Unmarshal([]byte(payload), &notification); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal notification from Redis")
					continue
				}

				w.deliver(ctx, notification, payload)
			}
		}
	}()
}

// deliver отправляет уведомление во внешний шлюз с повторами
func (w *Worker) deliver(ctx context.Context, notification Notification, rawPayload string) {
	log := w.logger.WithField("recipient", notification.Recipient).WithField("subject", notification.Subject)
	log.Debug("Delivering notification...")

	if w.cfg.GatewayURL == "" {
		log.Warn("Notification gateway URL is not configured. Skipping delivery.")
		return
	}

	maxRetries := w.cfg.GatewayMaxRetries
	delay := w.cfg.GatewayBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.GatewayURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create gateway request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		// Добавляем HMAC подпись, если секрет шлюза задан
		if w.cfg.GatewaySecret != "" {
			signature := generateHMACSHA256(rawPayload, w.cfg.GatewaySecret)
			req.Header.Set("X-Notification-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send notification. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
			time.Sleep(delay)
			delay *= 2 // Экспоненциальная задержка
			continue
		}

		statusCode := resp.StatusCode
		resp.Body.Close()

		if statusCode >= 200 && statusCode < 300 {
			log.Info("Notification delivered successfully.")
			return
		}

		log.Warnf("Notification delivery failed with status code %d. Retrying in %v. Retries left: %d", statusCode, delay, maxRetries-1-i)
		time.Sleep(delay)
		delay *= 2 // Экспоненциальная задержка
	}

	// Шлюз внешний и best-effort: после исчерпания повторов только логируем
	log.Errorf("Failed to deliver notification after %d retries.", maxRetries)
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
