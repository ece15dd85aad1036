// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"stylebook/config"
	"stylebook/models"
	"stylebook/services/notification"
	"stylebook/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitAutoRejectWorker runs the async worker in background. It drains the
// auto-reject notification queue that the sweeper feeds.
func InitAutoRejectWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAutoRejectNotify, handleAutoRejectTask(notifSvc))

	go monitorRedisConnection()

	go func() {
		log.Println("[AutoRejectWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[AutoRejectWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[AutoRejectWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleAutoRejectTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.AutoRejectPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[AutoRejectHandler] invalid payload: %v", err)
			return err
		}

		if err := notifSvc.NotifyAutoReject(ctx, p); err != nil {
			log.Printf("[AutoRejectHandler] failed to notify user %s for booking %s: %v", p.UserID, p.BookingID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[AutoRejectWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
