package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"slotcal/config"
	"slotcal/models"
	"slotcal/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// GroupSaver persists one submitted group.
type GroupSaver interface {
	SaveGroup(ctx context.Context, group models.SubmissionGroup) error
}

// QueueRedisOpt returns the asynq connection settings for the submission queue.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitSubmissionWorker starts the submission consumer in the background and returns
// the server so the caller can shut it down.
func InitSubmissionWorker(repo GroupSaver, logger *zap.Logger) *asynq.Server {
	concurrency := config.AppConfig.WorkerConcurrency
	if concurrency <= 0 {
		concurrency = 10
	}
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAvailabilitySubmit, HandleSubmissionTask(repo, logger))

	go func() {
		logger.Info("starting submission worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Error("submission worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("submission worker: max retry attempts reached")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// HandleSubmissionTask stores every group of a queued submission.
func HandleSubmissionTask(repo GroupSaver, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var sub models.NormalizedSubmission
		if err := json.Unmarshal(task.Payload(), &sub); err != nil {
			logger.Error("invalid submission payload", zap.Error(err))
			return fmt.Errorf("decode submission: %v: %w", err, asynq.SkipRetry)
		}

		now := time.Now().UTC()
		for _, group := range sub.Groups {
			group.CreatedAt = now
			if err := repo.SaveGroup(ctx, group); err != nil {
				logger.Error("failed to persist availability group",
					zap.String("groupId", group.GroupID), zap.Error(err))
				return err
			}
			logger.Info("availability group stored",
				zap.String("groupId", group.GroupID),
				zap.Int("days", len(group.Days)))
		}
		return nil
	}
}
