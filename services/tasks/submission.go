package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"slotcal/models"

	"github.com/hibiken/asynq"
)

const TypeAvailabilitySubmit = "availability:submit"

// NewSubmissionTask wraps a normalized submission as a queue task.
func NewSubmissionTask(sub models.NormalizedSubmission) (*asynq.Task, error) {
	b, err := json.Marshal(sub)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeAvailabilitySubmit, b, asynq.MaxRetry(5)), nil
}

// Enqueuer is the part of *asynq.Client the submitter needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueSubmitter hands submissions to the booking side through the task queue.
type QueueSubmitter struct {
	Client Enqueuer
}

func NewQueueSubmitter(client Enqueuer) *QueueSubmitter {
	return &QueueSubmitter{Client: client}
}

func (q *QueueSubmitter) Submit(ctx context.Context, sub models.NormalizedSubmission) error {
	task, err := NewSubmissionTask(sub)
	if err != nil {
		return fmt.Errorf("failed to build submission task: %w", err)
	}
	if _, err := q.Client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue submission: %w", err)
	}
	return nil
}
