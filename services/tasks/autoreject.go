// File: services/tasks/autoreject.go
package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"stylebook/models"

	"github.com/hibiken/asynq"
)

const TypeAutoRejectNotify = "booking:auto_reject_notify"

// NewAutoRejectTask wraps the payload into an asynq task for the worker.
func NewAutoRejectTask(payload models.AutoRejectPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeAutoRejectNotify, b), nil
}

// AsynqEnqueuer pushes auto-reject follow-ups onto the task queue.
type AsynqEnqueuer struct {
	Client *asynq.Client
}

func NewAsynqEnqueuer(client *asynq.Client) *AsynqEnqueuer {
	return &AsynqEnqueuer{Client: client}
}

func (e *AsynqEnqueuer) EnqueueAutoReject(ctx context.Context, payload models.AutoRejectPayload) error {
	task, err := NewAutoRejectTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build auto-reject task: %w", err)
	}
	if _, err := e.Client.EnqueueContext(ctx, task, asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue auto-reject task: %w", err)
	}
	return nil
}
