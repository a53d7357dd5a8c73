package tasks

import (
	"encoding/json"

	"buildlanka/models"

	"github.com/hibiken/asynq"
)

// TypePartnerSubmitted is the task queued when a registration wizard
// completes successfully.
const TypePartnerSubmitted = "partner:submitted"

// NewPartnerSubmittedTask builds the submission acknowledgement task.
func NewPartnerSubmittedTask(payload models.PartnerSubmittedPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePartnerSubmitted, b), nil
}
