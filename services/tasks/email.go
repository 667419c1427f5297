package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"mentorhub/models"
)

const TypeSendEmail = "email:send"

func NewEmailTask(payload models.EmailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendEmail, b, asynq.MaxRetry(3)), nil
}
