package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeAudioSynthesize = "audio:synthesize"

// AudioPayload carries everything the worker needs to synthesize and store
// one confirmation audio.
type AudioPayload struct {
	AudioID  string `json:"audioId"`
	Text     string `json:"text"`
	Language string `json:"language"`
}

// NewAudioSynthesisTask builds the asynq task for one summary.
func NewAudioSynthesisTask(p AudioPayload) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeAudioSynthesize, b, asynq.MaxRetry(5)), nil
}
