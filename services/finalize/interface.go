package finalize

import (
	"context"

	catalog "dragontravel/database/repository/catalog"
	reservationRepo "dragontravel/database/repository/reservation"
	"dragontravel/models"
	"dragontravel/services/intelligence"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Finalizer receives a fully collected reservation and produces the summary
// text plus an opaque audio handle. Everything behind it (lookups,
// persistence, synthesis) is external to the dialogue core.
type Finalizer interface {
	Finalize(ctx context.Context, res *models.Reservation) (summary string, audioID string, err error)
}

// TaskEnqueuer is the slice of asynq.Client the finalizer needs.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultFinalizer enriches, persists and queues audio synthesis for completed
// reservations.
type DefaultFinalizer struct {
	Reservations reservationRepo.Repository
	Airports     catalog.AirportRepository
	Airlines     catalog.AirlineRepository
	Sentiment    intelligence.SentimentAnalyzer
	Tasks        TaskEnqueuer
	Logger       *zap.Logger
}
