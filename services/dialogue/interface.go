package dialogue

import (
	"context"

	"dragontravel/models"
	"dragontravel/services/finalize"

	"go.uber.org/zap"
)

// DialogueService is the inbound turn interface: one raw message in, one state
// mutation, one reply out. The transport decides how the text was obtained
// (typed or transcribed); the core does not care.
type DialogueService interface {
	ProcessTurn(ctx context.Context, sessionID, text string) (*models.TurnResult, error)
	Reset(ctx context.Context, sessionID string) error
}

// DefaultDialogueService wires the pure state machine to its collaborators:
// session persistence and the post-completion finalizer.
type DefaultDialogueService struct {
	Store     SessionStore
	Coercer   *Coercer
	Finalizer finalize.Finalizer
	Logger    *zap.Logger
}
