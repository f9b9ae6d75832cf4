package dialogue

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dragontravel/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProcessTurn handles one conversation turn. An unknown session id starts a
// new conversation whose opening message is the traveller's name; known
// sessions advance the state machine. When the queue drains the reservation is
// finalized; the session is only destroyed after finalize succeeds, so a
// failed finalize leaves the turn retryable.
func (s *DefaultDialogueService) ProcessTurn(ctx context.Context, sessionID, text string) (*models.TurnResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty message")
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	sess, err := s.Store.Get(ctx, sessionID)
	switch {
	case errors.Is(err, ErrSessionNotFound):
		sess = &models.ConversationSession{ID: sessionID, State: models.StateCollecting}
		outcome := Begin(sess, text)
		if outcome.Ready {
			if err := s.Store.Save(ctx, sess); err != nil {
				return nil, fmt.Errorf("save session: %w", err)
			}
			return s.finish(ctx, sess)
		}
		if err := s.Store.Save(ctx, sess); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
		return &models.TurnResult{SessionID: sess.ID, Reply: outcome.Reply}, nil
	case err != nil:
		return nil, fmt.Errorf("load session: %w", err)
	}

	if sess.State == models.StateReady {
		// A previous finalize attempt failed after the queue drained; retry it
		// without consuming the new message as an answer.
		return s.finish(ctx, sess)
	}

	outcome, err := Advance(ctx, s.Coercer, sess, text)
	if err != nil {
		return nil, err
	}
	if outcome.Ready {
		if err := s.Store.Save(ctx, sess); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
		return s.finish(ctx, sess)
	}
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &models.TurnResult{SessionID: sess.ID, Reply: outcome.Reply}, nil
}

// finish hands the completed reservation to the finalizer and tears the
// session down on success.
func (s *DefaultDialogueService) finish(ctx context.Context, sess *models.ConversationSession) (*models.TurnResult, error) {
	// The reservation id is the session id, so a retried finalize upserts the
	// document a partially-failed earlier attempt may already have written.
	if sess.Reservation.ID == "" {
		sess.Reservation.ID = sess.ID
	}
	summary, audioID, err := s.Finalizer.Finalize(ctx, &sess.Reservation)
	if err != nil {
		s.Logger.Error("finalize failed, session kept for retry",
			zap.String("sessionId", sess.ID), zap.Error(err))
		return nil, fmt.Errorf("finalize reservation: %w", err)
	}
	sess.State = models.StateComplete
	if err := s.Store.Delete(ctx, sess.ID); err != nil {
		s.Logger.Warn("failed to delete completed session",
			zap.String("sessionId", sess.ID), zap.Error(err))
	}
	return &models.TurnResult{
		SessionID: sess.ID,
		Reply:     summary,
		AudioID:   audioID,
		Done:      true,
	}, nil
}

// Reset drops a session so the next message starts a fresh conversation.
func (s *DefaultDialogueService) Reset(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}
