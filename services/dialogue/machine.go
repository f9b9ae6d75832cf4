package dialogue

import (
	"context"
	"fmt"
	"strings"

	"dragontravel/models"
)

// Outcome is the result of one pure state-machine step.
type Outcome struct {
	// Reply is the next thing to say: a re-prompt, a greeting plus the next
	// question, or empty when the reservation is ready to finalize.
	Reply string
	// Ready is set when the pending queue drained and the session moved to
	// StateReady.
	Ready bool
}

// Advance runs one dialogue turn against the session in place: coerce the
// answer for the front-of-queue field, apply that field's queue delta, pop the
// front, and emit the next localized prompt or the ready signal. It performs
// no I/O; the caller owns loading and persisting the session.
func Advance(ctx context.Context, c *Coercer, sess *models.ConversationSession, rawText string) (Outcome, error) {
	field, ok := sess.Pending.Front()
	if !ok {
		sess.State = models.StateReady
		return Outcome{Ready: true}, nil
	}

	err := c.Apply(ctx, field, &sess.Reservation, &sess.Pending, rawText)
	if err == ErrRepeatPrompt {
		// Closed-choice answer not understood: same prompt, no mutation.
		return Outcome{Reply: PromptFor(field, sess.Reservation.Language)}, nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("coerce %s: %w", field, err)
	}

	// The queue delta for reactive fields happened inside the handler; the
	// answered field itself always leaves from the front.
	popped := sess.Pending.PopFront()
	if popped != field {
		return Outcome{}, fmt.Errorf("queue corrupted: answered %s but popped %s", field, popped)
	}

	if sess.Pending.Empty() {
		sess.State = models.StateReady
		return Outcome{Ready: true}, nil
	}

	next, _ := sess.Pending.Front()
	reply := PromptFor(next, sess.Reservation.Language)
	if field == models.FieldLanguage {
		// Keep the original post-selection greeting ahead of the next question.
		reply = Greeting(sess.Reservation.Language, sess.Reservation.ClientName) + "\n" + reply
	}
	return Outcome{Reply: reply}, nil
}

// Begin initializes a session from the opening message. The first thing a
// client sends is the traveller's name; the initial queue is whatever the
// invariant checklist reports missing on the fresh reservation.
func Begin(sess *models.ConversationSession, firstMessage string) Outcome {
	sess.Reservation.ClientName = strings.TrimSpace(firstMessage)
	sess.Pending = sess.Reservation.MissingFields()
	sess.State = models.StateCollecting

	if sess.Pending.Empty() {
		// In principle the opening message can already satisfy everything.
		sess.State = models.StateReady
		return Outcome{Ready: true}
	}
	front, _ := sess.Pending.Front()
	return Outcome{Reply: PromptFor(front, sess.Reservation.Language)}
}
