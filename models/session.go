package models

import "time"

// SessionState tracks where a conversation is in its lifecycle.
type SessionState string

const (
	StateCollecting SessionState = "collecting"
	StateReady      SessionState = "ready"
	StateComplete   SessionState = "complete"
)

// fieldRank fixes the canonical ask order used by Insert.
var fieldRank = map[string]int{
	FieldLanguage:     0,
	FieldOrigin:       1,
	FieldRoundTrip:    2,
	FieldDestination:  3,
	FieldDeparture:    4,
	FieldReturn:       5,
	FieldPassengers:   6,
	FieldWantsComment: 7,
	FieldComment:      8,
}

// PendingQueue is the ordered set of field identifiers still needing an
// answer. Only the dialogue state machine mutates it.
type PendingQueue []string

// Front returns the field currently being asked.
func (q PendingQueue) Front() (string, bool) {
	if len(q) == 0 {
		return "", false
	}
	return q[0], true
}

// PopFront removes and returns the front field.
func (q *PendingQueue) PopFront() string {
	if len(*q) == 0 {
		return ""
	}
	f := (*q)[0]
	*q = (*q)[1:]
	return f
}

// Contains reports whether f is queued.
func (q PendingQueue) Contains(f string) bool {
	for _, v := range q {
		if v == f {
			return true
		}
	}
	return false
}

// Append adds f to the back if not already queued.
func (q *PendingQueue) Append(f string) {
	if q.Contains(f) {
		return
	}
	*q = append(*q, f)
}

// Insert adds f in canonical ask order among the fields already queued, so a
// reactively added fecha_regreso is asked before numero_pasajeros. No-op when
// f is already queued. The front element is never displaced: every field that
// can trigger an Insert ranks below the field it inserts.
func (q *PendingQueue) Insert(f string) {
	if q.Contains(f) {
		return
	}
	rank := fieldRank[f]
	for i, existing := range *q {
		if fieldRank[existing] > rank {
			rest := append(PendingQueue{f}, (*q)[i:]...)
			*q = append((*q)[:i:i], rest...)
			return
		}
	}
	*q = append(*q, f)
}

// Remove deletes f wherever it sits in the queue.
func (q *PendingQueue) Remove(f string) {
	for i, v := range *q {
		if v == f {
			*q = append((*q)[:i], (*q)[i+1:]...)
			return
		}
	}
}

// Empty reports a fully collected reservation.
func (q PendingQueue) Empty() bool { return len(q) == 0 }

// ConversationSession binds one reservation to its pending queue. A session is
// exclusively owned by its id; the surrounding service serializes turns per
// session.
type ConversationSession struct {
	ID          string       `json:"sessionId"`
	Reservation Reservation  `json:"reserva"`
	Pending     PendingQueue `json:"pendingFields"`
	State       SessionState `json:"state"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
