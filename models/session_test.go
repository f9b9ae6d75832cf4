package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPendingQueueFrontPop(t *testing.T) {
	q := PendingQueue{FieldLanguage, FieldOrigin}

	front, ok := q.Front()
	require.True(t, ok)
	require.Equal(t, FieldLanguage, front)

	require.Equal(t, FieldLanguage, q.PopFront())
	require.Equal(t, FieldOrigin, q.PopFront())
	require.True(t, q.Empty())

	_, ok = q.Front()
	require.False(t, ok)
	require.Equal(t, "", q.PopFront())
}

func TestPendingQueueInsertCanonicalOrder(t *testing.T) {
	q := PendingQueue{FieldDestination, FieldDeparture, FieldPassengers, FieldWantsComment}

	q.Insert(FieldReturn)
	require.Equal(t, PendingQueue{
		FieldDestination, FieldDeparture, FieldReturn, FieldPassengers, FieldWantsComment,
	}, q)

	// Inserting again is a no-op.
	q.Insert(FieldReturn)
	require.Len(t, q, 5)
}

func TestPendingQueueInsertAtBack(t *testing.T) {
	q := PendingQueue{FieldWantsComment}
	q.Insert(FieldComment)
	require.Equal(t, PendingQueue{FieldWantsComment, FieldComment}, q)
}

func TestPendingQueueRemove(t *testing.T) {
	q := PendingQueue{FieldDeparture, FieldReturn, FieldPassengers}
	q.Remove(FieldReturn)
	require.Equal(t, PendingQueue{FieldDeparture, FieldPassengers}, q)

	// Removing an absent field changes nothing.
	q.Remove(FieldReturn)
	require.Len(t, q, 2)
}

func TestMissingFieldsFresh(t *testing.T) {
	var r Reservation
	require.Equal(t, PendingQueue{
		FieldLanguage, FieldOrigin, FieldRoundTrip, FieldDestination,
		FieldDeparture, FieldPassengers, FieldWantsComment,
	}, r.MissingFields())
}

func TestMissingFieldsSkipsFilled(t *testing.T) {
	r := Reservation{
		Language:      LangEnglish,
		Origin:        "madrid",
		Destination:   "rome",
		DepartureDate: "14/03/2026",
		Passengers:    2,
	}
	require.Equal(t, PendingQueue{FieldRoundTrip, FieldWantsComment}, r.MissingFields())
}

func TestMissingFieldsNeverQueuesReactiveFields(t *testing.T) {
	var r Reservation
	q := r.MissingFields()
	require.False(t, q.Contains(FieldReturn))
	require.False(t, q.Contains(FieldComment))
}

func TestTriState(t *testing.T) {
	require.False(t, TriUnset.Known())
	require.True(t, TriTrue.Known())
	require.True(t, TriFalse.Known())
	require.True(t, TriTrue.True())
	require.False(t, TriFalse.True())
}
