package dialogue

import (
	"context"
	"testing"

	"dragontravel/models"

	"github.com/stretchr/testify/require"
)

func newTestCoercer() *Coercer {
	return NewCoercer(newTestExtractor(), Normalizer{Policy: DefaultYearPolicy()})
}

func TestCoerceLanguage(t *testing.T) {
	c := newTestCoercer()
	ctx := context.Background()

	var r models.Reservation
	var q models.PendingQueue

	require.NoError(t, c.Apply(ctx, models.FieldLanguage, &r, &q, "1"))
	require.Equal(t, models.LangEnglish, r.Language)

	require.NoError(t, c.Apply(ctx, models.FieldLanguage, &r, &q, " 2 "))
	require.Equal(t, models.LangSpanish, r.Language)

	err := c.Apply(ctx, models.FieldLanguage, &r, &q, "english please")
	require.ErrorIs(t, err, ErrRepeatPrompt)
	require.Equal(t, models.LangSpanish, r.Language)
}

func TestCoerceRoundTrip(t *testing.T) {
	c := newTestCoercer()
	ctx := context.Background()

	var r models.Reservation
	q := models.PendingQueue{models.FieldRoundTrip, models.FieldDeparture, models.FieldPassengers}

	require.NoError(t, c.Apply(ctx, models.FieldRoundTrip, &r, &q, "yes"))
	require.True(t, r.RoundTrip.True())
	require.Equal(t, models.PendingQueue{
		models.FieldRoundTrip, models.FieldDeparture, models.FieldReturn, models.FieldPassengers,
	}, q)

	// Flipping to one-way drops the queued return date again.
	require.NoError(t, c.Apply(ctx, models.FieldRoundTrip, &r, &q, "no"))
	require.False(t, r.RoundTrip.True())
	require.False(t, q.Contains(models.FieldReturn))
}

func TestCoerceRoundTripAmbiguousIsNegative(t *testing.T) {
	c := newTestCoercer()

	var r models.Reservation
	var q models.PendingQueue
	require.NoError(t, c.Apply(context.Background(), models.FieldRoundTrip, &r, &q, "maybe"))
	require.Equal(t, models.TriFalse, r.RoundTrip)
	require.False(t, q.Contains(models.FieldReturn))
}

func TestCoerceWantsComment(t *testing.T) {
	c := newTestCoercer()
	ctx := context.Background()

	var r models.Reservation
	q := models.PendingQueue{models.FieldWantsComment}

	require.NoError(t, c.Apply(ctx, models.FieldWantsComment, &r, &q, "sí"))
	require.True(t, r.WantsComment.True())
	require.True(t, q.Contains(models.FieldComment))

	require.NoError(t, c.Apply(ctx, models.FieldWantsComment, &r, &q, "no gracias"))
	require.Equal(t, models.TriFalse, r.WantsComment)
	require.False(t, q.Contains(models.FieldComment))
}

func TestCoercePassengers(t *testing.T) {
	c := newTestCoercer()
	ctx := context.Background()

	tests := []struct {
		answer string
		want   int
	}{
		{"3", 3},
		{"two", 2},
		{"tres", 3},
		{"we are 4 people", 4},
		{"just me", 1},
		{"", 1},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			var r models.Reservation
			var q models.PendingQueue
			require.NoError(t, c.Apply(ctx, models.FieldPassengers, &r, &q, tt.answer))
			require.Equal(t, tt.want, r.Passengers)
		})
	}
}

func TestCoerceDates(t *testing.T) {
	c := newTestCoercer()
	ctx := context.Background()

	var r models.Reservation
	var q models.PendingQueue

	require.NoError(t, c.Apply(ctx, models.FieldDeparture, &r, &q, "march 14"))
	require.Equal(t, "14/03/2026", r.DepartureDate)

	require.NoError(t, c.Apply(ctx, models.FieldReturn, &r, &q, "20 de marzo"))
	require.Equal(t, "20/03/2025", r.ReturnDate)

	// Unparseable phrases survive verbatim.
	require.NoError(t, c.Apply(ctx, models.FieldDeparture, &r, &q, "next Tuesday"))
	require.Equal(t, "next Tuesday", r.DepartureDate)
}

func TestCoerceOriginMergesDiscoveredFields(t *testing.T) {
	c := newTestCoercer()

	var r models.Reservation
	var q models.PendingQueue
	err := c.Apply(context.Background(), models.FieldOrigin, &r, &q,
		"I want two tickets from madrid to rome, flying on march 14")
	require.NoError(t, err)
	require.Equal(t, "madrid", r.Origin)
	require.Equal(t, "rome", r.Destination)
	require.Equal(t, "14/03/2026", r.DepartureDate)
	require.Equal(t, 2, r.Passengers)
}

func TestCoerceOriginFallsBackToRawAnswer(t *testing.T) {
	c := newTestCoercer()

	r := models.Reservation{ClientName: "Maria"}
	var q models.PendingQueue
	require.NoError(t, c.Apply(context.Background(), models.FieldOrigin, &r, &q, "madrid"))
	require.Equal(t, "madrid", r.Origin)
	require.Equal(t, "Maria", r.ClientName)
}

func TestCoerceFreeTextFields(t *testing.T) {
	c := newTestCoercer()
	ctx := context.Background()

	var r models.Reservation
	var q models.PendingQueue

	require.NoError(t, c.Apply(ctx, models.FieldDestination, &r, &q, "  Rome "))
	require.Equal(t, "Rome", r.Destination)

	require.NoError(t, c.Apply(ctx, models.FieldComment, &r, &q, "great service"))
	require.Equal(t, "great service", r.Comment)
}
