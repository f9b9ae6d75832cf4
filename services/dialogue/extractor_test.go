package dialogue

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubTranslator struct {
	out string
	err error
}

func (s *stubTranslator) ToEnglish(_ context.Context, text string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.out == "" {
		return text, nil
	}
	return s.out, nil
}

func newTestExtractor() *Extractor {
	return &Extractor{Logger: zap.NewNop()}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"quiero dos boletos de madrid a roma", "es"},
		{"I want two tickets from Madrid to Rome", "en"},
		{"quiero two tickets from madrid", "mixed"},
		{"hello there", "en"},
		{"", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			require.Equal(t, tt.want, DetectLanguage(tt.text))
		})
	}
}

func TestExtractPlacesFromEntities(t *testing.T) {
	e := newTestExtractor()
	out := e.Extract(context.Background(), "I want to fly with Iberia from Madrid to Rome", "en")
	require.Equal(t, "Madrid", out.Origin)
	require.Equal(t, "Rome", out.Destination)
	require.Equal(t, "Iberia", out.Airline)
}

func TestExtractPlacesPatternFallback(t *testing.T) {
	e := newTestExtractor()
	out := e.Extract(context.Background(), "i want to go from madrid to rome", "en")
	require.Equal(t, "madrid", out.Origin)
	require.Equal(t, "rome", out.Destination)
}

func TestExtractPlacesSpanish(t *testing.T) {
	e := newTestExtractor()
	out := e.Extract(context.Background(), "quiero un vuelo de madrid a roma", "es")
	require.Equal(t, "madrid", out.Origin)
	require.Equal(t, "roma", out.Destination)
}

func TestExtractDestinationCleanup(t *testing.T) {
	require.Equal(t, "rome", cleanDestination("rome for my vacation"))
	require.Equal(t, "roma", cleanDestination("roma el"))
	require.Equal(t, "new york", cleanDestination("  new york  "))
}

func TestExtractPassengers(t *testing.T) {
	e := newTestExtractor()
	tests := []struct {
		text string
		want int
	}{
		{"two tickets please", 2},
		{"a flight to paris", 1},
		{"5 boletos", 5},
		{"dos pasajes", 2},
		{"ten passengers", 10},
		{"i want tickets", 1},
		{"hello", 0},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			out := e.Extract(context.Background(), tt.text, "en")
			require.Equal(t, tt.want, out.Passengers)
		})
	}
}

func TestExtractDate(t *testing.T) {
	e := newTestExtractor()

	out := e.Extract(context.Background(), "flying on march 14 with my family", "en")
	require.Equal(t, "march 14", out.DepartureDate)

	out = e.Extract(context.Background(), "quiero viajar el 15 de marzo", "es")
	require.Equal(t, "15 de marzo", out.DepartureDate)

	out = e.Extract(context.Background(), "and i will be back on april 2nd", "en")
	require.Equal(t, "april 2nd", out.DepartureDate)
}

func TestExtractUsesTranslation(t *testing.T) {
	e := &Extractor{
		Translator: &stubTranslator{out: "i want two tickets from madrid to rome"},
		Logger:     zap.NewNop(),
	}
	out := e.Extract(context.Background(), "quiero dos boletos de madrid a roma", "es")
	require.Equal(t, 2, out.Passengers)
}

func TestExtractToleratesTranslationFailure(t *testing.T) {
	e := &Extractor{
		Translator: &stubTranslator{err: errors.New("model unavailable")},
		Logger:     zap.NewNop(),
	}
	out := e.Extract(context.Background(), "quiero dos boletos de madrid a roma", "es")
	require.Equal(t, "madrid", out.Origin)
	require.Equal(t, "roma", out.Destination)
	require.Equal(t, 2, out.Passengers)
}
