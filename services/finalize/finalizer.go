package finalize

import (
	"context"
	"fmt"
	"math/rand"

	"dragontravel/models"
	"dragontravel/services/tasks"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// airlineShortlist backs the uniformly-random assignment when the
// conversation never captured an airline.
var airlineShortlist = []string{
	"KLM", "Delta", "American Airlines", "British Airways", "Lufthansa",
	"Air France", "Emirates", "Qatar Airways", "Singapore Airlines",
	"Cathay Pacific",
}

// AudioID is the stable storage public ID for a reservation's confirmation
// audio. Deterministic so retries overwrite and deletes can find it.
func AudioID(reservationID string) string {
	return "dragontravel/audio/" + reservationID
}

// Finalize enriches the reservation (airport/airline display names, default
// airline, comment sentiment), persists it, renders the localized summary and
// queues audio synthesis. Missing catalog data degrades to synthesized labels;
// persistence or queueing failure is returned as a finalize-step failure and
// leaves the caller's session intact for retry.
func (f *DefaultFinalizer) Finalize(ctx context.Context, res *models.Reservation) (string, string, error) {
	lang := res.Language
	if lang == "" {
		lang = models.LangEnglish
	}

	res.Origin = f.airportDisplay(ctx, res.Origin, lang)
	res.Destination = f.airportDisplay(ctx, res.Destination, lang)

	if res.Airline == "" {
		res.Airline = airlineShortlist[rand.Intn(len(airlineShortlist))]
	}
	res.Airline = f.airlineDisplay(ctx, res.Airline, lang)

	if res.WantsComment.True() && res.Comment != "" && res.Sentiment == nil {
		sentiment, err := f.Sentiment.Score(ctx, res.Comment)
		if err != nil {
			// Enrichment only; the reservation is still valid without it.
			f.Logger.Warn("sentiment scoring failed", zap.Error(err))
		} else {
			res.Sentiment = sentiment
		}
	}

	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	if _, err := f.Reservations.Create(ctx, *res); err != nil {
		return "", "", fmt.Errorf("persist reservation: %w", err)
	}

	summary := RenderSummary(res, lang)

	audioID := AudioID(res.ID)
	task, err := tasks.NewAudioSynthesisTask(tasks.AudioPayload{
		AudioID:  audioID,
		Text:     summary,
		Language: lang,
	})
	if err != nil {
		return "", "", fmt.Errorf("build audio synthesis task: %w", err)
	}
	if _, err := f.Tasks.EnqueueContext(ctx, task); err != nil {
		return "", "", fmt.Errorf("enqueue audio synthesis: %w", err)
	}

	f.Logger.Info("reservation finalized",
		zap.String("id", res.ID), zap.String("audio", audioID))
	return summary, audioID, nil
}

// airportDisplay resolves the airport name by city/region prefix and renders
// it alongside the place the traveller named. Unknown places get a
// synthesized label instead of failing.
func (f *DefaultFinalizer) airportDisplay(ctx context.Context, place, lang string) string {
	if place == "" {
		return place
	}
	name, err := f.Airports.FindByPrefix(ctx, place)
	if err != nil {
		f.Logger.Warn("airport lookup failed", zap.String("place", place), zap.Error(err))
		name = ""
	}
	if name == "" {
		if lang == models.LangSpanish {
			name = "Aeropuerto de " + place
		} else {
			name = "Airport of " + place
		}
	}
	return name + " en " + place
}

func (f *DefaultFinalizer) airlineDisplay(ctx context.Context, airline, lang string) string {
	name, err := f.Airlines.FindByPrefix(ctx, airline)
	if err != nil {
		f.Logger.Warn("airline lookup failed", zap.String("airline", airline), zap.Error(err))
		name = ""
	}
	if name == "" {
		if lang == models.LangSpanish {
			return "Aerolinea local"
		}
		return "local airline"
	}
	return name
}
