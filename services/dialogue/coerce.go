package dialogue

import (
	"context"
	"strconv"
	"strings"

	"dragontravel/models"
)

// affirmatives is the closed token set that counts as "yes". Anything else is
// a hard "no": ambiguous answers ("maybe") deliberately take the negative
// branch instead of re-prompting. Only the language field ever re-prompts.
var affirmatives = map[string]bool{
	"si": true, "sí": true, "yes": true, "y": true,
}

func isAffirmative(answer string) bool {
	return affirmatives[strings.ToLower(strings.TrimSpace(answer))]
}

// answerHandler coerces the raw answer for one field into the reservation and
// applies that field's queue delta. Handlers are pure record/queue
// transformations; the only error any of them returns is ErrRepeatPrompt.
type answerHandler func(ctx context.Context, r *models.Reservation, q *models.PendingQueue, answer string) error

// Coercer validates and stores answers per field through a dispatch table, so
// adding a field means registering one handler rather than growing a
// conditional.
type Coercer struct {
	Extractor *Extractor
	Dates     Normalizer

	handlers map[string]answerHandler
}

// NewCoercer wires the per-field handler table.
func NewCoercer(extractor *Extractor, dates Normalizer) *Coercer {
	c := &Coercer{Extractor: extractor, Dates: dates}
	c.handlers = map[string]answerHandler{
		models.FieldLanguage:     c.coerceLanguage,
		models.FieldOrigin:       c.coerceOrigin,
		models.FieldDeparture:    c.coerceDate(models.FieldDeparture),
		models.FieldReturn:       c.coerceDate(models.FieldReturn),
		models.FieldRoundTrip:    c.coerceRoundTrip,
		models.FieldWantsComment: c.coerceWantsComment,
		models.FieldPassengers:   c.coercePassengers,
	}
	return c
}

// Apply coerces the answer for the given field. Fields without a dedicated
// handler store the trimmed raw answer.
func (c *Coercer) Apply(ctx context.Context, field string, r *models.Reservation, q *models.PendingQueue, answer string) error {
	if h, ok := c.handlers[field]; ok {
		return h(ctx, r, q, answer)
	}
	switch field {
	case models.FieldDestination:
		r.Destination = strings.TrimSpace(answer)
	case models.FieldComment:
		r.Comment = strings.TrimSpace(answer)
	case models.FieldClientName:
		r.ClientName = strings.TrimSpace(answer)
	}
	return nil
}

func (c *Coercer) coerceLanguage(_ context.Context, r *models.Reservation, _ *models.PendingQueue, answer string) error {
	switch strings.TrimSpace(answer) {
	case "1":
		r.Language = models.LangEnglish
	case "2":
		r.Language = models.LangSpanish
	default:
		return ErrRepeatPrompt
	}
	return nil
}

// coerceOrigin re-runs the extractor over the whole answer and merges every
// field it discovers, so one free-form reply can fill origin, destination,
// date, passengers and airline at once even though only origin was asked.
func (c *Coercer) coerceOrigin(ctx context.Context, r *models.Reservation, _ *models.PendingQueue, answer string) error {
	lowered := strings.ToLower(answer)
	ext := c.Extractor.Extract(ctx, lowered, DetectLanguage(lowered))
	if ext.Origin != "" {
		r.Origin = ext.Origin
	} else {
		r.Origin = strings.TrimSpace(answer)
	}
	if ext.Destination != "" {
		r.Destination = ext.Destination
	}
	if ext.DepartureDate != "" {
		r.DepartureDate = c.Dates.Normalize(ext.DepartureDate)
	}
	if ext.Passengers > 0 {
		r.Passengers = ext.Passengers
	}
	if ext.Airline != "" {
		r.Airline = ext.Airline
	}
	return nil
}

func (c *Coercer) coerceDate(field string) answerHandler {
	return func(_ context.Context, r *models.Reservation, _ *models.PendingQueue, answer string) error {
		normalized := c.Dates.Normalize(strings.TrimSpace(answer))
		if field == models.FieldReturn {
			r.ReturnDate = normalized
		} else {
			r.DepartureDate = normalized
		}
		return nil
	}
}

func (c *Coercer) coerceRoundTrip(_ context.Context, r *models.Reservation, q *models.PendingQueue, answer string) error {
	if isAffirmative(answer) {
		r.RoundTrip = models.TriTrue
		q.Insert(models.FieldReturn)
	} else {
		r.RoundTrip = models.TriFalse
		q.Remove(models.FieldReturn)
	}
	return nil
}

func (c *Coercer) coerceWantsComment(_ context.Context, r *models.Reservation, q *models.PendingQueue, answer string) error {
	if isAffirmative(answer) {
		r.WantsComment = models.TriTrue
		q.Insert(models.FieldComment)
	} else {
		r.WantsComment = models.TriFalse
		q.Remove(models.FieldComment)
	}
	return nil
}

// coercePassengers parses a count out of digits or cardinal words; a reply
// with no recognizable number books a single passenger.
func (c *Coercer) coercePassengers(_ context.Context, r *models.Reservation, _ *models.PendingQueue, answer string) error {
	trimmed := strings.TrimSpace(strings.ToLower(answer))
	if n, ok := numberWords[trimmed]; ok {
		r.Passengers = n
		return nil
	}
	for _, tok := range strings.Fields(trimmed) {
		if n, ok := numberWords[tok]; ok {
			r.Passengers = n
			return nil
		}
		if n, err := strconv.Atoi(tok); err == nil && n > 0 {
			r.Passengers = n
			return nil
		}
	}
	r.Passengers = 1
	return nil
}
