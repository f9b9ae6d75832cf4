package models

import "time"

// Field identifiers, in canonical ask order. These are the wire names the
// existing DragonTravel clients and stored documents already use.
const (
	FieldClientName   = "client_name"
	FieldLanguage     = "language"
	FieldOrigin       = "origen"
	FieldRoundTrip    = "round_trip"
	FieldDestination  = "destino"
	FieldDeparture    = "fecha_ida"
	FieldReturn       = "fecha_regreso"
	FieldPassengers   = "numero_pasajeros"
	FieldWantsComment = "bool_comentario"
	FieldComment      = "comentario"
)

// Supported conversation languages.
const (
	LangEnglish = "en"
	LangSpanish = "es"
)

// TriState is a yes/no answer that may not have been given yet.
type TriState string

const (
	TriUnset TriState = ""
	TriTrue  TriState = "true"
	TriFalse TriState = "false"
)

// Known reports whether the question has been answered at all.
func (t TriState) Known() bool { return t != TriUnset }

// True reports an affirmative answer.
func (t TriState) True() bool { return t == TriTrue }

// Sentiment is the polarity/subjectivity score of a free-text comment.
type Sentiment struct {
	Polarity     float64 `json:"polarity" bson:"polarity"`
	Subjectivity float64 `json:"subjectivity" bson:"subjectivity"`
}

// Reservation is the accumulating result of one intake conversation. Date
// fields hold the canonical DD/MM/YYYY form, or the raw phrase when it could
// not be parsed (the summary then surfaces it verbatim).
type Reservation struct {
	ID            string     `json:"id" bson:"id"`
	ClientName    string     `json:"client_name" bson:"clientName"`
	Language      string     `json:"language" bson:"language"`
	Origin        string     `json:"origen" bson:"origin"`
	Destination   string     `json:"destino" bson:"destination"`
	RoundTrip     TriState   `json:"round_trip" bson:"roundTrip"`
	DepartureDate string     `json:"fecha_ida" bson:"departureDate"`
	ReturnDate    string     `json:"fecha_regreso" bson:"returnDate"`
	Passengers    int        `json:"numero_pasajeros" bson:"passengers"`
	Airline       string     `json:"aerolinea" bson:"airline"`
	WantsComment  TriState   `json:"bool_comentario" bson:"wantsComment"`
	Comment       string     `json:"comentario" bson:"comment"`
	Sentiment     *Sentiment `json:"sentiment_analysis,omitempty" bson:"sentimentAnalysis,omitempty"`
	CreatedAt     time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// MissingFields builds the initial pending queue for a fresh reservation.
// fecha_regreso and comentario are never part of the initial queue; they are
// added reactively once round_trip / bool_comentario are answered.
func (r *Reservation) MissingFields() PendingQueue {
	var q PendingQueue
	if r.Language == "" {
		q.Append(FieldLanguage)
	}
	if r.Origin == "" {
		q.Append(FieldOrigin)
	}
	if !r.RoundTrip.Known() {
		q.Append(FieldRoundTrip)
	}
	if r.Destination == "" {
		q.Append(FieldDestination)
	}
	if r.DepartureDate == "" {
		q.Append(FieldDeparture)
	}
	if r.Passengers == 0 {
		q.Append(FieldPassengers)
	}
	if !r.WantsComment.Known() {
		q.Append(FieldWantsComment)
	}
	return q
}
