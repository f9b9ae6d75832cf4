package dialogue

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Translator turns a (possibly Spanish) utterance into English so the English
// extraction patterns can run against it. Implementations may call out to an
// external model; the extractor tolerates failure and falls back to the raw
// text.
type Translator interface {
	ToEnglish(ctx context.Context, text string) (string, error)
}

// Extraction is the partial reservation one free-form message yields. Zero
// values mean "not found"; extraction never fails on absent data.
type Extraction struct {
	Origin        string
	Destination   string
	DepartureDate string
	Passengers    int
	Airline       string
}

var (
	spanishMarkers = map[string]bool{
		"quiero": true, "necesito": true, "boletos": true, "pasajes": true,
		"vuelos": true, "de": true, "para": true, "con": true, "y": true,
	}
	englishMarkers = map[string]bool{
		"want": true, "need": true, "tickets": true, "flights": true,
		"from": true, "to": true, "with": true, "and": true,
	}
)

// DetectLanguage classifies the dominant language of a message from fixed
// marker vocabularies. Both vocabularies present yields "mixed"; neither
// defaults to English.
func DetectLanguage(text string) string {
	tokens := strings.Fields(strings.ToLower(text))
	var es, en bool
	for _, tok := range tokens {
		if spanishMarkers[tok] {
			es = true
		}
		if englishMarkers[tok] {
			en = true
		}
	}
	switch {
	case es && en:
		return "mixed"
	case es:
		return "es"
	default:
		return "en"
	}
}

var (
	placesES = regexp.MustCompile(`(?i)de\s+([a-záéíóúñ\s]+)\s+a\s+([a-záéíóúñ\s]+)`)
	placesEN = regexp.MustCompile(`(?i)from\s+([a-z\s]+)\s+to\s+([a-z\s]+)`)

	entityPattern = regexp.MustCompile(`\b[A-ZÁÉÍÓÚÑ][a-záéíóúñ]+(?:\s+[A-ZÁÉÍÓÚÑ][a-záéíóúñ]+)*\b`)

	dateEN        = regexp.MustCompile(`(?i)\b((?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}(?:st|nd|rd|th)?)\b`)
	dateESFall    = regexp.MustCompile(`(?i)(?:el\s+)?(\d{1,2}\s*de\s*(?:enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|octubre|noviembre|diciembre))`)
	dateENFall    = regexp.MustCompile(`(?i)back on\s+([a-z]+\s+\d{1,2}(?:st|nd|rd|th)?)`)
	trailingElRE  = regexp.MustCompile(`(?i)\s+el$`)
	passengerRE   = regexp.MustCompile(`(?i)(?:(\d+|one|two|three|four|five|six|seven|eight|nine|ten|an|a|uno|un|dos|tres|cuatro|cinco|seis|siete|ocho|nueve|diez)\s+)?(?:(?:round[-\s]?trip|one[-\s]?way(?:\s+trip)?)\s+)?(people|ticket(?:s)?|passengers|seats|pasajes|boletos|flight(?:s)?|vuelo(?:s)?|passages)`)
)

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"a": 1, "an": 1,
	"uno": 1, "un": 1, "dos": 2, "tres": 3, "cuatro": 4, "cinco": 5,
	"seis": 6, "siete": 7, "ocho": 8, "nueve": 9, "diez": 10,
}

var airlineKeywords = []string{"air", "aero", "airlines", "airways", "fly", "flight", "iberia"}

// exclusion keeps intent verbs from being mistaken for place mentions.
var exclusion = map[string]bool{
	"i want": true, "buy": true, "reserve": true, "need": true,
	"quiero": true, "necesito": true, "i": true,
}

func looksLikeAirline(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range airlineKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Extractor populates as many reservation fields as possible from one
// free-form message.
type Extractor struct {
	Translator Translator
	Logger     *zap.Logger
}

// Extract runs the full extraction pass. lang is the detected dialogue
// language ("es", "en" or "mixed").
func (e *Extractor) Extract(ctx context.Context, text, lang string) Extraction {
	var out Extraction

	english := text
	if e.Translator != nil {
		if tr, err := e.Translator.ToEnglish(ctx, text); err == nil && strings.TrimSpace(tr) != "" {
			english = tr
		} else if err != nil && e.Logger != nil {
			e.Logger.Debug("extractor: translation failed, using raw text", zap.Error(err))
		}
	}

	// Location mentions: entity-style pass first, then the from/to pattern of
	// the current language.
	places := e.entityPlaces(text)
	if len(places) < 2 {
		pattern := placesEN
		probe := english
		if lang == "es" {
			pattern = placesES
			probe = text
		}
		if m := pattern.FindStringSubmatch(probe); m != nil {
			places = []string{strings.TrimSpace(m[1]), strings.TrimSpace(m[2])}
		}
	}
	if len(places) >= 2 {
		out.Origin = places[0]
		out.Destination = cleanDestination(places[1])
	} else if len(places) == 1 {
		out.Origin = places[0]
	}

	// Date expression.
	if m := dateEN.FindStringSubmatch(english); m != nil {
		out.DepartureDate = strings.TrimSpace(m[1])
	} else if lang == "es" {
		if m := dateESFall.FindStringSubmatch(text); m != nil {
			out.DepartureDate = strings.TrimSpace(m[1])
		}
	}
	if out.DepartureDate == "" {
		if m := dateENFall.FindStringSubmatch(english); m != nil {
			out.DepartureDate = strings.TrimSpace(m[1])
		}
	}

	// Passenger count: the noun phrase alone implies one passenger.
	match := passengerRE.FindStringSubmatch(english)
	if match == nil {
		match = passengerRE.FindStringSubmatch(text)
	}
	if match != nil {
		out.Passengers = parsePassengerNumber(match[1])
	}

	// Airline mention, first keyword hit wins.
	for _, ent := range entityPattern.FindAllString(text, -1) {
		if looksLikeAirline(ent) {
			out.Airline = ent
			break
		}
	}

	return out
}

// entityPlaces approximates a named-entity pass: capitalized word sequences
// that are neither intent verbs nor airline mentions.
func (e *Extractor) entityPlaces(text string) []string {
	var places []string
	for _, ent := range entityPattern.FindAllString(text, -1) {
		lower := strings.ToLower(ent)
		if exclusion[lower] || looksLikeAirline(ent) {
			continue
		}
		places = append(places, ent)
		if len(places) == 2 {
			break
		}
	}
	return places
}

// cleanDestination strips a purpose clause and a trailing Spanish article the
// from/to pattern tends to swallow.
func cleanDestination(dest string) string {
	if idx := strings.Index(dest, " for "); idx >= 0 {
		dest = dest[:idx]
	}
	dest = trailingElRE.ReplaceAllString(strings.TrimSpace(dest), "")
	return strings.TrimSpace(dest)
}

func parsePassengerNumber(numStr string) int {
	if numStr == "" {
		return 1
	}
	lower := strings.ToLower(numStr)
	if n, ok := numberWords[lower]; ok {
		return n
	}
	if n, err := strconv.Atoi(lower); err == nil && n > 0 {
		return n
	}
	return 1
}
