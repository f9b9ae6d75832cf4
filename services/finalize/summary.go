package finalize

import (
	"fmt"
	"strings"
	"unicode"

	"dragontravel/models"
)

// RenderSummary builds the human-readable confirmation, with round-trip and
// one-way wording. A one-way summary never mentions a return date.
func RenderSummary(res *models.Reservation, lang string) string {
	if lang == models.LangSpanish {
		return renderSpanish(res)
	}
	return renderEnglish(res)
}

func renderSpanish(res *models.Reservation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Detalles de su reserva:\n")
	fmt.Fprintf(&b, "Estimado %s,\n", res.ClientName)
	fmt.Fprintf(&b, "su vuelo tiene como Origen %s.\n", titleCase(res.Origin))
	fmt.Fprintf(&b, "El destino es %s.\n", titleCase(res.Destination))
	if res.RoundTrip.True() {
		fmt.Fprintf(&b, "Su tipo de viaje es ida y vuelta.\n")
		fmt.Fprintf(&b, "La fecha de ida es %s.\n", res.DepartureDate)
		fmt.Fprintf(&b, "La fecha de regreso es %s.\n", res.ReturnDate)
	} else {
		fmt.Fprintf(&b, "Su tipo de viaje es solo ida.\n")
		fmt.Fprintf(&b, "La fecha de ida es %s.\n", res.DepartureDate)
	}
	fmt.Fprintf(&b, "El número de personas es %d.\n", res.Passengers)
	fmt.Fprintf(&b, "Viajará en la Aerolínea %s.\n", res.Airline)
	fmt.Fprintf(&b, "Gracias por elegirnos.")
	return b.String()
}

func renderEnglish(res *models.Reservation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Booking details:\n")
	fmt.Fprintf(&b, "Dear %s,\n", res.ClientName)
	fmt.Fprintf(&b, "your flight has %s as Origin.\n", titleCase(res.Origin))
	fmt.Fprintf(&b, "The destination is %s.\n", titleCase(res.Destination))
	if res.RoundTrip.True() {
		fmt.Fprintf(&b, "Your trip type is round trip.\n")
		fmt.Fprintf(&b, "The departure date is %s.\n", res.DepartureDate)
		fmt.Fprintf(&b, "The return date is %s.\n", res.ReturnDate)
	} else {
		fmt.Fprintf(&b, "Your trip type is one way.\n")
		fmt.Fprintf(&b, "The departure date is %s.\n", res.DepartureDate)
	}
	fmt.Fprintf(&b, "The number of passengers is %d.\n", res.Passengers)
	fmt.Fprintf(&b, "You will travel with %s.\n", res.Airline)
	fmt.Fprintf(&b, "Thank you for choosing us.")
	return b.String()
}

// titleCase capitalizes each word, leaving the rest of the runes alone.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
