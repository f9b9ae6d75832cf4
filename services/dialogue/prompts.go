package dialogue

import (
	"fmt"

	"dragontravel/models"
)

var promptsES = map[string]string{
	models.FieldClientName:   "Por favor, ingrese su nombre: ",
	models.FieldOrigin:       "Por favor, ingrese el origen: ",
	models.FieldDestination:  "Por favor, ingrese el destino: ",
	models.FieldDeparture:    "Por favor, ingrese la fecha de salida: ",
	models.FieldReturn:       "Por favor, ingrese la fecha de regreso: ",
	models.FieldPassengers:   "Por favor, ingrese el número de pasajeros: ",
	models.FieldRoundTrip:    "¿Es su vuelo de ida y vuelta? (si/no): ",
	models.FieldWantsComment: "¿Te gustaría dejarnos un comentario o sugerencia? (si/no): ",
	models.FieldComment:      "Cuéntanos, ¿qué te pareció nuestro servicio?",
}

var promptsEN = map[string]string{
	models.FieldClientName:   "Please enter your name: ",
	models.FieldOrigin:       "Please enter origin: ",
	models.FieldDestination:  "Please enter destination: ",
	models.FieldDeparture:    "Please enter departure date: ",
	models.FieldReturn:       "Please enter return date: ",
	models.FieldPassengers:   "Please enter number of passengers: ",
	models.FieldRoundTrip:    "Is your flight round trip? (yes/no): ",
	models.FieldWantsComment: "Would you like to leave us a comment or suggestion? (yes/no): ",
	models.FieldComment:      "Tell us, how did you find our service?",
}

// languagePrompt is bilingual on purpose: it is asked before the dialogue
// language is known.
const languagePrompt = "Por favor, presiona 1 para inglés o 2 para español. " +
	"Please press 1 for English or 2 for Spanish."

// PromptFor returns the localized question for a field. Unset or unknown
// language falls back to English.
func PromptFor(field, lang string) string {
	if field == models.FieldLanguage {
		return languagePrompt
	}
	prompts := promptsEN
	if lang == models.LangSpanish {
		prompts = promptsES
	}
	if p, ok := prompts[field]; ok {
		return p
	}
	if lang == models.LangSpanish {
		return fmt.Sprintf("Por favor, ingrese %s: ", field)
	}
	return fmt.Sprintf("Please enter %s: ", field)
}

// Greeting is emitted right after the language is chosen.
func Greeting(lang, clientName string) string {
	if lang == models.LangSpanish {
		return fmt.Sprintf("Hola, %s. Cuéntanos, ¿cómo podemos ayudarte?", clientName)
	}
	return fmt.Sprintf("Hi, %s. Tell us, how can we help you?", clientName)
}
