package render

import "canteen-widget/models"

const (
	KeyErrorMessage    = "errorMessage"
	KeyNoMenuToday     = "noMenuToday"
	KeyNoMenuTomorrow  = "noMenuTomorrow"
	KeyAllergenMessage = "allergenMessage"
	KeyTitle           = "title"
)

var translations = map[string]map[string]string{
	models.LanguageEnglish: {
		KeyErrorMessage:    "Could not load canteen-data.",
		KeyNoMenuToday:     "There is no menu available for today.",
		KeyNoMenuTomorrow:  "There is no menu available for tomorrow.",
		KeyAllergenMessage: "Currently active allergen filters:",
		KeyTitle:           "Menu",
	},
	models.LanguageGerman: {
		KeyErrorMessage:    "Mensa-Daten konnten nicht geladen werden.",
		KeyNoMenuToday:     "Für heute ist kein Menü verfügbar.",
		KeyNoMenuTomorrow:  "Für morgen ist kein Menü verfügbar.",
		KeyAllergenMessage: "Folgende Allergenfilter sind aktiviert:",
		KeyTitle:           "Speiseplan",
	},
}

// Text returns the translation of key, english for unknown languages.
func Text(language, key string) string {
	texts, ok := translations[language]
	if !ok {
		texts = translations[models.LanguageEnglish]
	}
	if text, ok := texts[key]; ok {
		return text
	}
	return "Missing " + key
}
