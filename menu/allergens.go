package menu

import (
	"strings"

	"canteen-widget/models"
)

const (
	SaladBarPrefixGerman  = "Auswahl an angemachten Salaten"
	SaladBarPrefixEnglish = "daily salad"
)

// allergenNames maps allergen codes to their german and english name.
var allergenNames = map[string][2]string{
	"1":   {"Farbstoffe", "Colorants"},
	"2":   {"Konservierungsstoffe", "Preservatives"},
	"3":   {"Antioxidationsmittel", "Antioxidants"},
	"4":   {"Geschmacksverstärker", "Flavour enhancers"},
	"5":   {"Geschwefelt", "Sulphurised"},
	"6":   {"Geschwärzt", "Blackened"},
	"7":   {"Gewachst", "Waxed"},
	"8":   {"Phosphat", "Phosphate"},
	"9":   {"Süßungsmittel", "Sweetener"},
	"10":  {"Phenylalaninquelle", "phenylalanine source"},
	"Ho":  {"Honig", "Honey"},
	"S":   {"Schweinefleisch", "Pork"},
	"G":   {"Geflügelfleisch", "Poultry meat"},
	"R":   {"Rindfleisch", "Beef"},
	"Gl":  {"Gluten", "Gluten"},
	"We":  {"Weizen (inkl. Dinkel)", "Wheat flour (incl. spelt)"},
	"Ro":  {"Roggen", "Rye"},
	"Ge":  {"Gerste", "Barley"},
	"Haf": {"Hafer", "Oats"},
	"Kr":  {"Krebstiere", "Shellfish"},
	"Ei":  {"Eier", "Eggs"},
	"Fi":  {"Fisch", "Fish"},
	"En":  {"Erdnüsse", "Peanuts"},
	"So":  {"Soja", "Soya"},
	"La":  {"Milch", "Milk"},
	"Sl":  {"Sellerie", "Celery"},
	"Sf":  {"Senf", "Mustard"},
	"Se":  {"Sesamsamen", "Sesame"},
	"Sw":  {"Schwefeldioxid und Sulfite", "Sulphur dioxides and sulphites"},
	"Lu":  {"Lupine", "Lupine"},
	"Wt":  {"Weichtiere", "Molluscs"},
	"Nu":  {"Schalenfrüchte", "Nuts"},
	"Man": {"Mandel", "Almond"},
	"Has": {"Haselnüsse", "Hazelnuts"},
	"Wa":  {"Walnüsse", "Walnuts"},
	"Ka":  {"Kaschunüsse", "Cashews"},
	"Pe":  {"Pecannüsse", "Pecans"},
	"Pa":  {"Paranüsse", "Brazil nuts"},
	"Pi":  {"Pistazien", "Pistachios"},
	"Mac": {"Macadamianüsse", "Macadamia nuts"},
}

// AllergenName returns the human readable name of an allergen code, or the code itself if it is unknown.
func AllergenName(code, language string) string {
	names, ok := allergenNames[code]
	if !ok {
		return code
	}
	if language == models.LanguageGerman {
		return names[0]
	}
	return names[1]
}

// AllergenNames returns the names of all codes, in the given order.
func AllergenNames(codes []string, language string) []string {
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, AllergenName(code, language))
	}
	return names
}

// IsSaladBar reports whether the unshortened meal name is the salad bar.
func IsSaladBar(mealName string) bool {
	return strings.HasPrefix(mealName, SaladBarPrefixGerman) || strings.HasPrefix(mealName, SaladBarPrefixEnglish)
}

// ContainsAllergen reports whether a blacklisted code occurs in the allergen string of a meal.
//
// The check is plain substring containment on the upstream string, so the code "1" also
// matches a meal that only lists "10". This mirrors how the plan data has always been
// filtered and stays until the product owner decides how codes should be tokenized.
func ContainsAllergen(mealAllergens, code string) bool {
	return strings.Contains(mealAllergens, code)
}

// IsMealValid reports whether a meal may be shown under the given config.
func IsMealValid(mealName, mealAllergens string, cfg models.WidgetConfig) bool {
	if cfg.AlwaysShowSaladBar && IsSaladBar(mealName) {
		return true
	}

	for _, code := range cfg.UserAllergens {
		if ContainsAllergen(mealAllergens, code) {
			return false
		}
	}
	return true
}
