package menu

import (
	"math"
	"strconv"
	"strings"

	"canteen-widget/models"
)

const (
	BulletPoint = "• "

	SaladBarNameGerman  = "Salatbar"
	SaladBarNameEnglish = "salad bar"
	SausageNameGerman   = "Bockwurst oder Rindswurst mit Senf"
	SausageNameEnglish  = "mustard or beef sausage"

	// the API sometimes reports 0€ for the sausage, this is its real price
	sausagePrice = 1.37
)

type nameRewrite struct {
	prefix string
	name   string
}

var germanRewrites = []nameRewrite{
	{"Tagessalat", "Tagessalat"},
	{SaladBarPrefixGerman, SaladBarNameGerman},
	{"Frisch gebrühte Bockwurst", SausageNameGerman},
}

var englishRewrites = []nameRewrite{
	{"daily salad", "daily salad"},
	{"Selection of dressed salads", SaladBarNameEnglish},
	{"hot pork sausage", SausageNameEnglish},
}

const (
	germanCondimentClause  = "inkl. 1 Portion Ketchup oder Mayonaise"
	englishCondimentClause = "inkl. 1 portion ketchup or mayonaise"
)

// ShortenMealName replaces some known long meal names by short ones and drops the condiment note.
func ShortenMealName(mealName, language string) string {
	rewrites, clause := englishRewrites, englishCondimentClause
	if language == models.LanguageGerman {
		rewrites, clause = germanRewrites, germanCondimentClause
	}

	for _, r := range rewrites {
		if strings.HasPrefix(mealName, r.prefix) {
			mealName = r.name
			break
		}
	}
	mealName = strings.Replace(mealName, clause, "", 1)
	return strings.TrimSpace(mealName)
}

// AddBulletPoint prefixes a meal name with a bullet.
func AddBulletPoint(mealName string) string {
	return BulletPoint + mealName
}

// FormatEuro formats a price as "x,yy€".
func FormatEuro(price float64) string {
	// half away from zero; FormatFloat alone rounds half to even
	rounded := math.Round(price*100) / 100
	return strings.Replace(strconv.FormatFloat(rounded, 'f', 2, 64), ".", ",", 1) + "€"
}

// IsShortSaladBar reports whether a (shortened, possibly bulleted) name is the salad bar.
func IsShortSaladBar(mealName string) bool {
	return strings.Contains(mealName, SaladBarNameGerman) || strings.Contains(mealName, SaladBarNameEnglish)
}

// ShownPrice returns the price displayed for a shortened meal: the salad bar per 100g unless unit
// asks for kilograms, and the real price of the sausage when the API reports it for free.
func ShownPrice(mealName string, price float64, unit string) float64 {
	if IsShortSaladBar(mealName) {
		if unit == models.SaladBarPricePerKg {
			return price
		}
		return price / 10
	}
	if isSausage(mealName) && math.Round(price*100) == 0 {
		return sausagePrice
	}
	return price
}

// FormatPrice formats the price of a shortened meal. The salad bar is priced per kilogram upstream
// and is shown per 100g or per kg depending on unit.
func FormatPrice(mealName string, price float64, unit string) string {
	formatted := FormatEuro(ShownPrice(mealName, price, unit))
	if !IsShortSaladBar(mealName) {
		return formatted
	}
	if unit == models.SaladBarPricePerKg {
		return formatted + "/kg"
	}
	return formatted + "/100g"
}

func isSausage(mealName string) bool {
	return strings.Contains(mealName, SausageNameGerman) || strings.Contains(mealName, SausageNameEnglish)
}

// MealDescription returns the line shown for a meal: its short name, optionally bulleted and priced.
func MealDescription(meal models.Meal, cfg models.WidgetConfig) string {
	mealName := ShortenMealName(meal.Name.Get(cfg.Language), cfg.Language)

	if cfg.AddBulletPoints {
		mealName = AddBulletPoint(mealName)
	}

	if !cfg.ShowPrices {
		return mealName
	}

	price := FormatPrice(mealName, meal.Prices.Get(cfg.UseDiscountedPrices), cfg.SaladBarPriceUnit)

	return strings.TrimSpace(mealName + " " + price)
}
