package menu

import (
	"maps"
	"slices"

	"canteen-widget/models"
)

// SideDishCounter is the counter holding the side dishes.
const SideDishCounter = "Beilagen"

// ExtractAllMeals builds the menu view of a day for the given config.
//
// Active canteens come first in the order they appear in the plan. Without fill-up the
// fallback canteens are only used when no active canteen has any meal; with fill-up they
// replace missing active canteens, in configured order, up to the number of active canteens.
func ExtractAllMeals(day models.DateData, cfg models.WidgetConfig) models.MenuView {
	active, fallback := mealsByType(day, cfg)

	if !cfg.FillUpWithFallback {
		if len(active) > 0 {
			return active
		}
		return fallback
	}
	return mergeWithFallback(active, fallback, cfg)
}

// mealsByType extracts the active and the fallback canteens of a day, both in plan order.
// A canteen listed as active and as fallback counts as active. Canteens without meals are dropped.
func mealsByType(day models.DateData, cfg models.WidgetConfig) (active, fallback models.MenuView) {
	active = models.MenuView{}
	fallback = models.MenuView{}

	for _, entry := range day {
		if entry.Counters == nil {
			continue
		}

		isActive := slices.Contains(cfg.ActiveCanteens, entry.Name)
		isFallback := slices.Contains(cfg.FallbackCanteens, entry.Name)
		if !isActive && !isFallback {
			continue
		}

		counters := ExtractCanteenMeals(entry.Counters, cfg)
		if len(counters) == 0 {
			continue
		}

		canteen := models.CanteenMenu{Canteen: entry.Name, Counters: counters}
		if isActive {
			active = append(active, canteen)
		} else {
			fallback = append(fallback, canteen)
		}
	}
	return active, fallback
}

// ExtractCanteenMeals returns the meal descriptions of a canteen grouped by counter.
// Counters are sorted by name, meals keep their order, empty counters are dropped.
func ExtractCanteenMeals(canteen models.CanteenData, cfg models.WidgetConfig) []models.CounterMenu {
	counters := []models.CounterMenu{}

	for _, counterName := range slices.Sorted(maps.Keys(canteen)) {
		if counterName == SideDishCounter && !cfg.ShowSideDishes {
			continue
		}

		var descriptions []string
		for _, meal := range canteen[counterName] {
			if !IsMealValid(meal.Name.Get(cfg.Language), meal.Allergens, cfg) {
				continue
			}
			descriptions = append(descriptions, MealDescription(meal, cfg))
		}

		if len(descriptions) > 0 {
			counters = append(counters, models.CounterMenu{Counter: counterName, Meals: descriptions})
		}
	}
	return counters
}

// mergeWithFallback appends fallback canteens in configured order until the view holds as
// many canteens as there are active canteens configured.
func mergeWithFallback(active, fallback models.MenuView, cfg models.WidgetConfig) models.MenuView {
	merged := slices.Clone(active)
	if merged == nil {
		merged = models.MenuView{}
	}

	byName := make(map[string]models.CanteenMenu, len(fallback))
	for _, c := range fallback {
		byName[c.Canteen] = c
	}

	remainingSlots := len(cfg.ActiveCanteens) - len(merged)
	for _, name := range cfg.FallbackCanteens {
		if remainingSlots <= 0 {
			break
		}
		if merged.Has(name) {
			continue
		}

		canteen, ok := byName[name]
		if !ok {
			continue
		}
		merged = append(merged, canteen)
		remainingSlots--
	}
	return merged
}
