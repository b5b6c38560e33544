package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"canteen-widget/models"

	"gopkg.in/yaml.v3"
)

var ErrNoWidgetConfigs = errors.New("no widget configs defined")

// DefaultWidgetConfigs is used when no config file is given.
// Add custom configs to the list and select one with the launch parameter (its index).
// Do not delete the first entry, it is the fallback for invalid parameters.
var DefaultWidgetConfigs = []models.WidgetConfig{
	{
		ActiveCanteens:       []string{"Zentralmensa"},
		FallbackCanteens:     []string{"Bambus"},
		FillUpWithFallback:   false,
		Language:             models.LanguageGerman,
		GradientColors:       []string{"bde0fe", "a2d2ff"},
		OpenURL:              "https://ves.uni-mainz.de/de/mensa",
		ShowPrices:           true,
		ShowSideDishes:       false,
		AlwaysShowSaladBar:   false,
		AddBulletPoints:      false,
		UseDiscountedPrices:  true,
		UserAllergens:        []string{},
		TextColor:            "000000",
		ErrorColor:           "ff0000",
		HeaderColor:          "000000",
		SwitchToTomorrowTime: 18,
		EnableCache:          true,
		SaladBarPriceUnit:    models.SaladBarPricePer100g,
	},
}

type widgetConfigsFile struct {
	Configs []models.WidgetConfig `yaml:"configs"`
}

// LoadWidgetConfigs returns the configs of the YAML file at path, or the defaults if path is empty.
func LoadWidgetConfigs(path string) ([]models.WidgetConfig, error) {
	if path == "" {
		return NormalizeWidgetConfigs(DefaultWidgetConfigs), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read widget configs %q: %w", path, err)
	}

	var file widgetConfigsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse widget configs %q: %w", path, err)
	}
	if len(file.Configs) == 0 {
		return nil, fmt.Errorf("%q: %w", path, ErrNoWidgetConfigs)
	}

	return NormalizeWidgetConfigs(file.Configs), nil
}

// NormalizeWidgetConfigs returns copies of the configs with unknown enum values replaced by their defaults.
func NormalizeWidgetConfigs(configs []models.WidgetConfig) []models.WidgetConfig {
	normalized := make([]models.WidgetConfig, 0, len(configs))
	for _, c := range configs {
		if c.Language != models.LanguageGerman {
			c.Language = models.LanguageEnglish
		}
		if c.SaladBarPriceUnit != models.SaladBarPricePerKg {
			c.SaladBarPriceUnit = models.SaladBarPricePer100g
		}
		c.ActiveCanteens = cloneStrings(c.ActiveCanteens)
		c.FallbackCanteens = cloneStrings(c.FallbackCanteens)
		c.GradientColors = cloneStrings(c.GradientColors)
		c.UserAllergens = cloneStrings(c.UserAllergens)
		normalized = append(normalized, c)
	}
	return normalized
}

// ResolveWidgetConfig selects the config addressed by the launch parameter.
// Parameters that are not a non-negative integer index into configs select the first config.
func ResolveWidgetConfig(configs []models.WidgetConfig, param string) (models.WidgetConfig, int, error) {
	if len(configs) == 0 {
		return models.WidgetConfig{}, 0, ErrNoWidgetConfigs
	}
	index := ParseConfigIndex(param, len(configs))
	return configs[index], index, nil
}

// integerBases maps the unsigned integer literal prefixes accepted for config indices to their base.
var integerBases = map[string]int{"0x": 16, "0b": 2, "0o": 8}

// ParseConfigIndex interprets param as an index below count and returns 0 if it is not one.
// Besides decimal numbers, unsigned hex, binary and octal literals such as "0x1" are accepted.
func ParseConfigIndex(param string, count int) int {
	trimmed := strings.TrimSpace(param)
	if trimmed == "" {
		return 0
	}

	num, ok := parseNumber(trimmed)
	if !ok {
		return 0
	}
	if num != math.Trunc(num) || num < 0 || num >= float64(count) {
		return 0
	}
	return int(num)
}

func parseNumber(s string) (float64, bool) {
	if len(s) > 2 {
		if base, ok := integerBases[strings.ToLower(s[:2])]; ok {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}

	num, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, false
	}
	return num, true
}

func cloneStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return append([]string(nil), values...)
}
