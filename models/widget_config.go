package models

const (
	// SaladBarPricePer100g divides the per kilogram price by ten and appends "/100g".
	SaladBarPricePer100g = "100g"
	// SaladBarPricePerKg keeps the per kilogram price and appends "/kg".
	SaladBarPricePerKg = "kg"
)

// WidgetConfig describes what a widget shows and how.
// A config is selected once per run and must not be modified afterwards.
type WidgetConfig struct {
	ActiveCanteens       []string `yaml:"active_canteens" json:"active_canteens"`
	FallbackCanteens     []string `yaml:"fallback_canteens" json:"fallback_canteens"`
	FillUpWithFallback   bool     `yaml:"fill_up_with_fallback" json:"fill_up_with_fallback"`
	Language             string   `yaml:"language" json:"language"`
	GradientColors       []string `yaml:"gradient_colors" json:"gradient_colors"`
	OpenURL              string   `yaml:"open_url" json:"open_url"`
	ShowPrices           bool     `yaml:"show_prices" json:"show_prices"`
	ShowSideDishes       bool     `yaml:"show_side_dishes" json:"show_side_dishes"`
	AlwaysShowSaladBar   bool     `yaml:"always_show_salad_bar" json:"always_show_salad_bar"`
	AddBulletPoints      bool     `yaml:"add_bullet_points" json:"add_bullet_points"`
	UseDiscountedPrices  bool     `yaml:"use_discounted_prices" json:"use_discounted_prices"`
	UserAllergens        []string `yaml:"user_allergens" json:"user_allergens"`
	TextColor            string   `yaml:"text_color" json:"text_color"`
	ErrorColor           string   `yaml:"error_color" json:"error_color"`
	HeaderColor          string   `yaml:"header_color" json:"header_color"`
	SwitchToTomorrowTime int      `yaml:"switch_to_tomorrow_time" json:"switch_to_tomorrow_time"`

	EnableCache       bool   `yaml:"enable_cache" json:"enable_cache"`
	SaladBarPriceUnit string `yaml:"salad_bar_price_unit" json:"salad_bar_price_unit"`
	ShowErrorDetails  bool   `yaml:"show_error_details" json:"show_error_details"`
}
