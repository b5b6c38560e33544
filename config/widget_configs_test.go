package config

import (
	"os"
	"path/filepath"
	"testing"

	"canteen-widget/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigIndex(t *testing.T) {
	tests := []struct {
		name  string
		param string
		want  int
	}{
		{"empty", "", 0},
		{"blank", "   ", 0},
		{"zero", "0", 0},
		{"valid index", "2", 2},
		{"padded index", " 1 ", 1},
		{"integral float", "1.0", 1},
		{"fractional", "1.5", 0},
		{"negative", "-1", 0},
		{"out of range", "3", 0},
		{"far out of range", "1000", 0},
		{"not a number", "abc", 0},
		{"nan", "NaN", 0},
		{"infinity", "Inf", 0},
		{"exponent", "2e0", 2},
		{"hex", "0x1", 1},
		{"upper case hex", "0X2", 2},
		{"binary", "0b1", 1},
		{"octal", "0o2", 2},
		{"hex out of range", "0x10", 0},
		{"signed hex", "-0x1", 0},
		{"bare prefix", "0x", 0},
		{"invalid hex digit", "0xg", 0},
		{"hex float", "0x1p0", 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, ParseConfigIndex(test.param, 3))
		})
	}
}

func TestResolveWidgetConfig(t *testing.T) {
	configs := []models.WidgetConfig{
		{ActiveCanteens: []string{"A"}},
		{ActiveCanteens: []string{"B"}},
	}

	cfg, index, err := ResolveWidgetConfig(configs, "1")
	require.NoError(t, err)
	assert.Equal(t, 1, index)
	assert.Equal(t, []string{"B"}, cfg.ActiveCanteens)

	cfg, index, err = ResolveWidgetConfig(configs, "7")
	require.NoError(t, err)
	assert.Equal(t, 0, index)
	assert.Equal(t, []string{"A"}, cfg.ActiveCanteens)
}

func TestResolveWidgetConfig_NoConfigs(t *testing.T) {
	_, _, err := ResolveWidgetConfig(nil, "0")
	assert.ErrorIs(t, err, ErrNoWidgetConfigs)
}

func TestLoadWidgetConfigs_Defaults(t *testing.T) {
	configs, err := LoadWidgetConfigs("")
	require.NoError(t, err)
	require.Len(t, configs, 1)

	cfg := configs[0]
	assert.Equal(t, []string{"Zentralmensa"}, cfg.ActiveCanteens)
	assert.Equal(t, []string{"Bambus"}, cfg.FallbackCanteens)
	assert.Equal(t, models.LanguageGerman, cfg.Language)
	assert.Equal(t, 18, cfg.SwitchToTomorrowTime)
	assert.Equal(t, models.SaladBarPricePer100g, cfg.SaladBarPriceUnit)

	// the defaults must not be shared with the returned copies
	cfg.ActiveCanteens[0] = "changed"
	assert.Equal(t, "Zentralmensa", DefaultWidgetConfigs[0].ActiveCanteens[0])
}

func TestLoadWidgetConfigs_FromYAML(t *testing.T) {
	path := filepath.Join("..", RESOURCES_PATH_PREFIX, WIDGET_CONFIGS_RESOURCE)

	configs, err := LoadWidgetConfigs(path)
	require.NoError(t, err)
	require.Len(t, configs, 2)

	second := configs[1]
	assert.Equal(t, []string{"Zentralmensa", "Rote Bete"}, second.ActiveCanteens)
	assert.True(t, second.FillUpWithFallback)
	assert.Equal(t, models.LanguageEnglish, second.Language)
	assert.Equal(t, []string{"Gl", "La"}, second.UserAllergens)
	assert.Equal(t, models.SaladBarPricePerKg, second.SaladBarPriceUnit)
	assert.Equal(t, 15, second.SwitchToTomorrowTime)
	assert.True(t, second.ShowErrorDetails)
	assert.False(t, second.EnableCache)
}

func TestLoadWidgetConfigs_Normalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs.yaml")
	content := "configs:\n  - active_canteens: [\"A\"]\n    language: klingon\n    salad_bar_price_unit: pound\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	configs, err := LoadWidgetConfigs(path)
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, models.LanguageEnglish, configs[0].Language)
	assert.Equal(t, models.SaladBarPricePer100g, configs[0].SaladBarPriceUnit)
	assert.NotNil(t, configs[0].FallbackCanteens)
}

func TestLoadWidgetConfigs_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadWidgetConfigs(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("configs: []\n"), 0644))
	_, err = LoadWidgetConfigs(empty)
	assert.ErrorIs(t, err, ErrNoWidgetConfigs)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("configs: [\n"), 0644))
	_, err = LoadWidgetConfigs(broken)
	assert.Error(t, err)
}
