package util

import (
	"fmt"
	"io"
	"math"
	"os"

	"canteen-widget/menu"
	"canteen-widget/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// PlotMealPrices renders a bar chart of the prices of all meals of a day, one series per canteen.
func PlotMealPrices(w io.Writer, day models.DateData, date string, cfg models.WidgetConfig) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       "Meal prices " + date,
			Width:           "1000px",
			Height:          "600px",
			BackgroundColor: backgroundColor(cfg),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Meal prices",
			Subtitle: date,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "€"}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 30, Interval: "0"}}),
	)

	labels, series := priceSeries(day, cfg)
	bar.SetXAxis(labels)
	for _, s := range series {
		bar.AddSeries(s.canteen, s.values)
	}

	return bar.Render(w)
}

// PlotMealPricesToFile writes the chart of PlotMealPrices to path.
func PlotMealPricesToFile(path string, day models.DateData, date string, cfg models.WidgetConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML file %q: %w", path, err)
	}
	defer f.Close()

	if err := PlotMealPrices(f, day, date, cfg); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

type canteenSeries struct {
	canteen string
	values  []opts.BarData
}

// priceSeries lays out all meals of all canteens on one shared axis. Each canteen has values
// only at the positions of its own meals.
func priceSeries(day models.DateData, cfg models.WidgetConfig) ([]string, []canteenSeries) {
	var labels []string
	var series []canteenSeries

	for _, entry := range day {
		if entry.Counters == nil {
			continue
		}
		s := canteenSeries{canteen: entry.Name}
		for _, counter := range menu.ExtractCanteenMeals(entry.Counters, priceless(cfg)) {
			for _, meal := range counterMeals(entry.Counters[counter.Counter], cfg) {
				labels = append(labels, meal.label)
				for len(s.values) < len(labels)-1 {
					s.values = append(s.values, opts.BarData{Value: "-"})
				}
				s.values = append(s.values, opts.BarData{Name: meal.label, Value: meal.price})
			}
		}
		series = append(series, s)
	}

	for i := range series {
		for len(series[i].values) < len(labels) {
			series[i].values = append(series[i].values, opts.BarData{Value: "-"})
		}
	}
	return labels, series
}

type pricedMeal struct {
	label string
	price float64
}

func counterMeals(meals models.CounterData, cfg models.WidgetConfig) []pricedMeal {
	var priced []pricedMeal
	for _, meal := range meals {
		name := meal.Name.Get(cfg.Language)
		if !menu.IsMealValid(name, meal.Allergens, cfg) {
			continue
		}
		label := menu.ShortenMealName(name, cfg.Language)
		price := menu.ShownPrice(label, meal.Prices.Get(cfg.UseDiscountedPrices), cfg.SaladBarPriceUnit)
		priced = append(priced, pricedMeal{
			label: label,
			price: math.Round(price*100) / 100,
		})
	}
	return priced
}

// priceless returns cfg with prices and bullets hidden, so only the shown counters are listed.
func priceless(cfg models.WidgetConfig) models.WidgetConfig {
	cfg.ShowPrices = false
	cfg.AddBulletPoints = false
	return cfg
}

func backgroundColor(cfg models.WidgetConfig) string {
	if len(cfg.GradientColors) == 0 {
		return "#ffffff"
	}
	return "#" + cfg.GradientColors[0]
}
