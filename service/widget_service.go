package services

import (
	"context"
	"time"

	"canteen-widget/menu"
	"canteen-widget/models"
	"canteen-widget/render"

	"go.uber.org/zap"
)

// DailyMenu is the extracted menu of the day a widget shows.
type DailyMenu struct {
	Date     string          `json:"date"`
	Source   Source          `json:"source"`
	Canteens models.MenuView `json:"canteens"`

	// Resolved is the day the menu belongs to, Today the moment it was built.
	Resolved time.Time `json:"-"`
	Today    time.Time `json:"-"`
}

// DailyPlan is the raw plan of the day a widget shows.
type DailyPlan struct {
	Date     string
	Source   Source
	Day      models.DateData
	Resolved time.Time
	Today    time.Time
}

type WidgetService struct {
	menuService *MenuService
	now         func() time.Time
	location    *time.Location
	logger      *zap.Logger
}

// NewWidgetService constructs a new WidgetService. Dates are resolved with now in location.
func NewWidgetService(
	menuService *MenuService,
	now func() time.Time,
	location *time.Location,
	logger *zap.Logger) *WidgetService {

	return &WidgetService{
		menuService: menuService,
		now:         now,
		location:    location,
		logger:      logger,
	}
}

// GetDailyPlan loads the plan of the day cfg shows, today or tomorrow after the switch hour.
// Live data of that day is kept as snapshot when the config enables caching.
func (ws *WidgetService) GetDailyPlan(ctx context.Context, cfg models.WidgetConfig) (*DailyPlan, error) {
	today := ws.now().In(ws.location)
	resolved := menu.RelevantDate(today, cfg.SwitchToTomorrowTime)
	date := menu.FormatDate(resolved)

	day, source, err := ws.menuService.GetMenuData(ctx, date, cfg.EnableCache)
	if err != nil {
		return nil, err
	}

	if cfg.EnableCache && source == SourceRemote && len(day) > 0 {
		if err := ws.menuService.SaveSnapshot(date, day); err != nil {
			ws.logger.Warn("[WidgetService] Failed to save plan snapshot", zap.Error(err))
		}
	}

	return &DailyPlan{Date: date, Source: source, Day: day, Resolved: resolved, Today: today}, nil
}

// BuildMenuView loads the plan of the day and extracts what cfg shows of it.
func (ws *WidgetService) BuildMenuView(ctx context.Context, cfg models.WidgetConfig) (*DailyMenu, error) {
	plan, err := ws.GetDailyPlan(ctx, cfg)
	if err != nil {
		return nil, err
	}

	view := menu.ExtractAllMeals(plan.Day, cfg)
	ws.logger.Debug("[WidgetService] Extracted menu",
		zap.String("date", plan.Date), zap.Strings("canteens", view.Canteens()))

	return &DailyMenu{
		Date:     plan.Date,
		Source:   plan.Source,
		Canteens: view,
		Resolved: plan.Resolved,
		Today:    plan.Today,
	}, nil
}

// BuildWidget renders the widget of cfg. Failures end up as error widget, never as error.
func (ws *WidgetService) BuildWidget(ctx context.Context, cfg models.WidgetConfig) *render.Widget {
	widget := render.NewWidget()
	renderer := render.NewRenderer(cfg)

	daily, err := ws.BuildMenuView(ctx, cfg)
	if err != nil {
		ws.logger.Error("[WidgetService] Rendering error widget", zap.Error(err))
		renderer.Error(widget, err)
		return widget
	}

	renderer.Menu(widget, daily.Canteens, daily.Resolved, daily.Today)
	return widget
}
