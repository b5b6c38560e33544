package services

import (
	"context"
	"time"

	"canteen-widget/models"

	"go.uber.org/zap"
)

// PlanRefresherService periodically fetches the plan of every caching config so the
// snapshot stays warm while the server runs.
type PlanRefresherService struct {
	widgetService *WidgetService
	configs       []models.WidgetConfig
	logger        *zap.Logger
}

// NewPlanRefresherService constructs a new refresher with dependencies.
func NewPlanRefresherService(
	widgetService *WidgetService,
	configs []models.WidgetConfig,
	logger *zap.Logger,
) *PlanRefresherService {
	return &PlanRefresherService{
		widgetService: widgetService,
		configs:       configs,
		logger:        logger,
	}
}

// StartPeriodicJob launches the background loop at the given interval. It stops with ctx.
func (pr *PlanRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		pr.startPeriodicJob(ctx, interval)
	}()
	return done
}

func (pr *PlanRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			pr.logger.Info("[PlanRefresherService] Stopping periodic plan refresher job.")
			return
		case <-ticker.C:
			pr.logger.Debug("[PlanRefresherService] Running periodic plan refresher job.")
			refreshed := pr.RefreshPlans(ctx)
			pr.logger.Info("[PlanRefresherService] Refreshed plans", zap.Int("configs", refreshed))
		}
	}
}

// RefreshPlans loads the plan of every config with caching enabled and returns how many succeeded.
func (pr *PlanRefresherService) RefreshPlans(ctx context.Context) int {
	refreshed := 0
	for i, cfg := range pr.configs {
		if !cfg.EnableCache {
			continue
		}
		plan, err := pr.widgetService.GetDailyPlan(ctx, cfg)
		if err != nil {
			pr.logger.Warn("[PlanRefresherService] Refresh failed", zap.Int("config", i), zap.Error(err))
			continue
		}
		pr.logger.Debug("[PlanRefresherService] Refreshed plan",
			zap.Int("config", i), zap.String("date", plan.Date), zap.String("source", string(plan.Source)))
		refreshed++
	}
	return refreshed
}
