package services

import (
	"context"
	"errors"
	"fmt"

	"canteen-widget/api/mensa"
	"canteen-widget/dao/snapshot"
	"canteen-widget/models"

	"go.uber.org/zap"
)

// ErrNoMenuData is returned when neither the API nor the snapshot could provide a plan.
var ErrNoMenuData = errors.New("no menu data available")

// Source names where the plan of a day came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceSnapshot Source = "snapshot"
)

type MenuService struct {
	mensaApi    mensa.MensaAPI
	snapshotDao *snapshot.PlanSnapshotDAO
	logger      *zap.Logger
}

// NewMenuService constructs a new MenuService.
func NewMenuService(
	mensaApi mensa.MensaAPI,
	snapshotDao *snapshot.PlanSnapshotDAO,
	logger *zap.Logger) *MenuService {

	return &MenuService{
		mensaApi:    mensaApi,
		snapshotDao: snapshotDao,
		logger:      logger,
	}
}

// GetMenuData returns the plan of date, fetched from the API or, if that fails and useCache
// is set, from the snapshot. A plan without the date yields empty data, not an error.
func (ms *MenuService) GetMenuData(ctx context.Context, date string, useCache bool) (models.DateData, Source, error) {
	response, err := ms.mensaApi.GetPlan(ctx)
	if err == nil {
		day := response.Day(date)
		ms.logger.Info("[MenuService] Fetched canteen plan",
			zap.String("date", date), zap.Int("canteens", len(day)))
		return day, SourceRemote, nil
	}

	ms.logger.Warn("[MenuService] Failed to fetch canteen plan", zap.String("date", date), zap.Error(err))
	if !useCache {
		return nil, "", fmt.Errorf("%w: %w", ErrNoMenuData, err)
	}

	day, ok := ms.snapshotDao.Load(date)
	if !ok {
		return nil, "", fmt.Errorf("%w: %w", ErrNoMenuData, err)
	}
	ms.logger.Info("[MenuService] Using plan snapshot", zap.String("date", date))
	return day, SourceSnapshot, nil
}

// SaveSnapshot stores the plan of date for later runs.
func (ms *MenuService) SaveSnapshot(date string, day models.DateData) error {
	return ms.snapshotDao.Save(date, day)
}
