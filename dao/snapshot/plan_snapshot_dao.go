package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"canteen-widget/db"
	"canteen-widget/models"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// PlanSnapshotDAO keeps the plan of the most recently rendered day.
// Only one day is stored, every save replaces the previous snapshot.
type PlanSnapshotDAO struct {
	client db.KeyValueClient
	key    string
	logger *zap.Logger
}

// NewPlanSnapshotDAO initializes a PlanSnapshotDAO storing the snapshot under key.
func NewPlanSnapshotDAO(client db.KeyValueClient, key string, logger *zap.Logger) *PlanSnapshotDAO {
	return &PlanSnapshotDAO{client: client, key: key, logger: logger}
}

// Save stores the plan of date, replacing any earlier snapshot.
func (dao *PlanSnapshotDAO) Save(date string, plan models.DateData) error {
	data, err := json.Marshal(models.PlanSnapshot{Date: date, Plan: plan})
	if err != nil {
		return fmt.Errorf("failed to marshal plan snapshot for %s: %w", date, err)
	}
	if err := dao.client.Set(dao.key, string(data)); err != nil {
		return fmt.Errorf("failed to store plan snapshot for %s: %w", date, err)
	}
	dao.logger.Debug("[PlanSnapshotDAO] Saved plan snapshot",
		zap.String("date", date),
		zap.String("size", humanize.Bytes(uint64(len(data)))))
	return nil
}

// Load returns the stored plan if it belongs to date.
// A missing, malformed or empty snapshot, or one of another date, yields false.
func (dao *PlanSnapshotDAO) Load(date string) (models.DateData, bool) {
	str, err := dao.client.Get(dao.key)
	if errors.Is(err, db.ErrKeyNotFound) {
		dao.logger.Warn("[PlanSnapshotDAO] No plan snapshot stored", zap.String("key", dao.key))
		return nil, false
	}
	if err != nil {
		dao.logger.Error("[PlanSnapshotDAO] Failed to read plan snapshot", zap.Error(err))
		return nil, false
	}

	var snapshot models.PlanSnapshot
	if err := json.Unmarshal([]byte(str), &snapshot); err != nil {
		dao.logger.Error("[PlanSnapshotDAO] Failed to unmarshal plan snapshot", zap.Error(err))
		return nil, false
	}
	if !snapshot.Valid() {
		dao.logger.Warn("[PlanSnapshotDAO] Ignoring incomplete plan snapshot")
		return nil, false
	}
	if snapshot.Date != date {
		dao.logger.Info("[PlanSnapshotDAO] Plan snapshot is outdated",
			zap.String("stored", snapshot.Date), zap.String("requested", date))
		return nil, false
	}

	dao.logger.Debug("[PlanSnapshotDAO] Loaded plan snapshot",
		zap.String("date", date),
		zap.String("size", humanize.Bytes(uint64(len(str)))))
	return snapshot.Plan, true
}

// Clear removes the stored snapshot.
func (dao *PlanSnapshotDAO) Clear() error {
	if err := dao.client.Del(dao.key); err != nil {
		return fmt.Errorf("failed to delete plan snapshot %s: %w", dao.key, err)
	}
	return nil
}
