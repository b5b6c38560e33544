package util

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"canteen-widget/models"
)

// ReadPlanResponseFromJSON loads a PlanResponse from JSON on disk.
func ReadPlanResponseFromJSON(filePath string) (*models.PlanResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.PlanResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PlanResponse: %w", err)
	}
	return &resp, nil
}

// ReadPlanSnapshotFromJSON loads a PlanSnapshot from JSON on disk.
func ReadPlanSnapshotFromJSON(filePath string) (*models.PlanSnapshot, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var snapshot models.PlanSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PlanSnapshot: %w", err)
	}
	return &snapshot, nil
}

// PrintPlanResponsePartially prints the dates and canteens of a PlanResponse.
func PrintPlanResponsePartially(w io.Writer, resp *models.PlanResponse) {
	fmt.Fprintf(w, "Status: %s\n", resp.Status)
	fmt.Fprintf(w, "Days: %d\n", len(resp.Plan))
	for _, date := range slices.Sorted(maps.Keys(resp.Plan)) {
		fmt.Fprintf(w, "%s: %v\n", date, resp.Plan[date].Names())
	}
}
