package mensa

import (
	"context"

	"canteen-widget/models"
	"canteen-widget/util"
)

// MensaApiClientMock serves the plan from a JSON file instead of the API
type MensaApiClientMock struct {
	planPath string
}

// NewMensaApiClientMock creates a new instance of MensaApiClientMock reading planPath
func NewMensaApiClientMock(planPath string) *MensaApiClientMock {
	return &MensaApiClientMock{planPath: planPath}
}

// GetPlan reads the plan from disk and validates it like the real client does.
func (c *MensaApiClientMock) GetPlan(ctx context.Context) (*models.PlanResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	response, err := util.ReadPlanResponseFromJSON(c.planPath)
	if err != nil {
		return nil, err
	}
	if !response.Valid() {
		return nil, ErrInvalidPlan
	}
	return response, nil
}
