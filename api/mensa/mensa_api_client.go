package mensa

import (
	"context"
	"fmt"

	"canteen-widget/api"
	"canteen-widget/config"
	"canteen-widget/models"
)

// MensaApiClient embeds the common HTTPClient
type MensaApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewMensaApiClient creates a new instance of MensaApiClient
func NewMensaApiClient(httpClient *api.HTTPClient) *MensaApiClient {
	return &MensaApiClient{
		HTTPClient: httpClient,
	}
}

// GetPlan issues a single GET for the plan, without retries.
func (c *MensaApiClient) GetPlan(ctx context.Context) (*models.PlanResponse, error) {
	var response models.PlanResponse
	err := c.RequestWithContext(ctx, "GET", config.CANTEEN_API_PLAN_ENDPOINT, nil, nil, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch canteen plan: %w", err)
	}
	if !response.Valid() {
		return nil, ErrInvalidPlan
	}
	return &response, nil
}
