package mensa

import (
	"context"
	"errors"

	"canteen-widget/models"
)

// ErrInvalidPlan is returned when the API answered with a plan of the wrong shape.
var ErrInvalidPlan = errors.New("invalid canteen plan")

// MensaAPI defines the interface for interacting with the canteen plan API
type MensaAPI interface {
	// GetPlan fetches the plan of all canteens for the upcoming days.
	// Any returned plan has passed validation.
	GetPlan(ctx context.Context) (*models.PlanResponse, error)
}
