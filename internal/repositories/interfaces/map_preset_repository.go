package interfaces

import (
	"context"
	"errors"

	"staticmaps/internal/models"
	"staticmaps/internal/utils"
)

var ErrPresetNotFound = errors.New("map preset not found")

type MapPresetRepository interface {
	// Upsert inserts the preset or replaces the one with the same name.
	Upsert(ctx context.Context, preset *models.MapPreset) error
	GetByName(ctx context.Context, name string) (*models.MapPreset, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.MapPreset, int64, error)
}
