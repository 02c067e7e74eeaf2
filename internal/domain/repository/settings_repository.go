package repository

import (
	"context"

	"jaybesin/internal/domain/entity"
)

type SettingsRepository interface {
	// Get is a one-shot read of the singleton document; NotFound when it
	// was never initialised.
	Get(ctx context.Context) (*entity.Settings, error)
	// Save merge-writes the singleton; fields absent from the payload
	// keep their stored value.
	Save(ctx context.Context, settings *entity.Settings) error
}
