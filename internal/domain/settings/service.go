package settings

import "context"

// SettingsService defines the interface for settings operations
type SettingsService interface {
	// GetSettings reads the persisted settings row, seeding defaults on
	// first access
	GetSettings(ctx context.Context) (GetSettingsResponse, error)

	// UpdateSettings applies a patch inside one transaction
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (UpdateSettingsResponse, error)
}
