package settings

import (
	"context"
)

// SettingsRepository persists the single configuration row. Get seeds the
// defaults when no row exists; Update runs inside one transaction so readers
// never observe a partially applied patch.
type SettingsRepository interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, s Settings) (Settings, error)
}
