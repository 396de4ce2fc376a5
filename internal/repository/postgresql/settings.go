package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/settings"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

// Get implements settings.SettingsRepository. The defaults row is seeded on
// first read so a fresh database behaves like the documented defaults.
func (s *settingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT travel_rate, working_hours, late_threshold_minutes, work_start
		FROM app_settings
		WHERE id = 1
	`

	var cfg settings.Settings
	err := q.QueryRow(ctx, query).Scan(
		&cfg.TravelRate, &cfg.WorkingHours, &cfg.LateThresholdMinutes, &cfg.WorkStart,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return s.seedDefaults(ctx)
		}
		return settings.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	return cfg, nil
}

func (s *settingsRepository) seedDefaults(ctx context.Context) (settings.Settings, error) {
	q := GetQuerier(ctx, s.db)

	defaults := settings.Defaults()
	query := `
		INSERT INTO app_settings (id, travel_rate, working_hours, late_threshold_minutes, work_start)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := q.Exec(ctx, query,
		defaults.TravelRate, defaults.WorkingHours,
		defaults.LateThresholdMinutes, defaults.WorkStart,
	); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to seed default settings: %w", err)
	}

	return defaults, nil
}

// Update implements settings.SettingsRepository.
func (s *settingsRepository) Update(ctx context.Context, cfg settings.Settings) (settings.Settings, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO app_settings (id, travel_rate, working_hours, late_threshold_minutes, work_start)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			travel_rate            = EXCLUDED.travel_rate,
			working_hours          = EXCLUDED.working_hours,
			late_threshold_minutes = EXCLUDED.late_threshold_minutes,
			work_start             = EXCLUDED.work_start,
			updated_at             = NOW()
	`

	if _, err := q.Exec(ctx, query,
		cfg.TravelRate, cfg.WorkingHours, cfg.LateThresholdMinutes, cfg.WorkStart,
	); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to update settings: %w", err)
	}

	return cfg, nil
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}
