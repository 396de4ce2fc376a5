package settings

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/settings"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-backend-go/internal/repository/postgresql"
)

type SettingsServiceImpl struct {
	db *database.DB
	settings.SettingsRepository
}

func NewSettingsService(db *database.DB, settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{
		db:                 db,
		SettingsRepository: settingsRepo,
	}
}

// GetSettings implements settings.SettingsService.
func (s *SettingsServiceImpl) GetSettings(ctx context.Context) (settings.GetSettingsResponse, error) {
	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return settings.GetSettingsResponse{}, err
	}

	return settings.GetSettingsResponse{Settings: settings.ToResponse(cfg)}, nil
}

// UpdateSettings implements settings.SettingsService. Read-modify-write runs
// in one transaction so concurrent patches cannot interleave.
func (s *SettingsServiceImpl) UpdateSettings(ctx context.Context, req settings.UpdateSettingsRequest) (settings.UpdateSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.UpdateSettingsResponse{}, err
	}

	var updated settings.Settings
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.SettingsRepository.Get(txCtx)
		if err != nil {
			return err
		}

		if req.TravelRate != nil {
			current.TravelRate = *req.TravelRate
		}
		if req.WorkingHours != nil {
			current.WorkingHours = *req.WorkingHours
		}
		if req.LateThresholdMinutes != nil {
			current.LateThresholdMinutes = *req.LateThresholdMinutes
		}
		if req.WorkStart != nil {
			current.WorkStart = *req.WorkStart
		}

		updated, err = s.SettingsRepository.Update(txCtx, current)
		return err
	})
	if err != nil {
		return settings.UpdateSettingsResponse{}, err
	}

	return settings.UpdateSettingsResponse{
		Settings: settings.ToResponse(updated),
		Message:  "Settings updated successfully",
	}, nil
}
