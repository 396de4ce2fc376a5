package settings

import (
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

// UpdateSettingsRequest patches the settings row; nil fields keep their
// current value. The body keys are camelCase, matching the form payload the
// settings page has always sent.
type UpdateSettingsRequest struct {
	TravelRate           *float64 `json:"travelRate"`
	WorkingHours         *float64 `json:"workingHours"`
	LateThresholdMinutes *int     `json:"lateThreshold"`
	WorkStart            *string  `json:"workStart"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TravelRate != nil && *r.TravelRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "travelRate",
			Message: "travelRate must not be negative",
		})
	}

	if r.WorkingHours != nil && (*r.WorkingHours <= 0 || *r.WorkingHours > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "workingHours",
			Message: "workingHours must be between 0 and 24",
		})
	}

	if r.LateThresholdMinutes != nil && *r.LateThresholdMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "lateThreshold",
			Message: "lateThreshold must not be negative",
		})
	}

	if r.WorkStart != nil && !validator.IsValidClockTime(*r.WorkStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "workStart",
			Message: "workStart must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SettingsResponse struct {
	TravelRate           float64 `json:"travelRate"`
	WorkingHours         float64 `json:"workingHours"`
	LateThresholdMinutes int     `json:"lateThreshold"`
	WorkStart            string  `json:"workStart"`
}

func ToResponse(s Settings) SettingsResponse {
	return SettingsResponse{
		TravelRate:           s.TravelRate,
		WorkingHours:         s.WorkingHours,
		LateThresholdMinutes: s.LateThresholdMinutes,
		WorkStart:            s.WorkStart,
	}
}

type GetSettingsResponse struct {
	Settings SettingsResponse `json:"settings"`
}

type UpdateSettingsResponse struct {
	Settings SettingsResponse `json:"settings"`
	Message  string           `json:"message"`
}
