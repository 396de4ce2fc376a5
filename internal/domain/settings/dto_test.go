package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSettingsRequest_DecodesCamelCaseBody(t *testing.T) {
	body := `{"travelRate": 12.5, "workingHours": 7.5, "lateThreshold": 15, "workStart": "08:30"}`

	var req UpdateSettingsRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	require.NotNil(t, req.TravelRate)
	assert.Equal(t, 12.5, *req.TravelRate)
	require.NotNil(t, req.WorkingHours)
	assert.Equal(t, 7.5, *req.WorkingHours)
	require.NotNil(t, req.LateThresholdMinutes)
	assert.Equal(t, 15, *req.LateThresholdMinutes)
	require.NotNil(t, req.WorkStart)
	assert.Equal(t, "08:30", *req.WorkStart)
}

func TestSettingsResponse_EncodesCamelCaseKeys(t *testing.T) {
	data, err := json.Marshal(ToResponse(Settings{
		TravelRate:           10,
		WorkingHours:         8,
		LateThresholdMinutes: 0,
		WorkStart:            "09:00",
	}))
	require.NoError(t, err)

	var keys map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &keys))

	assert.Contains(t, keys, "travelRate")
	assert.Contains(t, keys, "workingHours")
	assert.Contains(t, keys, "lateThreshold")
	assert.Contains(t, keys, "workStart")
	assert.NotContains(t, keys, "travel_rate")
	assert.NotContains(t, keys, "late_threshold")
}

func TestUpdateSettingsRequest_Validate(t *testing.T) {
	floatPtr := func(f float64) *float64 { return &f }
	intPtr := func(i int) *int { return &i }
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name    string
		req     UpdateSettingsRequest
		wantErr bool
	}{
		{"empty patch", UpdateSettingsRequest{}, false},
		{"valid full patch", UpdateSettingsRequest{
			TravelRate:           floatPtr(12),
			WorkingHours:         floatPtr(8),
			LateThresholdMinutes: intPtr(10),
			WorkStart:            strPtr("08:00"),
		}, false},
		{"negative travel rate", UpdateSettingsRequest{TravelRate: floatPtr(-1)}, true},
		{"zero working hours", UpdateSettingsRequest{WorkingHours: floatPtr(0)}, true},
		{"working hours over a day", UpdateSettingsRequest{WorkingHours: floatPtr(25)}, true},
		{"negative late threshold", UpdateSettingsRequest{LateThresholdMinutes: intPtr(-5)}, true},
		{"malformed work start", UpdateSettingsRequest{WorkStart: strPtr("9am")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
