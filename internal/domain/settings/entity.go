package settings

// Settings is the single persisted configuration row. WorkStart and
// LateThresholdMinutes together define when a check-in counts as Late.
type Settings struct {
	TravelRate           float64
	WorkingHours         float64
	LateThresholdMinutes int
	WorkStart            string
}

// Defaults returns the values seeded when no settings row exists yet.
func Defaults() Settings {
	return Settings{
		TravelRate:           10,
		WorkingHours:         8,
		LateThresholdMinutes: 0,
		WorkStart:            "09:00",
	}
}
