package attendance

import (
	"math"
	"strconv"
	"strings"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

const minutesPerDay = 24 * 60

// clockMinutes parses a strict "HH:MM" clock time into minutes since
// midnight. ok is false for anything malformed.
func clockMinutes(s string) (int, bool) {
	if !validator.IsValidClockTime(s) {
		return 0, false
	}
	parts := strings.SplitN(s, ":", 2)
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])
	return hour*60 + minute, true
}

// SanitizePunch normalizes a raw punch: empty or malformed times become nil,
// so a bad form value degrades to "no punch" instead of an error.
func SanitizePunch(p *string) *string {
	if p == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*p)
	if !validator.IsValidClockTime(trimmed) {
		return nil
	}
	return &trimmed
}

// ShiftHours computes the elapsed hours of one (start, end) interval.
// Either side absent or malformed yields 0. A negative difference is an
// overnight shift and gains 24 hours; equal times are 0 hours, never 24.
// The result is rounded to 2 decimals and clamped at 0.
func ShiftHours(in, out *string) float64 {
	if in == nil || out == nil {
		return 0
	}

	start, ok := clockMinutes(*in)
	if !ok {
		return 0
	}
	end, ok := clockMinutes(*out)
	if !ok {
		return 0
	}

	diff := end - start
	if diff < 0 {
		diff += minutesPerDay
	}

	hours := math.Round(float64(diff)/60*100) / 100
	return math.Max(0, hours)
}

// TotalHours sums both shifts of a day, floored at 0, 2 decimals. There is
// deliberately no upper cap; a double 12-hour day is accepted as entered.
func TotalHours(shift1In, shift1Out, shift2In, shift2Out *string) float64 {
	total := ShiftHours(shift1In, shift1Out) + ShiftHours(shift2In, shift2Out)
	total = math.Round(total*100) / 100
	return math.Max(0, total)
}

// DeriveStatus classifies the day from the shift-1 check-in. No check-in at
// all is Absent; a check-in at or before work start plus the late threshold
// is Present; anything after is Late. A malformed work start falls back to
// 09:00.
func DeriveStatus(checkIn *string, workStart string, lateThresholdMinutes int) string {
	if checkIn == nil {
		return attendance.StatusAbsent
	}

	in, ok := clockMinutes(*checkIn)
	if !ok {
		return attendance.StatusAbsent
	}

	expected, ok := clockMinutes(workStart)
	if !ok {
		expected, _ = clockMinutes("09:00")
	}

	if in > expected+lateThresholdMinutes {
		return attendance.StatusLate
	}
	return attendance.StatusPresent
}
