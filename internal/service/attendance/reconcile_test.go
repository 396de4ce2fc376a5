package attendance

import (
	"fmt"
	"testing"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestShiftHours(t *testing.T) {
	cases := []struct {
		name string
		in   *string
		out  *string
		want float64
	}{
		{"normal day shift", strPtr("09:00"), strPtr("17:00"), 8},
		{"half hour", strPtr("09:00"), strPtr("09:30"), 0.5},
		{"overnight wrap", strPtr("22:00"), strPtr("02:00"), 4},
		{"overnight with minutes", strPtr("23:30"), strPtr("00:15"), 0.75},
		{"equal times are zero not 24", strPtr("09:00"), strPtr("09:00"), 0},
		{"missing in", nil, strPtr("17:00"), 0},
		{"missing out", strPtr("09:00"), nil, 0},
		{"both missing", nil, nil, 0},
		{"malformed in", strPtr("9am"), strPtr("17:00"), 0},
		{"malformed out", strPtr("09:00"), strPtr("25:00"), 0},
		{"one minute", strPtr("09:00"), strPtr("09:01"), 0.02},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ShiftHours(c.in, c.out))
		})
	}
}

func TestShiftHours_NeverNegative(t *testing.T) {
	// Sweep every hour pair; the wrap correction must keep the result >= 0.
	for start := 0; start < 24; start++ {
		for end := 0; end < 24; end++ {
			in := strPtr(fmt.Sprintf("%02d:00", start))
			out := strPtr(fmt.Sprintf("%02d:00", end))
			got := ShiftHours(in, out)
			assert.GreaterOrEqual(t, got, 0.0, "ShiftHours(%s, %s)", *in, *out)
		}
	}
}

func TestShiftHours_OvernightProperty(t *testing.T) {
	// When end < start, the interval equals 24h minus the reversed interval.
	got := ShiftHours(strPtr("20:00"), strPtr("04:00"))
	reversed := ShiftHours(strPtr("04:00"), strPtr("20:00"))
	assert.Equal(t, 24.0, got+reversed)
}

func TestTotalHours(t *testing.T) {
	// Both shifts present
	total := TotalHours(strPtr("09:00"), strPtr("13:00"), strPtr("14:00"), strPtr("18:00"))
	assert.Equal(t, 8.0, total)

	// Shift 2 absent
	total = TotalHours(strPtr("09:00"), strPtr("13:00"), nil, nil)
	assert.Equal(t, 4.0, total)

	// Both absent
	total = TotalHours(nil, nil, nil, nil)
	assert.Equal(t, 0.0, total)

	// Overnight shift 1 only
	total = TotalHours(strPtr("22:00"), strPtr("02:00"), nil, nil)
	assert.Equal(t, 4.0, total)

	// No cap: a double 12-hour day is accepted
	total = TotalHours(strPtr("00:00"), strPtr("12:00"), strPtr("12:00"), strPtr("23:59"))
	assert.Equal(t, 23.98, total)
}

func TestSanitizePunch(t *testing.T) {
	assert.Nil(t, SanitizePunch(nil))
	assert.Nil(t, SanitizePunch(strPtr("")))
	assert.Nil(t, SanitizePunch(strPtr("   ")))
	assert.Nil(t, SanitizePunch(strPtr("9am")))
	assert.Nil(t, SanitizePunch(strPtr("24:00")))

	got := SanitizePunch(strPtr(" 09:30 "))
	if assert.NotNil(t, got) {
		assert.Equal(t, "09:30", *got)
	}
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name      string
		checkIn   *string
		workStart string
		grace     int
		want      string
	}{
		{"no check-in is absent", nil, "09:00", 0, attendance.StatusAbsent},
		{"malformed check-in is absent", strPtr("late"), "09:00", 0, attendance.StatusAbsent},
		{"on time", strPtr("09:00"), "09:00", 0, attendance.StatusPresent},
		{"early", strPtr("08:45"), "09:00", 0, attendance.StatusPresent},
		{"one minute past is late", strPtr("09:01"), "09:00", 0, attendance.StatusLate},
		{"inside grace window", strPtr("09:25"), "09:00", 30, attendance.StatusPresent},
		{"at grace boundary", strPtr("09:30"), "09:00", 30, attendance.StatusPresent},
		{"past grace window", strPtr("09:31"), "09:00", 30, attendance.StatusLate},
		{"malformed work start falls back to 09:00", strPtr("09:30"), "nine", 0, attendance.StatusLate},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DeriveStatus(c.checkIn, c.workStart, c.grace))
		})
	}
}

func TestOvernightScenario(t *testing.T) {
	// 22:00 -> 02:00 is a 4-hour overnight shift; the explicit late check-in
	// classifies Late against a 09:00 start, which the caller may override.
	in := strPtr("22:00")
	out := strPtr("02:00")

	assert.Equal(t, 4.0, ShiftHours(in, out))
	assert.Equal(t, 4.0, TotalHours(in, out, nil, nil))
	assert.Equal(t, attendance.StatusLate, DeriveStatus(in, "09:00", 0))
}
