package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DepartmentSchedule is the per-department check-in/check-out window
// configuration. Times are wall-clock "HH:MM:SS" strings interpreted in
// the department's IANA timezone, never in the caller's local zone.
type DepartmentSchedule struct {
	ID                string
	DepartmentID      string
	CheckinStartTime  string
	CheckinEndTime    string
	CheckoutStartTime *string
	CheckoutEndTime   *string
	Timezone          string
	AllowEarlyCheckin bool
	AllowLateCheckout bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ParseTimeOfDay converts an "HH:MM:SS" string to seconds since midnight.
// Window comparisons are always integer-second comparisons; comparing the
// strings lexically is not equivalent and must not be reintroduced.
func ParseTimeOfDay(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	seconds := 0
	if len(parts) == 3 {
		seconds, err = strconv.Atoi(parts[2])
		if err != nil || seconds < 0 || seconds > 59 {
			return 0, fmt.Errorf("invalid second in %q", s)
		}
	}

	return hours*3600 + minutes*60 + seconds, nil
}

// secondsOfDay converts an instant to seconds since midnight on the
// department's wall clock.
func (s DepartmentSchedule) secondsOfDay(now time.Time) (int, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return 0, fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
	}
	local := now.In(loc)
	return local.Hour()*3600 + local.Minute()*60 + local.Second(), nil
}

// WindowCheck is the answer to "is check-in currently allowed?".
type WindowCheck struct {
	Allowed bool
	Message string
}

func (s DepartmentSchedule) windowLabel() string {
	return fmt.Sprintf("%s - %s (%s)",
		shortTime(s.CheckinStartTime), shortTime(s.CheckinEndTime), s.Timezone)
}

func shortTime(t string) string {
	if len(t) >= 5 {
		return t[:5]
	}
	return t
}

// IsWithinCheckinWindow reports whether "now", on the department's wall
// clock, falls inside the configured check-in window. Before the window
// start it is denied unless early check-in is allowed; past the window end
// it is always denied.
func (s DepartmentSchedule) IsWithinCheckinWindow(now time.Time) (WindowCheck, error) {
	current, err := s.secondsOfDay(now)
	if err != nil {
		return WindowCheck{}, err
	}
	start, err := ParseTimeOfDay(s.CheckinStartTime)
	if err != nil {
		return WindowCheck{}, err
	}
	end, err := ParseTimeOfDay(s.CheckinEndTime)
	if err != nil {
		return WindowCheck{}, err
	}

	if current < start && !s.AllowEarlyCheckin {
		return WindowCheck{
			Allowed: false,
			Message: "Entrada anticipada no permitida. Horario: " + s.windowLabel(),
		}, nil
	}

	if current > end {
		return WindowCheck{
			Allowed: false,
			Message: "Hora de entrada excedida. Horario: " + s.windowLabel(),
		}, nil
	}

	return WindowCheck{Allowed: true}, nil
}

// HasReachedCheckoutTime reports whether the checkout threshold has been
// reached. False when no checkout window is configured.
func (s DepartmentSchedule) HasReachedCheckoutTime(now time.Time) (bool, error) {
	if s.CheckoutStartTime == nil || *s.CheckoutStartTime == "" {
		return false, nil
	}

	current, err := s.secondsOfDay(now)
	if err != nil {
		return false, err
	}
	start, err := ParseTimeOfDay(*s.CheckoutStartTime)
	if err != nil {
		return false, err
	}

	return current >= start, nil
}

// CheckinDeadline returns the check-in window end plus a tolerance, in
// seconds since midnight. Used to derive the TARDE display status.
func (s DepartmentSchedule) CheckinDeadline(toleranceMinutes int) (int, error) {
	end, err := ParseTimeOfDay(s.CheckinEndTime)
	if err != nil {
		return 0, err
	}
	return end + toleranceMinutes*60, nil
}

// Location resolves the department's timezone.
func (s DepartmentSchedule) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}
