package attendance

import "time"

// MarkType is the direction of a punch.
type MarkType string

const (
	MarkIn  MarkType = "IN"
	MarkOut MarkType = "OUT"
)

// ParseMarkType validates a mark type string from a request body.
func ParseMarkType(s string) (MarkType, bool) {
	switch MarkType(s) {
	case MarkIn, MarkOut:
		return MarkType(s), true
	default:
		return "", false
	}
}

// Mark is a single validated IN or OUT attendance event. Immutable once
// written; ordering by Timestamp is significant (first IN and last OUT of
// a day define the work span).
type Mark struct {
	ID               string
	UserID           string
	MarkType         MarkType
	Timestamp        time.Time // UTC instant
	Latitude         *float64
	Longitude        *float64
	Accuracy         *float64
	DistanceToCenter *float64
	InsideGeofence   bool
	Blocked          bool
	BlockReason      *string
	CreatedAt        time.Time
}

// DayStatus is the display status derived for one user and one date.
type DayStatus string

const (
	StatusPresente    DayStatus = "PRESENTE"
	StatusTarde       DayStatus = "TARDE"
	StatusAusente     DayStatus = "AUSENTE"
	StatusDescanso    DayStatus = "DESCANSO"
	StatusNoLaborable DayStatus = "NO_LABORABLE"
)

// DayContext carries the per-date facts needed to derive a display status.
// DeadlineSeconds is the check-in window end plus tolerance in seconds
// since department-local midnight; negative disables the TARDE downgrade.
type DayContext struct {
	RestDay         bool
	NonWorking      bool
	DeadlineSeconds int
}

// DeriveStatus computes the display status for one user-date. Rest days
// and department non-working days win over presence; a first IN past the
// deadline downgrades PRESENTE to TARDE. Used for reporting only, never
// for gating submissions.
func DeriveStatus(day DayContext, firstIn *time.Time, loc *time.Location) DayStatus {
	if day.RestDay {
		return StatusDescanso
	}
	if day.NonWorking {
		return StatusNoLaborable
	}
	if firstIn == nil {
		return StatusAusente
	}

	if day.DeadlineSeconds >= 0 {
		local := firstIn.In(loc)
		arrival := local.Hour()*3600 + local.Minute()*60 + local.Second()
		if arrival > day.DeadlineSeconds {
			return StatusTarde
		}
	}

	return StatusPresente
}

// Eligibility is what the day's marks so far permit. A fresh day allows
// IN only; after an IN only OUT; after the closing OUT neither.
type Eligibility struct {
	CanMarkIn  bool
	CanMarkOut bool
}

// EligibilityFromMarks derives eligibility from a day's marks ordered by
// timestamp ascending. An OUT closes the day: nothing else can be marked
// until the next department-local day starts.
func EligibilityFromMarks(marks []Mark) Eligibility {
	if len(marks) == 0 {
		return Eligibility{CanMarkIn: true}
	}

	last := marks[len(marks)-1]
	if last.MarkType == MarkOut {
		return Eligibility{}
	}
	return Eligibility{CanMarkOut: true}
}
