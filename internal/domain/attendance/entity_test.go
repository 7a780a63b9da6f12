package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mark(id string, t MarkType, hour int) Mark {
	return Mark{
		ID:        id,
		MarkType:  t,
		Timestamp: time.Date(2026, 3, 2, hour, 0, 0, 0, time.UTC),
	}
}

func TestEligibilityFromMarks(t *testing.T) {
	tests := []struct {
		name  string
		marks []Mark
		want  Eligibility
	}{
		{
			name: "fresh day allows IN only",
			want: Eligibility{CanMarkIn: true},
		},
		{
			name:  "open IN allows OUT only",
			marks: []Mark{mark("m1", MarkIn, 13)},
			want:  Eligibility{CanMarkOut: true},
		},
		{
			name:  "closing OUT is terminal for the day",
			marks: []Mark{mark("m1", MarkIn, 13), mark("m2", MarkOut, 22)},
			want:  Eligibility{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EligibilityFromMarks(tt.marks))
		})
	}
}

func TestParseMarkType(t *testing.T) {
	for _, valid := range []string{"IN", "OUT"} {
		got, ok := ParseMarkType(valid)
		assert.True(t, ok)
		assert.Equal(t, MarkType(valid), got)
	}

	for _, invalid := range []string{"", "in", "LUNCH"} {
		_, ok := ParseMarkType(invalid)
		assert.False(t, ok, "expected %q to be rejected", invalid)
	}
}
