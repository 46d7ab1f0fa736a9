package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddBusinessDays(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		n    int
		want time.Time
	}{
		{
			name: "zero days returns same date",
			from: date(2025, time.January, 6), // Monday
			n:    0,
			want: date(2025, time.January, 6),
		},
		{
			name: "within same week",
			from: date(2025, time.January, 6), // Monday
			n:    3,
			want: date(2025, time.January, 9), // Thursday
		},
		{
			name: "skips one weekend",
			from: date(2025, time.January, 9), // Thursday
			n:    3,
			want: date(2025, time.January, 14), // Tuesday
		},
		{
			name: "starting on saturday lands on following business days",
			from: date(2025, time.January, 11), // Saturday
			n:    1,
			want: date(2025, time.January, 13), // Monday
		},
		{
			name: "30 business days spans six weeks",
			from: date(2025, time.January, 6), // Monday
			n:    30,
			want: date(2025, time.February, 17), // Monday six weeks later
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddBusinessDays(tt.from, tt.n)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsBusinessDay(t *testing.T) {
	assert.True(t, IsBusinessDay(date(2025, time.January, 6)))   // Monday
	assert.True(t, IsBusinessDay(date(2025, time.January, 10)))  // Friday
	assert.False(t, IsBusinessDay(date(2025, time.January, 11))) // Saturday
	assert.False(t, IsBusinessDay(date(2025, time.January, 12))) // Sunday
}
