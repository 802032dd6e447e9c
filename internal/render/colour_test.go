package render

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pledgeviz/internal/domain"
)

func TestParseColourMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColourMode
		wantErr bool
	}{
		{in: "", want: Solid{}},
		{in: "solid", want: Solid{}},
		{in: "Overdue", want: OverdueColour{}},
		{in: " interest ", want: InterestColour{Min: 0.06, Max: 0.11}},
		{in: "name", want: NameColour{}},
		{in: "repaid", want: RepaidColour{}},
		{in: "rainbow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColourMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownColourMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	age, err := ParseColourMode("age")
	require.NoError(t, err)
	assert.IsType(t, AgeColour{}, age)
	assert.Greater(t, age.(AgeColour).Window, 3*365*24*time.Hour)
}

func TestInterpolateHSL(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want HSL
	}{
		{name: "start", x: 0, want: gradientFrom},
		{name: "midpoint", x: 0.5, want: HSL{H: 120, S: 100, L: 50}},
		{name: "end", x: 1, want: gradientTo},
		{name: "hue clamps high", x: 2, want: HSL{H: 360, S: 100, L: 50}},
		{name: "hue clamps low", x: -1, want: HSL{H: 0, S: 100, L: 50}},
		{name: "NaN is the start", x: math.NaN(), want: gradientFrom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InterpolateHSL(tt.x, gradientFrom, gradientTo))
		})
	}

	assert.Equal(t, "hsl(120deg 100% 50%)", HSL{H: 120, S: 100, L: 50}.String())
}

func TestHSL_Hex(t *testing.T) {
	tests := []struct {
		in   HSL
		want string
	}{
		{in: HSL{H: 0, S: 100, L: 50}, want: "#ff0000"},
		{in: HSL{H: 120, S: 100, L: 50}, want: "#00ff00"},
		{in: HSL{H: 240, S: 100, L: 50}, want: "#0000ff"},
		{in: HSL{H: 360, S: 100, L: 50}, want: "#ff0000"},
		{in: HSL{H: 60, S: 100, L: 50}, want: "#ffff00"},
		{in: HSL{H: 0, S: 0, L: 100}, want: "#ffffff"},
		{in: HSL{H: 0, S: 0, L: 0}, want: "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Hex())
		})
	}
}

func TestPaintPledge(t *testing.T) {
	wall := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	pledge := func(name string, rate float64, status domain.PledgeStatus, start, end time.Time) domain.Pledge {
		return domain.Pledge{ProjectName: name, Amount: 100, InterestRate: rate, Status: status, StartDate: start, EndDate: end}
	}
	past := wall.AddDate(-1, 0, 0)
	future := wall.AddDate(1, 0, 0)

	repaid := pledge("Beta", 0.1, domain.StatusCompleted, past.AddDate(-1, 0, 0), past)
	repaid.RepaidFraction = domain.Defined(1)

	tests := []struct {
		name string
		mode ColourMode
		p    domain.Pledge
		want Paint
	}{
		{name: "nil mode is solid", mode: nil, p: repaid, want: paintSolid},
		{name: "solid", mode: Solid{}, p: repaid, want: paintSolid},
		{name: "overdue: unfinished", mode: OverdueColour{}, p: pledge("A", 0.1, domain.StatusLive, past, future), want: paintUnfinished},
		{name: "overdue: late", mode: OverdueColour{}, p: pledge("A", 0.1, domain.StatusLive, past.AddDate(-1, 0, 0), past), want: paintOverdue},
		{name: "overdue: repaid", mode: OverdueColour{}, p: repaid, want: paintSolid},
		{name: "interest: minimum", mode: InterestColour{Min: 0.06, Max: 0.11}, p: pledge("A", 0.06, domain.StatusLive, past, future), want: Paint{Fill: "#ff0000", Stroke: black}},
		{name: "interest: above maximum", mode: InterestColour{Min: 0.06, Max: 0.11}, p: pledge("A", 0.2, domain.StatusLive, past, future), want: Paint{Fill: "#0000ff", Stroke: black}},
		{name: "interest: empty range", mode: InterestColour{}, p: pledge("A", 0.2, domain.StatusLive, past, future), want: Paint{Fill: "#ff0000", Stroke: black}},
		{name: "name: digit", mode: NameColour{}, p: pledge("0 Street", 0.1, domain.StatusLive, past, future), want: Paint{Fill: "#ff0000", Stroke: black}},
		{name: "name: Z", mode: NameColour{}, p: pledge("Zeta", 0.1, domain.StatusLive, past, future), want: Paint{Fill: "#0000ff", Stroke: black}},
		{name: "age: started today", mode: AgeColour{Window: 365 * 24 * time.Hour}, p: pledge("A", 0.1, domain.StatusLive, wall, future), want: Paint{Fill: "#0000ff", Stroke: black}},
		{name: "age: started a window ago", mode: AgeColour{Window: 365 * 24 * time.Hour}, p: pledge("A", 0.1, domain.StatusLive, wall.Add(-365*24*time.Hour), future), want: Paint{Fill: "#ff0000", Stroke: black}},
		{name: "repaid: fully", mode: RepaidColour{}, p: repaid, want: Paint{Fill: "#0000ff", Stroke: black}},
		{name: "repaid: undefined", mode: RepaidColour{}, p: pledge("A", 0.1, domain.StatusLive, past, future), want: Paint{Fill: grey, Stroke: black}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PaintPledge(tt.mode, tt.p, wall))
		})
	}
}
