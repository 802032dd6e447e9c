package render

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"pledgeviz/internal/analytics"
	"pledgeviz/internal/domain"
)

// ErrUnknownColourMode is returned by ParseColourMode.
var ErrUnknownColourMode = errors.New("unknown colour mode")

// ColourMode selects how bubbles are filled. The set of modes is closed.
type ColourMode interface {
	fmt.Stringer
	colourMode()
}

// Solid paints every bubble the same green.
type Solid struct{}

// OverdueColour separates unfinished, repaid and overdue loans in real time.
type OverdueColour struct{}

// InterestColour runs from red at Min to blue at Max interest rate.
type InterestColour struct {
	Min, Max float64
}

// NameColour spreads projects by the first character of their name.
type NameColour struct{}

// AgeColour runs from red for loans started Window ago to blue for today.
type AgeColour struct {
	Window time.Duration
}

// RepaidColour runs from red for nothing repaid to blue for fully repaid.
type RepaidColour struct{}

func (Solid) colourMode()          {}
func (OverdueColour) colourMode()  {}
func (InterestColour) colourMode() {}
func (NameColour) colourMode()     {}
func (AgeColour) colourMode()      {}
func (RepaidColour) colourMode()   {}

func (Solid) String() string          { return "solid" }
func (OverdueColour) String() string  { return "overdue" }
func (InterestColour) String() string { return "interest" }
func (NameColour) String() string     { return "name" }
func (AgeColour) String() string      { return "age" }
func (RepaidColour) String() string   { return "repaid" }

// ColourModes lists every mode with its default parameters.
func ColourModes() []ColourMode {
	return []ColourMode{
		Solid{},
		OverdueColour{},
		InterestColour{Min: 0.06, Max: 0.11},
		NameColour{},
		AgeColour{Window: 3 * time.Duration(analytics.DaysPerYear*float64(analytics.OneDay))},
		RepaidColour{},
	}
}

// ParseColourMode looks a mode up by name, case-insensitively.
func ParseColourMode(name string) (ColourMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Solid{}, nil
	}
	for _, m := range ColourModes() {
		if m.String() == name {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColourMode, name)
}

// Paint is a fill and outline pair in CSS notation.
type Paint struct {
	Fill   string `json:"fill" yaml:"fill"`
	Stroke string `json:"stroke" yaml:"stroke"`
}

const (
	black = "#000000"
	grey  = "#d3d3d3"
)

var (
	paintSolid      = Paint{Fill: "#008000", Stroke: "#006400"}
	paintUnfinished = Paint{Fill: grey, Stroke: "#a9a9a9"}
	paintOverdue    = Paint{Fill: "#ff0000", Stroke: "#8b0000"}

	gradientFrom = HSL{H: 0, S: 100, L: 50}
	gradientTo   = HSL{H: 240, S: 100, L: 50}
)

// PaintPledge colours one pledge under mode. wall is the real-world instant.
func PaintPledge(mode ColourMode, p domain.Pledge, wall time.Time) Paint {
	switch m := mode.(type) {
	case Solid:
		return paintSolid
	case OverdueColour:
		switch {
		case p.EndDate.After(wall):
			return paintUnfinished
		case analytics.IsOverdue(p, wall):
			return paintOverdue
		default:
			return paintSolid
		}
	case InterestColour:
		return gradient(fraction(p.InterestRate, m.Min, m.Max))
	case NameColour:
		first, _ := utf8.DecodeRuneInString(p.ProjectName)
		return gradient(fraction(float64(first), '0', 'Z'))
	case AgeColour:
		return gradient(fraction(float64(p.StartDate.Sub(wall.Add(-m.Window))), 0, float64(m.Window)))
	case RepaidColour:
		v, ok := p.RepaidFraction.Value()
		if !ok {
			return Paint{Fill: grey, Stroke: black}
		}
		return gradient(v)
	default:
		return paintSolid
	}
}

// gradient keeps x inside [0, 1] so out-of-range inputs never wrap the hue.
func gradient(x float64) Paint {
	x = clamp(x, 0, 1)
	return Paint{Fill: InterpolateHSL(x, gradientFrom, gradientTo).Hex(), Stroke: black}
}

func fraction(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}

// HSL is a colour with hue in degrees and saturation and lightness in percent.
type HSL struct {
	H, S, L float64
}

// InterpolateHSL blends from and to linearly by x. Each channel is clamped
// to its range, so x outside [0, 1] saturates at the ends.
func InterpolateHSL(x float64, from, to HSL) HSL {
	if math.IsNaN(x) {
		x = 0
	}
	return HSL{
		H: clamp(from.H+(to.H-from.H)*x, 0, 360),
		S: clamp(from.S+(to.S-from.S)*x, 0, 100),
		L: clamp(from.L+(to.L-from.L)*x, 0, 100),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(v, lo))
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%gdeg %g%% %g%%)", c.H, c.S, c.L)
}

// Hex converts to #rrggbb.
func (c HSL) Hex() string {
	h := math.Mod(c.H, 360) / 60
	s := c.S / 100
	l := c.L / 100

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 1:
		r, g = chroma, x
	case h < 2:
		r, g = x, chroma
	case h < 3:
		g, b = chroma, x
	case h < 4:
		g, b = x, chroma
	case h < 5:
		r, b = x, chroma
	default:
		r, b = chroma, x
	}

	channel := func(v float64) int {
		return int(math.Round((v + m) * 255))
	}
	return fmt.Sprintf("#%02x%02x%02x", channel(r), channel(g), channel(b))
}
