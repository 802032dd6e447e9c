package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"pledgeviz/internal/analytics"
	"pledgeviz/internal/domain"
)

const (
	chartWidth  = "100%"
	chartHeight = "480px"

	overdueBar  = "#c0392b"
	upcomingBar = "#2e86c1"
)

// ChartPage assembles the HTML dashboard.
type ChartPage struct {
	fmt   Formatter
	mode  ColourMode
	title string
}

// NewChartPage creates a page builder. A nil mode paints bubbles solid.
func NewChartPage(f Formatter, mode ColourMode, title string) *ChartPage {
	if mode == nil {
		mode = Solid{}
	}
	if title == "" {
		title = "Pledges"
	}
	return &ChartPage{fmt: f, mode: mode, title: title}
}

// Render writes a standalone HTML page with the timeline, the amount
// histogram, the maturity ladder and the orbital bubble view.
func (c *ChartPage) Render(w io.Writer, tl *domain.Timeline, dist *domain.Distributions, wall time.Time) error {
	page := components.NewPage()
	page.SetPageTitle(c.title)

	if tl != nil {
		for _, kind := range []domain.Axis{domain.AxisCurrency, domain.AxisPercent} {
			if line := c.timeline(tl, kind); line != nil {
				page.AddCharts(line)
			}
		}
	}
	if dist != nil {
		page.AddCharts(
			c.histogram(dist.AmountBuckets),
			c.ladder(dist.MaturityLadder),
			c.bubbles(dist.Bubbles, dist.At, wall),
		)
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render chart page: %w", err)
	}
	return nil
}

func (c *ChartPage) base(title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "8%"}),
	}
}

// timeline draws every series of one axis kind against the sample times.
func (c *ChartPage) timeline(tl *domain.Timeline, kind domain.Axis) *charts.Line {
	var picked []domain.Series
	for _, s := range tl.Series {
		if s.Kind == kind && len(s.Points) > 0 {
			picked = append(picked, s)
		}
	}
	if len(picked) == 0 {
		return nil
	}

	yName := c.fmt.Currency
	scale := 1.0
	if kind == domain.AxisPercent {
		yName = "%"
		scale = 100
	}

	line := charts.NewLine()
	line.SetGlobalOptions(append(c.base(string(kind), c.fmt.Date(tl.From)+" to "+c.fmt.Date(tl.To)),
		charts.WithXAxisOpts(opts.XAxis{Type: "time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
	)...)

	for _, s := range picked {
		data := make([]opts.LineData, len(s.Points))
		for i, p := range s.Points {
			data[i] = opts.LineData{Value: []any{p.At.UnixMilli(), round2(p.Value * scale)}}
		}
		line.AddSeries(s.Name, data)
	}
	return line
}

func (c *ChartPage) histogram(buckets []domain.Bucket) *charts.Bar {
	labels := make([]string, len(buckets))
	data := make([]opts.BarData, len(buckets))
	for i, b := range buckets {
		labels[i] = c.fmt.Money(b.Lower) + " to " + c.fmt.Money(b.Upper)
		data[i] = opts.BarData{Value: round2(b.Value)}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(c.base("Live pledge amounts", "")...)
	bar.SetXAxis(labels)
	bar.AddSeries("Amount", data)
	return bar
}

func (c *ChartPage) ladder(rungs []domain.LadderRung) *charts.Bar {
	labels := make([]string, len(rungs))
	data := make([]opts.BarData, len(rungs))
	for i, r := range rungs {
		colour := upcomingBar
		label := "+" + strconv.Itoa(r.Index)
		if r.Overdue {
			colour = overdueBar
			label = "-" + strconv.Itoa(r.Index)
		}
		labels[i] = label
		data[i] = opts.BarData{
			Name:      fmt.Sprintf("%d pledges", r.Count),
			Value:     round2(r.Amount),
			ItemStyle: &opts.ItemStyle{Color: colour},
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(c.base("Maturity ladder", "quarters overdue (-) and until due (+)")...)
	bar.SetXAxis(labels)
	bar.AddSeries("Outstanding", data)
	return bar
}

// bubbles plots the orbital view. Bubbles sharing a paint go into one
// series, since a scatter series carries a single item style.
func (c *ChartPage) bubbles(bubbles []domain.Bubble, at, wall time.Time) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: "720px"}),
		charts.WithTitleOpts(opts.Title{Title: "Orbits", Subtitle: c.fmt.Date(at) + ", coloured by " + c.mode.String()}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: 0, Max: analytics.ViewWidth * 2}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: 0, Max: analytics.ViewHeight, Inverse: opts.Bool(true)}),
	)

	var order []Paint
	groups := map[Paint][]opts.ScatterData{}
	for _, b := range bubbles {
		paint := PaintPledge(c.mode, b.Pledge, wall)
		if _, seen := groups[paint]; !seen {
			order = append(order, paint)
		}
		groups[paint] = append(groups[paint], opts.ScatterData{
			Name:       b.Pledge.ProjectName + " " + c.fmt.Money(b.Pledge.Amount),
			Value:      []any{round2(b.X), round2(b.Y)},
			SymbolSize: int(math.Max(2, math.Round(2*b.Radius))),
		})
	}

	for _, paint := range order {
		scatter.AddSeries(paint.Fill, groups[paint],
			charts.WithItemStyleOpts(opts.ItemStyle{Color: paint.Fill, BorderColor: paint.Stroke}),
		)
	}
	return scatter
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
