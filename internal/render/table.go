package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"pledgeviz/internal/domain"
)

// TableRenderer writes reports as terminal tables.
type TableRenderer struct {
	out     io.Writer
	fmt     Formatter
	overdue *color.Color
}

// NewTableRenderer creates a renderer writing to out. With noColor set,
// overdue highlighting is plain text.
func NewTableRenderer(out io.Writer, f Formatter, noColor bool) *TableRenderer {
	overdue := color.New(color.FgRed, color.Bold)
	if noColor {
		overdue.DisableColor()
	}
	return &TableRenderer{out: out, fmt: f, overdue: overdue}
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	if title != "" {
		tbl.SetTitle("%s", title)
	}
	return tbl
}

func (r *TableRenderer) flush(tbl table.Writer) error {
	_, err := fmt.Fprintln(r.out, tbl.Render())
	return err
}

// Stats writes one stats table.
func (r *TableRenderer) Stats(title string, rows []domain.StatsRow) error {
	tbl := newTable(title)
	tbl.AppendHeader(table.Row{"", "Count", "Amount", "Expected Interest", "Interest Paid", "Interest Rate"})

	for _, row := range rows {
		tbl.AppendRow(table.Row{
			row.Label,
			r.fmt.Count(row.Count),
			r.fmt.Money(row.Amount),
			r.fmt.Money(row.ExpectedInterest),
			r.fmt.Money(row.PaidInterest),
			r.fmt.Rate(row.InterestRate),
		})
	}

	return r.flush(tbl)
}

// Overview writes the headline figures followed by the all-time and
// current stats tables.
func (r *TableRenderer) Overview(ov *domain.Overview) error {
	tbl := newTable("Portfolio at " + r.fmt.Date(ov.At))
	tbl.AppendRows([]table.Row{
		{"Real time", r.fmt.Date(ov.WallClock) + " (" + r.fmt.Relative(ov.At, ov.WallClock) + ")"},
		{"Unique projects", r.fmt.Count(ov.UniqueProjects)},
		{"Live projects", r.fmt.Count(ov.LiveProjects)},
		{"Received interest", r.fmt.Money(ov.ReceivedInterest)},
		{"Pending", r.fmt.Money(ov.PendingAmount)},
		{"Unrepaid", r.fmt.Money(ov.AmountUnrepaid)},
		{"Interest per day", r.fmt.Money(ov.InterestPerDay)},
		{"Interest per day (contracted)", r.fmt.Money(ov.InterestPerDayContracted)},
		{"Projects overdue", r.fmt.Rate(ov.ProjectsOverdue)},
	})
	if len(ov.OverdueProjects) > 0 {
		tbl.AppendRow(table.Row{"Overdue", r.overdue.Sprint(strings.Join(ov.OverdueProjects, ", "))})
	}
	if err := r.flush(tbl); err != nil {
		return err
	}

	if err := r.Stats("All time", ov.AllTime); err != nil {
		return err
	}
	return r.Stats("Current", ov.Current)
}

// Projects writes the project table. Overdue projects are highlighted and
// the per-pledge breakdown marks each overdue pledge.
func (r *TableRenderer) Projects(rows []domain.ProjectRow) error {
	tbl := newTable("Projects")
	tbl.AppendHeader(table.Row{
		"Project", "Pledges", "Amount", "Expected Interest", "Interest Paid",
		"APR", "Penalty APR", "Interest / Day", "Repaid", "Breakdown",
	})

	var total, expected, paid, perDay float64
	for _, row := range rows {
		name := row.Name
		if row.Overdue {
			name = r.overdue.Sprint(name)
		}

		tbl.AppendRow(table.Row{
			name,
			r.fmt.Count(row.PledgeCount),
			r.fmt.Money(row.TotalAmount),
			r.fmt.Money(row.ExpectedInterest),
			r.fmt.Money(row.PaidInterest),
			r.fmt.Rate(row.APR),
			r.fmt.Rate(row.PenaltyAPR),
			r.fmt.Money(row.InterestPerDay),
			r.fmt.Percent(row.RepaidPercent),
			r.breakdown(row.Pledges),
		})

		total += row.TotalAmount
		expected += row.ExpectedInterest
		paid += row.PaidInterest
		perDay += row.InterestPerDay
	}

	tbl.AppendFooter(table.Row{
		fmt.Sprintf("Total: %d projects", len(rows)), "",
		r.fmt.Money(total), r.fmt.Money(expected), r.fmt.Money(paid),
		"", "", r.fmt.Money(perDay), "", "",
	})

	return r.flush(tbl)
}

func (r *TableRenderer) breakdown(cells []domain.PledgeCell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		part := r.fmt.Money(c.Amount) + " @ " + r.fmt.Rate(domain.Defined(c.InterestRate))
		if c.Overdue {
			part = r.overdue.Sprint(part)
		}
		parts[i] = part
	}
	return strings.Join(parts, ", ")
}
