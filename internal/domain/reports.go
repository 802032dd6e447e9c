package domain

import "time"

// StatsRow summarises one labelled pledge subset.
type StatsRow struct {
	Label            string  `json:"label" yaml:"label"`
	Count            int     `json:"count" yaml:"count"`
	Amount           float64 `json:"amount" yaml:"amount"`
	ExpectedInterest float64 `json:"expected_interest" yaml:"expected_interest"`
	PaidInterest     float64 `json:"paid_interest" yaml:"paid_interest"`
	InterestRate     Metric  `json:"interest_rate" yaml:"interest_rate"`
}

// PledgeCell is the per-pledge breakdown shown next to a project.
type PledgeCell struct {
	Amount       float64 `json:"amount" yaml:"amount"`
	InterestRate float64 `json:"interest_rate" yaml:"interest_rate"`
	Overdue      bool    `json:"overdue" yaml:"overdue"`
}

// ProjectRow is one line of the project table, computed for a single
// reference time.
type ProjectRow struct {
	Name             string       `json:"name" yaml:"name"`
	PledgeCount      int          `json:"pledge_count" yaml:"pledge_count"`
	TotalAmount      float64      `json:"total_amount" yaml:"total_amount"`
	ExpectedInterest float64      `json:"expected_interest" yaml:"expected_interest"`
	PaidInterest     float64      `json:"paid_interest" yaml:"paid_interest"`
	APR              Metric       `json:"apr" yaml:"apr"`
	PenaltyAPR       Metric       `json:"penalty_apr" yaml:"penalty_apr"`
	InterestPerDay   float64      `json:"interest_per_day" yaml:"interest_per_day"`
	RepaidPercent    Metric       `json:"repaid_percent" yaml:"repaid_percent"`
	Overdue          bool         `json:"overdue" yaml:"overdue"`
	Pledges          []PledgeCell `json:"pledges" yaml:"pledges"`
}

// Overview is the portfolio state at one simulated instant.
type Overview struct {
	At                       time.Time  `json:"at" yaml:"at"`
	WallClock                time.Time  `json:"wall_clock" yaml:"wall_clock"`
	AllTime                  []StatsRow `json:"all_time" yaml:"all_time"`
	Current                  []StatsRow `json:"current" yaml:"current"`
	UniqueProjects           int        `json:"unique_projects" yaml:"unique_projects"`
	LiveProjects             int        `json:"live_projects" yaml:"live_projects"`
	ReceivedInterest         float64    `json:"received_interest" yaml:"received_interest"`
	PendingAmount            float64    `json:"pending_amount" yaml:"pending_amount"`
	AmountUnrepaid           float64    `json:"amount_unrepaid" yaml:"amount_unrepaid"`
	InterestPerDay           float64    `json:"interest_per_day" yaml:"interest_per_day"`
	InterestPerDayContracted float64    `json:"interest_per_day_contracted" yaml:"interest_per_day_contracted"`
	ProjectsOverdue          Metric     `json:"projects_overdue" yaml:"projects_overdue"`
	OverdueProjects          []string   `json:"overdue_projects" yaml:"overdue_projects"`
}

// Point is one sample of a time series.
type Point struct {
	At    time.Time `json:"at" yaml:"at"`
	Value float64   `json:"value" yaml:"value"`
}

// Series is a named sampled curve.
type Series struct {
	Name   string  `json:"name" yaml:"name"`
	Kind   Axis    `json:"kind" yaml:"kind"`
	Points []Point `json:"points" yaml:"points"`
}

// Axis tells presentation how to label a series' values.
type Axis string

const (
	AxisNumber   Axis = "number"
	AxisCurrency Axis = "currency"
	AxisPercent  Axis = "percent"
)

// Timeline is a set of series sampled over the same window.
type Timeline struct {
	From   time.Time `json:"from" yaml:"from"`
	To     time.Time `json:"to" yaml:"to"`
	Series []Series  `json:"series" yaml:"series"`
}

// Bucket is one histogram bar covering [Lower, Upper).
type Bucket struct {
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
	Value float64 `json:"value" yaml:"value"`
}

// LadderRung groups pledges by how far away their contractual end is.
// Overdue rungs hold pledges whose end has already passed.
type LadderRung struct {
	Index   int     `json:"index" yaml:"index"`
	Overdue bool    `json:"overdue" yaml:"overdue"`
	Amount  float64 `json:"amount" yaml:"amount"`
	Count   int     `json:"count" yaml:"count"`
}

// Bubble is the orbital-diagram placement of one pledge.
type Bubble struct {
	Pledge  Pledge  `json:"pledge" yaml:"pledge"`
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Radius  float64 `json:"radius" yaml:"radius"`
	Orbit   float64 `json:"orbit" yaml:"orbit"`
	Stroke  float64 `json:"stroke" yaml:"stroke"`
	Overdue bool    `json:"overdue" yaml:"overdue"`
}

// Distributions groups the shape-of-portfolio views at one instant.
type Distributions struct {
	At             time.Time    `json:"at" yaml:"at"`
	AmountBuckets  []Bucket     `json:"amount_buckets" yaml:"amount_buckets"`
	MaturityLadder []LadderRung `json:"maturity_ladder" yaml:"maturity_ladder"`
	Bubbles        []Bubble     `json:"bubbles" yaml:"bubbles"`
}
