package config

import "time"

// Logging defaults.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// CSV defaults.
const (
	DefaultDelimiter = ","
)

// Playback defaults. One tick of DefaultPlaybackStep every 100ms is one
// simulated day per second.
const (
	DefaultPlaybackInterval = 100 * time.Millisecond
	DefaultPlaybackStep     = 144 * time.Minute
	DefaultPlaybackSpeed    = 1.0
	DefaultPlaybackLoop     = false
)

// Chart defaults.
const (
	DefaultChartPoints       = 100
	DefaultChartBucketSize   = 100.0
	DefaultChartProportional = false
	DefaultChartLadderBucket = 131490 * time.Minute // a quarter of a 365.25-day year
	DefaultChartOutput       = "pledges.html"
	DefaultChartColourMode   = "overdue"
)

// Display defaults.
const (
	DefaultCurrency = "£"
	DefaultNoColor  = false
)
