// Package playback drives the simulated cursor forward in real time.
package playback

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Playback defaults.
const (
	DefaultInterval = 100 * time.Millisecond
	// DefaultStep advances one simulated day per real second at the default interval.
	DefaultStep  = 144 * time.Minute
	DefaultSpeed = 1.0
)

// Config tunes the playback clock.
type Config struct {
	Interval time.Duration
	Step     time.Duration
	Speed    float64
	Loop     bool
}

// DefaultConfig returns the stock playback settings.
func DefaultConfig() Config {
	return Config{
		Interval: DefaultInterval,
		Step:     DefaultStep,
		Speed:    DefaultSpeed,
	}
}

// TickFunc receives the cursor after every automatic advance. It runs on
// the playback goroutine and must not call Stop.
type TickFunc func(cursor time.Time)

// Player owns the simulated cursor. It is safe for concurrent use.
type Player struct {
	cfg    Config
	logger *slog.Logger

	mu       sync.Mutex
	cursor   time.Time
	earliest time.Time
	latest   time.Time
	cancel   context.CancelFunc
	done     chan struct{}
}

// New creates a stopped player. Zero config fields take their defaults.
func New(cfg Config, logger *slog.Logger) *Player {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Step <= 0 {
		cfg.Step = DefaultStep
	}
	if cfg.Speed <= 0 {
		cfg.Speed = DefaultSpeed
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Player{cfg: cfg, logger: logger}
}

// SetBounds records the start-date range of a freshly loaded snapshot. An
// unset cursor, or one before the new range, moves to earliest.
func (p *Player) SetBounds(earliest, latest time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.earliest, p.latest = earliest, latest
	if p.cursor.IsZero() || p.cursor.Before(earliest) {
		p.cursor = earliest
	}
}

// Cursor returns the current simulated time.
func (p *Player) Cursor() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.cursor
}

// Seek moves the cursor to t.
func (p *Player) Seek(t time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cursor = t
}

// Reset moves the cursor back to the earliest start.
func (p *Player) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cursor = p.earliest
}

// Advance moves the cursor one step. When looping, passing the latest
// start wraps back to the earliest.
func (p *Player) Advance() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()

	step := time.Duration(float64(p.cfg.Step) * p.cfg.Speed)
	p.cursor = p.cursor.Add(step)
	if p.cfg.Loop && !p.latest.IsZero() && p.cursor.After(p.latest) {
		p.cursor = p.earliest
	}

	return p.cursor
}

// Playing reports whether the ticker goroutine is running.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.cancel != nil
}

// Play starts advancing the cursor every interval until Stop is called or
// ctx ends. It is a no-op while already playing.
func (p *Player) Play(ctx context.Context, onTick TickFunc) {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel, p.done = cancel, done
	cursor := p.cursor
	p.mu.Unlock()

	p.logger.Debug("playback started",
		slog.Time("cursor", cursor),
		slog.Duration("interval", p.cfg.Interval),
		slog.Float64("speed", p.cfg.Speed),
	)

	go p.run(ctx, onTick, done)
}

// Stop halts playback and waits for the ticker goroutine to exit, so no
// TickFunc runs after it returns.
func (p *Player) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done

	p.logger.Debug("playback stopped", slog.Time("cursor", p.Cursor()))
}

// Done is closed when the current playback goroutine exits. It returns
// nil while stopped.
func (p *Player) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.done
}

func (p *Player) run(ctx context.Context, onTick TickFunc, done chan struct{}) {
	defer func() {
		p.mu.Lock()
		if p.done == done {
			p.cancel, p.done = nil, nil
		}
		p.mu.Unlock()
		close(done)
	}()

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cursor := p.Advance()
			if ctx.Err() != nil {
				return
			}
			if onTick != nil {
				onTick(cursor)
			}
		}
	}
}
