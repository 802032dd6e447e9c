package playback

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	earliest = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	latest   = time.Date(2020, 1, 11, 0, 0, 0, 0, time.UTC)
)

func TestNew_Defaults(t *testing.T) {
	p := New(Config{}, nil)
	assert.Equal(t, DefaultConfig(), p.cfg)
	assert.False(t, p.Playing())
	assert.True(t, p.Cursor().IsZero())
}

func TestPlayer_Advance(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		from  time.Time
		steps int
		want  time.Time
	}{
		{
			name:  "ten default steps make one day",
			cfg:   DefaultConfig(),
			from:  earliest,
			steps: 10,
			want:  earliest.Add(24 * time.Hour),
		},
		{
			name:  "speed multiplies the step",
			cfg:   Config{Step: time.Hour, Speed: 2.5},
			from:  earliest,
			steps: 2,
			want:  earliest.Add(5 * time.Hour),
		},
		{
			name:  "loop wraps past the latest start",
			cfg:   Config{Step: 24 * time.Hour, Loop: true},
			from:  latest,
			steps: 1,
			want:  earliest,
		},
		{
			name:  "landing exactly on the latest start does not wrap",
			cfg:   Config{Step: 24 * time.Hour, Loop: true},
			from:  latest.Add(-24 * time.Hour),
			steps: 1,
			want:  latest,
		},
		{
			name:  "without loop the cursor runs on",
			cfg:   Config{Step: 24 * time.Hour},
			from:  latest,
			steps: 3,
			want:  latest.Add(72 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.cfg, nil)
			p.SetBounds(earliest, latest)
			p.Seek(tt.from)

			var got time.Time
			for i := 0; i < tt.steps; i++ {
				got = p.Advance()
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, p.Cursor())
		})
	}
}

func TestPlayer_SetBoundsAndReset(t *testing.T) {
	p := New(DefaultConfig(), nil)

	p.SetBounds(earliest, latest)
	assert.Equal(t, earliest, p.Cursor(), "unset cursor jumps to earliest")

	mid := earliest.Add(72 * time.Hour)
	p.Seek(mid)
	p.SetBounds(earliest, latest.AddDate(0, 1, 0))
	assert.Equal(t, mid, p.Cursor(), "cursor inside the range is kept")

	later := mid.Add(24 * time.Hour)
	p.SetBounds(later, latest)
	assert.Equal(t, later, p.Cursor())

	p.Seek(latest)
	p.Reset()
	assert.Equal(t, later, p.Cursor())
}

func TestPlayer_PlayStop(t *testing.T) {
	p := New(Config{Interval: time.Millisecond, Step: time.Hour}, nil)
	p.SetBounds(earliest, latest)

	var ticks atomic.Int64
	p.Play(context.Background(), func(time.Time) {
		ticks.Add(1)
	})
	assert.True(t, p.Playing())

	// A second Play while running is ignored.
	p.Play(context.Background(), func(time.Time) {
		t.Error("second callback must never run")
	})

	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)

	p.Stop()
	assert.False(t, p.Playing())
	assert.Nil(t, p.Done())

	stopped := ticks.Load()
	cursor := p.Cursor()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load(), "no tick after Stop returns")
	assert.Equal(t, cursor, p.Cursor())
	assert.True(t, cursor.After(earliest))

	// Stop is idempotent.
	p.Stop()
}

func TestPlayer_ContextCancelEndsPlayback(t *testing.T) {
	p := New(Config{Interval: time.Millisecond}, nil)
	p.SetBounds(earliest, latest)

	ctx, cancel := context.WithCancel(context.Background())
	p.Play(ctx, nil)
	done := p.Done()
	require.NotNil(t, done)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("playback goroutine did not exit")
	}
	assert.False(t, p.Playing())

	// Playback can be restarted afterwards.
	p.Play(context.Background(), nil)
	assert.True(t, p.Playing())
	p.Stop()
}
