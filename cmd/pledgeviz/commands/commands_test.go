package commands

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pledgeviz/internal/domain"
	"pledgeviz/internal/render"
)

var wall = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func writePledges(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pledges.csv")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	require.NoError(t, csv.NewWriter(file).WriteAll([][]string{
		{"Project", "Amount", "Interest Rate", "Expected Interest", "Interest Paid", "Status", "Loan Start", "Loan End"},
		{"Alpha Homes", "£1,000.00", "8%", "£80.00", "£40.00", "Live", "01/01/2023", "01/01/2025"},
		{"Beta Farm", "£500.00", "10%", "£50.00", "£50.00", "Paid Back", "01/03/2022", "01/03/2023"},
		{"Gamma Mill", "£250.00", "7%", "£17.50", "£0.00", "Live", "01/02/2023", "01/02/2024"},
		{"Delta Yard", "£300.00", "9%", "£27.00", "£0.00", "Loan not yet started", "N/A", "N/A"},
	}))
	return path
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".pledgeviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// execute runs the command tree with a fixed wall clock.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCommand("test", domain.FixedClock(wall))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSummaryCommand(t *testing.T) {
	file := writePledges(t)
	cfg := writeTestConfig(t, "display:\n  no_color: true\n")

	t.Run("json", func(t *testing.T) {
		out, _, err := execute(t, "summary", "-f", file, "--config", cfg, "--at", "2024-06-01", "--format", "json")
		require.NoError(t, err)

		var ov map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &ov))
		assert.EqualValues(t, 3, ov["unique_projects"])
		assert.EqualValues(t, 1, ov["live_projects"])
		assert.Equal(t, []any{"Gamma Mill"}, ov["overdue_projects"])
		assert.InDelta(t, 50.0, ov["received_interest"], 0.001)
	})

	t.Run("table", func(t *testing.T) {
		out, _, err := execute(t, "summary", "-f", file, "--config", cfg, "--at", "01/06/2024")
		require.NoError(t, err)
		assert.Contains(t, out, "Portfolio at 01/06/2024")
		assert.Contains(t, out, "Gamma Mill")
		assert.NotContains(t, out, "\x1b[")
	})

	t.Run("defaults to the wall clock", func(t *testing.T) {
		out, _, err := execute(t, "summary", "-f", file, "--config", cfg, "-o", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "at: 2024-06-01T00:00:00Z")
	})

	t.Run("verbose logs the load", func(t *testing.T) {
		_, logs, err := execute(t, "summary", "-f", file, "--config", cfg, "-o", "json", "-v")
		require.NoError(t, err)
		assert.Contains(t, logs, "pledges loaded")
	})
}

func TestProjectsCommand(t *testing.T) {
	file := writePledges(t)
	cfg := writeTestConfig(t, "display:\n  no_color: true\n")

	t.Run("sorted json", func(t *testing.T) {
		out, _, err := execute(t, "projects", "-f", file, "--config", cfg, "--sort", "amount", "--desc", "-o", "json")
		require.NoError(t, err)

		var rows []domain.ProjectRow
		require.NoError(t, json.Unmarshal([]byte(out), &rows))
		require.Len(t, rows, 3)
		assert.Equal(t, "Alpha Homes", rows[0].Name)
		assert.Equal(t, "Beta Farm", rows[1].Name)
		assert.Equal(t, "Gamma Mill", rows[2].Name)
		assert.True(t, rows[2].Overdue)
	})

	t.Run("table", func(t *testing.T) {
		out, _, err := execute(t, "projects", "-f", file, "--config", cfg, "--sort", "name")
		require.NoError(t, err)
		assert.Less(t, strings.Index(out, "Alpha Homes"), strings.Index(out, "Gamma Mill"))
		assert.Contains(t, out, "TOTAL: 3 PROJECTS")
	})

	t.Run("unknown sort column", func(t *testing.T) {
		_, _, err := execute(t, "projects", "-f", file, "--config", cfg, "--sort", "colour")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown sort column")
	})
}

func TestChartCommand(t *testing.T) {
	file := writePledges(t)
	output := filepath.Join(t.TempDir(), "out", "chart.html")
	cfg := writeTestConfig(t, "chart:\n  points: 10\n  colour_mode: interest\n")

	out, _, err := execute(t, "chart", "-f", file, "--config", cfg, "-o", output, "--title", "My Pledges")
	require.NoError(t, err)
	assert.Equal(t, output+"\n", out)

	html, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(html), "My Pledges")
	assert.Contains(t, string(html), "Orbits")

	_, _, err = execute(t, "chart", "-f", file, "--config", cfg, "-o", output, "--colour", "plaid")
	assert.ErrorIs(t, err, render.ErrUnknownColourMode)
}

func TestPlayCommand(t *testing.T) {
	file := writePledges(t)

	t.Run("tick limit", func(t *testing.T) {
		cfg := writeTestConfig(t, "playback:\n  interval: 1ms\ndisplay:\n  no_color: true\n")

		out, _, err := execute(t, "play", "-f", file, "--config", cfg, "--from", "20/05/2024", "--ticks", "3")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 4)
		for _, line := range lines {
			assert.True(t, strings.HasPrefix(line, "20/05/2024"), line)
		}
		assert.Contains(t, lines[0], "live £1,000.00 in 1 pledges")
		assert.Contains(t, lines[0], "1 overdue")
	})

	t.Run("starts at the earliest pledge", func(t *testing.T) {
		cfg := writeTestConfig(t, "playback:\n  interval: 1ms\ndisplay:\n  no_color: true\n")

		out, _, err := execute(t, "play", "-f", file, "--config", cfg, "--ticks", "1")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "01/03/2022"), lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "01/03/2022"), lines[1])
	})

	t.Run("stops after the wall clock", func(t *testing.T) {
		cfg := writeTestConfig(t, "playback:\n  interval: 1ms\n  step: 24h\ndisplay:\n  no_color: true\n")

		out, _, err := execute(t, "play", "-f", file, "--config", cfg, "--from", "2024-05-31")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "31/05/2024"))
		assert.True(t, strings.HasPrefix(lines[1], "01/06/2024"))
		assert.True(t, strings.HasPrefix(lines[2], "02/06/2024"))
	})
}

func TestCommandErrors(t *testing.T) {
	file := writePledges(t)
	cfg := writeTestConfig(t, "")

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "missing file", args: []string{"summary", "--config", cfg}, wantErr: ErrNoFile},
		{name: "bad date", args: []string{"summary", "-f", file, "--config", cfg, "--at", "next tuesday"}, wantErr: ErrBadDate},
		{name: "bad format", args: []string{"projects", "-f", file, "--config", cfg, "-o", "xml"}, wantErr: render.ErrUnknownFormat},
		{name: "missing csv", args: []string{"summary", "-f", file + ".gone", "--config", cfg}, wantErr: os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pledgeviz test\n", out)
}
