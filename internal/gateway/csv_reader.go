package gateway

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"pledgeviz/internal/domain"
)

// Column names required in a pledge export header.
const (
	ColProject          = "Project"
	ColAmount           = "Amount"
	ColInterestRate     = "Interest Rate"
	ColExpectedInterest = "Expected Interest"
	ColInterestPaid     = "Interest Paid"
	ColStatus           = "Status"
	ColLoanStart        = "Loan Start"
	ColLoanEnd          = "Loan End"
)

var requiredColumns = []string{
	ColProject, ColAmount, ColInterestRate, ColExpectedInterest,
	ColInterestPaid, ColStatus, ColLoanStart, ColLoanEnd,
}

var (
	ErrEmptyFile     = errors.New("file has no header line")
	ErrMissingColumn = errors.New("required column missing from header")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Record is one data row keyed by header name.
type Record map[string]string

// CSVRecordReader turns delimited text into records.
type CSVRecordReader struct {
	Comma rune
}

// NewCSVRecordReader returns a reader for the given delimiter. A zero
// delimiter means comma.
func NewCSVRecordReader(comma rune) *CSVRecordReader {
	if comma == 0 {
		comma = ','
	}
	return &CSVRecordReader{Comma: comma}
}

// ReadRecords reads the header and every following row, preserving file order.
func (r *CSVRecordReader) ReadRecords(ctx context.Context, in io.Reader) ([]Record, error) {
	raw, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.Comma = r.Comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if err := checkHeader(header); err != nil {
		return nil, err
	}

	records := make([]Record, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record: %w", err)
		}
		if isBlank(row) {
			continue
		}

		record := make(Record, len(header))
		for i, key := range header {
			if i < len(row) {
				record[key] = row[i]
			} else {
				record[key] = ""
			}
		}
		records = append(records, record)
	}

	return records, nil
}

func checkHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}
	return nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// CSVPledgeRepository implements the PledgeRepository interface for CSV exports.
type CSVPledgeRepository struct {
	reader *CSVRecordReader
	logger *slog.Logger
}

// NewCSVPledgeRepository creates a new repository instance.
func NewCSVPledgeRepository(comma rune, logger *slog.Logger) *CSVPledgeRepository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CSVPledgeRepository{
		reader: NewCSVRecordReader(comma),
		logger: logger,
	}
}

// LoadPledges reads and parses a pledge export. Any date parse failure
// rejects the whole file.
func (r *CSVPledgeRepository) LoadPledges(ctx context.Context, path string) ([]domain.Pledge, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pledge file %s: %w", path, err)
	}
	defer file.Close()

	records, err := r.reader.ReadRecords(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	parser := NewPledgeParser(r.logger)
	pledges, err := parser.Parse(records)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	r.logger.Info("pledges loaded",
		slog.String("file", filepath.Base(path)),
		slog.Int("rows", len(records)),
		slog.Int("skipped", len(records)-len(pledges)),
		slog.Int("pledges", len(pledges)),
	)

	return pledges, nil
}
