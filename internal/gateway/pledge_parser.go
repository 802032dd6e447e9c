package gateway

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"pledgeviz/internal/domain"
)

// NotApplicable marks rows for loans that never got a start date.
const NotApplicable = "N/A"

const dateLayout = "02/01/2006"

var (
	datePattern = regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})`)

	errDatePattern = errors.New("expected DD/MM/YYYY")
	errEmptyNumber = errors.New("empty number")

	numberCleaner = strings.NewReplacer("£", "", "%", "", ",", "", " ", "")
)

// PledgeParser maps raw records onto pledges.
type PledgeParser struct {
	logger *slog.Logger
}

func NewPledgeParser(logger *slog.Logger) *PledgeParser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PledgeParser{logger: logger}
}

// ParsePledges is Parse with logging discarded.
func ParsePledges(records []Record) ([]domain.Pledge, error) {
	return NewPledgeParser(nil).Parse(records)
}

// Parse converts every record not marked N/A. A bad date fails the whole
// batch with a *domain.ParseError; bad numbers only log a warning.
func (p *PledgeParser) Parse(records []Record) ([]domain.Pledge, error) {
	pledges := make([]domain.Pledge, 0, len(records))

	for i, rec := range records {
		row := i + 1
		if rec[ColLoanStart] == NotApplicable {
			continue
		}

		start, err := ParseDate(rec[ColLoanStart])
		if err != nil {
			return nil, &domain.ParseError{Row: row, Field: ColLoanStart, Value: rec[ColLoanStart], Err: err}
		}
		end, err := ParseDate(rec[ColLoanEnd])
		if err != nil {
			return nil, &domain.ParseError{Row: row, Field: ColLoanEnd, Value: rec[ColLoanEnd], Err: err}
		}

		expected := p.number(row, rec, ColExpectedInterest)
		paid := p.number(row, rec, ColInterestPaid)

		pledges = append(pledges, domain.Pledge{
			ProjectName:      rec[ColProject],
			Amount:           p.number(row, rec, ColAmount),
			InterestRate:     p.number(row, rec, ColInterestRate) / 100,
			ExpectedInterest: expected,
			PaidInterest:     paid,
			RepaidFraction:   domain.Ratio(paid, expected),
			Status:           domain.ParseStatus(rec[ColStatus]),
			StartDate:        start,
			EndDate:          end,
		})
	}

	return pledges, nil
}

func (p *PledgeParser) number(row int, rec Record, field string) float64 {
	raw := rec[field]
	v, err := ParseNumber(raw)
	if err != nil {
		p.logger.Warn("unparsable number treated as zero",
			slog.Int("row", row),
			slog.String("field", field),
			slog.String("value", raw),
		)
		return 0
	}
	return v
}

// ParseNumber reads a float, ignoring currency symbols, percent signs and
// thousands separators.
func ParseNumber(raw string) (float64, error) {
	cleaned := numberCleaner.Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return 0, errEmptyNumber
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse number '%s': %w", raw, err)
	}
	return v, nil
}

// ParseDate reads a DD/MM/YYYY date as UTC midnight. Impossible calendar
// days such as 31/02 are rejected.
func ParseDate(text string) (time.Time, error) {
	m := datePattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, errDatePattern
	}
	d, err := time.ParseInLocation(dateLayout, m[0], time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar date: %w", err)
	}
	return d, nil
}
