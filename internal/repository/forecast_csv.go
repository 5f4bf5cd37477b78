package repository

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"RateWatch/internal/domain/models"
	"RateWatch/pkg/util"
)

// CSVForecastStore implements repository.ForecastStore over a CSV file
// loaded once at startup. The file must have a date column plus one or
// more numeric indicator columns. Load failure is fatal to the caller.
type CSVForecastStore struct {
	dateColumn string
	columns    []string
	rows       []models.ForecastRow
	raw        [][]string // original cells per row, for lossless export
	header     []string
}

// NewCSVForecastStore reads and parses the dataset file.
func NewCSVForecastStore(path, dateColumn string) (*CSVForecastStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	s, err := parseCSV(f, dateColumn)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return s, nil
}

func parseCSV(r io.Reader, dateColumn string) (*CSVForecastStore, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	dateIdx := -1
	for i, name := range header {
		if name == dateColumn {
			dateIdx = i
			break
		}
	}
	if dateIdx < 0 {
		return nil, fmt.Errorf("missing %q column", dateColumn)
	}

	columns := make([]string, 0, len(header)-1)
	for i, name := range header {
		if i != dateIdx {
			columns = append(columns, name)
		}
	}

	s := &CSVForecastStore{
		dateColumn: dateColumn,
		columns:    columns,
		header:     header,
	}

	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		date, ok := util.ParseDate(rec[dateIdx])
		if !ok {
			return nil, fmt.Errorf("row %d: unparseable date %q", line, rec[dateIdx])
		}

		values := make(map[string]float64, len(columns))
		for i, cell := range rec {
			if i == dateIdx || cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: column %q: %w", line, header[i], err)
			}
			values[header[i]] = v
		}

		s.rows = append(s.rows, models.ForecastRow{Date: date, Values: values})
		s.raw = append(s.raw, rec)
	}

	if len(s.rows) == 0 {
		return nil, fmt.Errorf("dataset has no rows")
	}

	// Source files are expected to be sorted ascending by unique date;
	// sort anyway so range selection stays correct if they are not.
	idx := make([]int, len(s.rows))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return s.rows[idx[a]].Date.Before(s.rows[idx[b]].Date)
	})
	rows := make([]models.ForecastRow, len(s.rows))
	raw := make([][]string, len(s.raw))
	for i, j := range idx {
		rows[i] = s.rows[j]
		raw[i] = s.raw[j]
	}
	s.rows, s.raw = rows, raw

	return s, nil
}

// Columns returns indicator column names, Date excluded, in file order.
func (s *CSVForecastStore) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// Bounds returns the minimum and maximum dataset dates.
func (s *CSVForecastStore) Bounds() (time.Time, time.Time) {
	return s.rows[0].Date, s.rows[len(s.rows)-1].Date
}

// Rows returns rows with Date in [from, to], inclusive on both ends.
func (s *CSVForecastStore) Rows(from, to time.Time) []models.ForecastRow {
	lo, hi := s.rangeIndexes(from, to)
	out := make([]models.ForecastRow, hi-lo)
	copy(out, s.rows[lo:hi])
	return out
}

// Latest returns the most recent row.
func (s *CSVForecastStore) Latest() (models.ForecastRow, error) {
	if len(s.rows) == 0 {
		return models.ForecastRow{}, fmt.Errorf("dataset is empty")
	}
	return s.rows[len(s.rows)-1], nil
}

// Series returns the (date, value) points of one indicator in [from, to].
func (s *CSVForecastStore) Series(indicator string, from, to time.Time) (models.IndicatorSeries, error) {
	found := false
	for _, c := range s.columns {
		if c == indicator {
			found = true
			break
		}
	}
	if !found {
		return models.IndicatorSeries{}, fmt.Errorf("unknown indicator %q", indicator)
	}

	lo, hi := s.rangeIndexes(from, to)
	series := models.IndicatorSeries{Indicator: indicator}
	for _, row := range s.rows[lo:hi] {
		if v, ok := row.Value(indicator); ok {
			series.Points = append(series.Points, models.SeriesPoint{Date: row.Date, Value: v})
		}
	}
	return series, nil
}

// ExportCSV writes the rows in [from, to] back out with the original
// header order and the original cell text, so a re-parse reproduces the
// selected subset exactly.
func (s *CSVForecastStore) ExportCSV(w io.Writer, from, to time.Time) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(s.header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	lo, hi := s.rangeIndexes(from, to)
	for _, rec := range s.raw[lo:hi] {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// rangeIndexes returns the half-open index range [lo, hi) of rows whose
// date falls in the inclusive [from, to] window.
func (s *CSVForecastStore) rangeIndexes(from, to time.Time) (int, int) {
	lo := sort.Search(len(s.rows), func(i int) bool {
		return !s.rows[i].Date.Before(from)
	})
	hi := sort.Search(len(s.rows), func(i int) bool {
		return s.rows[i].Date.After(to)
	})
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
