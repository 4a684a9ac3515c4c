package domain

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

var queryTableHeader = []string{"threshold", "ignore", "revcomp"}

const (
	// DefaultBufferCheckMB is the buffer size the tiny default buffer is
	// checked against.
	DefaultBufferCheckMB = 8.0

	bufferCheckRowName = "buffer-determinism"
)

// QuerySweep is the configuration of a query sweep: the parameter rows plus
// the options every pseudoalign call shares.
type QuerySweep struct {
	Rows    []m.QueryParameterRow
	Options m.QueryOptions
	Compare m.CompareMode
	// BufferCheckMB, when positive and different from Options.BufferSizeMB,
	// adds a row that runs the first parameter row with both buffer sizes and
	// requires the two outputs to agree.
	BufferCheckMB float64
}

func (s QuerySweep) checksBuffer() bool {
	return len(s.Rows) > 0 && s.BufferCheckMB > 0 && s.BufferCheckMB != s.Options.BufferSizeMB
}

// bufferCheckMode is exact when the output order is fully determined.
func (s QuerySweep) bufferCheckMode() m.CompareMode {
	if s.Options.SortHits && s.Options.SortOutputLines {
		return m.CompareExact
	}

	return s.compareMode()
}

// DefaultQuerySweep sorts hits and output lines and uses a tiny buffer so
// that records are split over many flushes.
func DefaultQuerySweep() QuerySweep {
	return QuerySweep{
		Rows: DefaultQueryTable(),
		Options: m.QueryOptions{
			SortHits:        true,
			SortOutputLines: true,
			BufferSizeMB:    0.00001,
		},
		Compare:       m.CompareSorted,
		BufferCheckMB: DefaultBufferCheckMB,
	}
}

// compareMode weakens Compare to what the output options can guarantee.
// Without sorted output lines only keyed matching works, and sorted hits are
// still checked per line. Without sorted hits the integers of a line come in
// arbitrary order.
func (s QuerySweep) compareMode() m.CompareMode {
	mode := s.Compare
	if mode == "" {
		mode = m.CompareMultiset
	}

	if !s.Options.SortOutputLines {
		if s.Options.SortHits {
			return m.CompareSortedHits
		}

		return m.CompareUnorderedLines
	}

	if !s.Options.SortHits && (mode == m.CompareSorted || mode == m.CompareExact) {
		return m.CompareMultiset
	}

	return mode
}

// DefaultQueryTable crosses two thresholds with both unknown k-mer policies
// and both strands, plus the 0.9 include-unknown reverse-complement row.
func DefaultQueryTable() []m.QueryParameterRow {
	rows := []m.QueryParameterRow{{Threshold: 0.9, IgnoreUnknown: false, ReverseComplement: true}}

	for _, threshold := range []float64{0.5, 1} {
		for _, ignore := range []bool{true, false} {
			for _, rc := range []bool{true, false} {
				rows = append(rows, m.QueryParameterRow{Threshold: threshold, IgnoreUnknown: ignore, ReverseComplement: rc})
			}
		}
	}

	return rows
}

// LoadQueryTable reads a parameter table file.
func LoadQueryTable(path m.Path) ([]m.QueryParameterRow, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open query table %s: %w", path, err)
	}

	defer func() { _ = f.Close() }()

	rows, err := ParseQueryTable(f)
	if err != nil {
		return nil, fmt.Errorf("query table %s: %w", path, err)
	}

	return rows, nil
}

// ParseQueryTable parses "threshold,ignore,revcomp" rows with yes/no flags.
// The first record must be the header.
func ParseQueryTable(r io.Reader) ([]m.QueryParameterRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(queryTableHeader)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty parameter table")
	}

	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	for i, name := range queryTableHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), name) {
			return nil, fmt.Errorf("column %d is %q, expected %q", i+1, header[i], name)
		}
	}

	var rows []m.QueryParameterRow

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		row, err := parseQueryRecord(record)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, errors.New("parameter table has no rows")
	}

	return rows, nil
}

func parseQueryRecord(record []string) (m.QueryParameterRow, error) {
	threshold, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
	if err != nil {
		return m.QueryParameterRow{}, fmt.Errorf("threshold: %w", err)
	}

	if threshold < 0 || threshold > 1 {
		return m.QueryParameterRow{}, fmt.Errorf("threshold %v outside [0, 1]", threshold)
	}

	ignore, err := m.ParseYesNo(record[1])
	if err != nil {
		return m.QueryParameterRow{}, fmt.Errorf("ignore: %w", err)
	}

	rc, err := m.ParseYesNo(record[2])
	if err != nil {
		return m.QueryParameterRow{}, fmt.Errorf("revcomp: %w", err)
	}

	return m.QueryParameterRow{Threshold: threshold, IgnoreUnknown: ignore, ReverseComplement: rc}, nil
}
