// SPDX-License-Identifier: MIT

// Package matrix - CSV ingestion and export.
//
// Format:
//   - One matrix row per line, values separated by commas.
//   - Whitespace around values is ignored; whitespace-only lines are skipped.
//   - '#' starts a comment running to the end of the line, wherever it appears.
//   - Every value parses as a float64 (strconv.ParseFloat), rows must have
//     equal length.
//
// Errors from this file always match ErrInvalidInput, so callers can tell
// "bad file" from "bad algorithm input" with the same check they use for
// ValidateWeightedGraph.

package matrix

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	csvComma   = ','
	csvComment = '#'

	// csvMaxLine bounds a single input line; wide matrices exceed bufio's 64 KiB default.
	csvMaxLine = 64 << 20
)

// ReadCSV parses a comma-separated matrix from r into a new *Dense.
//
// Implementation:
//   - Stage 1: scan lines, cut each at its first '#', drop the ones left blank.
//   - Stage 2: read the kept lines with encoding/csv (variable field count).
//   - Stage 3: parse each trimmed cell with strconv.ParseFloat.
//   - Stage 4: copy into Dense via NewDenseFrom (rectangular check, NaN/Inf policy).
//
// Errors:
//   - ErrParse with 1-based line/column context for non-numeric cells.
//     Line numbers refer to the original input, comments included.
//   - ErrBadShape for empty input or ragged rows.
//   - ErrNaNInf for "NaN"/"Inf" cells under the default numeric policy.
//
// Squareness and symmetry are not checked; use ValidateWeightedGraph.
func ReadCSV(r io.Reader, opts ...Option) (*Dense, error) {
	body, lines, err := stripCSVComments(r)
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w: %w", ErrInvalidInput, err)
	}

	cr := csv.NewReader(strings.NewReader(body))
	cr.Comma = csvComma
	cr.FieldsPerRecord = -1 // ragged rows are reported below with ErrBadShape
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var rows [][]float64
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: %w: %w: %w", ErrInvalidInput, ErrParse, err)
		}
		line, _ := cr.FieldPos(0)
		if line >= 1 && line <= len(lines) {
			line = lines[line-1]
		}
		row := make([]float64, len(record))
		for j, cell := range record {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				return nil, fmt.Errorf("ReadCSV: line %d, column %d: %q: %w: %w",
					line, j+1, cell, ErrInvalidInput, ErrParse)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	m, err := NewDenseFrom(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w: %w", ErrInvalidInput, err)
	}

	return m, nil
}

// stripCSVComments drops '#' comments (whole-line, indented or trailing) and
// whitespace-only lines. It returns the kept text and, for each kept line,
// its 1-based line number in r.
func stripCSVComments(r io.Reader) (string, []int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), csvMaxLine)

	var b strings.Builder
	var lines []int
	var text string
	for n := 1; sc.Scan(); n++ {
		text = sc.Text()
		if k := strings.IndexByte(text, csvComment); k >= 0 {
			text = text[:k]
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		b.WriteString(text)
		b.WriteByte('\n')
		lines = append(lines, n)
	}
	if err := sc.Err(); err != nil {
		return "", nil, err
	}

	return b.String(), lines, nil
}

// LoadCSV opens path and parses it with ReadCSV.
// A missing or unreadable file matches both ErrInvalidInput and the os error
// (errors.Is(err, fs.ErrNotExist) keeps working).
func LoadCSV(path string, opts ...Option) (*Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadCSV: %w: %w", ErrInvalidInput, err)
	}
	defer f.Close()

	m, err := ReadCSV(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("LoadCSV %s: %w", path, err)
	}

	return m, nil
}

// WriteCSV writes m in the format ReadCSV accepts, shortest 'g' formatting.
// Round-trips exactly for finite values.
func WriteCSV(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("WriteCSV", err)
	}
	cw := csv.NewWriter(w)
	cw.Comma = csvComma

	record := make([]string, m.Cols())
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("WriteCSV: row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
