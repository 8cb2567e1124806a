// SPDX-License-Identifier: MIT

package fusion

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/kfusion/kernel"
	"github.com/katalvlaran/kfusion/matrix"
)

// LoadBlockCSV reads a data block from a CSV file; see ReadBlockCSV.
func LoadBlockCSV(name, path string) (*kernel.Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fusion: open block %q: %w", name, err)
	}
	defer f.Close()

	b, err := ReadBlockCSV(name, f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}

	return b, nil
}

// ReadBlockCSV parses a samples × features table:
//
//	id,gene1,gene2
//	s1,0.5,1.2
//	s2,0.1,3.4
//
// The first header cell names the id column and is otherwise ignored; the
// remaining header cells are feature names. Every data row starts with a
// sample id followed by one number per feature. Blank lines are skipped.
//
// Errors: ErrMalformedCSV (ragged rows, non-numeric cells, no data rows), and
// any kernel.NewBlock error (duplicate names, non-finite values).
func ReadBlockCSV(name string, r io.Reader) (*kernel.Block, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: block %q: empty input", ErrMalformedCSV, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: block %q: %w", ErrMalformedCSV, name, err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: block %q: header needs an id column and at least one feature", ErrMalformedCSV, name)
	}
	features := make([]string, len(header)-1)
	for j, h := range header[1:] {
		features[j] = strings.TrimSpace(h)
	}

	var (
		samples []string
		data    []float64
		rec     []string
		v       float64
	)
	for {
		rec, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// csv.ErrFieldCount and parse errors carry the line number.
			return nil, fmt.Errorf("%w: block %q: %w", ErrMalformedCSV, name, err)
		}
		line, _ := cr.FieldPos(0)
		samples = append(samples, strings.TrimSpace(rec[0]))
		for j, cell := range rec[1:] {
			if v, err = strconv.ParseFloat(strings.TrimSpace(cell), 64); err != nil {
				return nil, fmt.Errorf("%w: block %q line %d column %q: %w", ErrMalformedCSV, name, line, features[j], err)
			}
			data = append(data, v)
		}
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: block %q: no data rows", ErrMalformedCSV, name)
	}

	X, err := matrix.NewDenseFrom(len(samples), len(features), data)
	if err != nil {
		return nil, fmt.Errorf("fusion: block %q: %w", name, err)
	}

	return kernel.NewBlock(name, X, features, samples)
}
