// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survey

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// DefaultFile is the name of the results file looked for next to the
// dietplot binary.
const DefaultFile = "Results_21Mar2022.csv"

// DefaultPath returns the path of DefaultFile in the directory
// containing the running executable.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultFile), nil
}

// Load reads the survey results file at path. See Read.
func Load(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read reads survey results in CSV form from r. The first record must
// be a header naming the columns, and every column in RequiredCols
// must be present. Other columns are kept as strings.
//
// The group columns are []string. The numeric columns are []float64;
// empty fields and "NA" are read as NaN, which Aggregate treats as
// missing.
func Read(r io.Reader) (*table.Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header")
	}
	header := records[0]
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t := table.TableFromStrings(header, records[1:], false)
	for _, col := range RequiredCols() {
		if t.Column(col) == nil {
			return nil, &SchemaError{col, "missing"}
		}
	}

	b := table.NewBuilder(t)
	for _, col := range NumericCols() {
		xs, err := parseFloats(col, t.MustColumn(col).([]string))
		if err != nil {
			return nil, err
		}
		b.Add(col, xs)
	}
	return b.Done(), nil
}

func parseFloats(col string, vals []string) ([]float64, error) {
	xs := make([]float64, len(vals))
	for i, v := range vals {
		v = strings.TrimSpace(v)
		if v == "" || v == "NA" {
			xs[i] = math.NaN()
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			// Line 1 is the header.
			return nil, fmt.Errorf("line %d: column %q: %w", i+2, col, err)
		}
		xs[i] = x
	}
	return xs, nil
}
