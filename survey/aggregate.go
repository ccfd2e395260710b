// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survey

import (
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// Aggregate summarizes t by diet group and sex. The result has one row
// for each distinct (diet group, sex) pair in t, in lexical order of
// the pair. Each numeric column of the result is the mean of that
// column over the rows of t with the same pair; NaN values are
// skipped, and a pair with no values for a column gets NaN. The
// Participants column is averaged like the metrics, so it is not a
// total. The result also has a RowCount column.
func Aggregate(t *table.Table) (*table.Table, error) {
	for _, col := range GroupCols {
		switch t.Column(col).(type) {
		case nil:
			return nil, &SchemaError{col, "missing"}
		case []string:
		default:
			return nil, &SchemaError{col, "not a string column"}
		}
	}
	numeric := NumericCols()
	for _, col := range numeric {
		if t.Column(col) == nil {
			return nil, &SchemaError{col, "missing"}
		}
	}

	diets, sexes := []string{}, []string{}
	counts := []int{}
	means := make([][]float64, len(numeric))

	// GroupBy keeps groups in order of first appearance, so sort
	// first to get the groups in key order.
	// An empty table is still a single (empty) group, so skip it.
	var groups []*table.Table
	if t.Len() > 0 {
		g := table.GroupBy(table.SortBy(t, GroupCols...), GroupCols...)
		for _, gid := range g.Tables() {
			groups = append(groups, g.Table(gid))
		}
	}
	for _, sub := range groups {
		diets = append(diets, sub.MustColumn(DietGroup).([]string)[0])
		sexes = append(sexes, sub.MustColumn(Sex).([]string)[0])
		counts = append(counts, sub.Len())

		for i, col := range numeric {
			var xs []float64
			slice.Convert(&xs, sub.MustColumn(col))
			means[i] = append(means[i], mean(xs))
		}
	}

	b := table.NewBuilder(nil).Add(DietGroup, diets).Add(Sex, sexes)
	for i, col := range numeric {
		if means[i] == nil {
			means[i] = []float64{}
		}
		b.Add(col, means[i])
	}
	return b.Add(RowCount, counts).Done(), nil
}

// mean returns the mean of the non-NaN values in xs.
func mean(xs []float64) float64 {
	present := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			present = append(present, x)
		}
	}
	return stats.Mean(present)
}
