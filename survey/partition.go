// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survey

import (
	"sort"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// A Subset is the part of an aggregated table for one value of the
// Sex column.
type Subset struct {
	// Name is the display name of the subset, such as "Male".
	Name string

	// Sex is the value of the Sex column selected by this subset.
	Sex string

	// Rows holds the selected rows. It is nil until the subset is
	// filled in by Partition.
	Rows *table.Table
}

// The recognized subsets.
var (
	Male   = Subset{Name: "Male", Sex: "male"}
	Female = Subset{Name: "Female", Sex: "female"}
)

// Partition returns a copy of each of subsets with Rows set to the
// rows of t whose Sex column is exactly subset.Sex. Rows that match no
// subset are not in the result. Every returned table has all of t's
// columns, even if it has no rows.
func Partition(t *table.Table, subsets ...Subset) []Subset {
	sexes := t.MustColumn(Sex).([]string)
	out := make([]Subset, len(subsets))
	for i, s := range subsets {
		idx := []int{}
		for row, sex := range sexes {
			if sex == s.Sex {
				idx = append(idx, row)
			}
		}
		b := table.NewBuilder(nil)
		for _, col := range t.Columns() {
			b.Add(col, slice.Select(t.MustColumn(col), idx))
		}
		s.Rows = b.Done()
		out[i] = s
	}
	return out
}

// Unmatched returns the sorted distinct values of t's Sex column that
// do not select any of subsets.
func Unmatched(t *table.Table, subsets ...Subset) []string {
	known := make(map[string]bool)
	for _, s := range subsets {
		known[s.Sex] = true
	}
	seen := make(map[string]bool)
	var out []string
	for _, sex := range t.MustColumn(Sex).([]string) {
		if !known[sex] && !seen[sex] {
			seen[sex] = true
			out = append(out, sex)
		}
	}
	sort.Strings(out)
	return out
}
