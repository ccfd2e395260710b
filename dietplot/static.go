// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
	"github.com/dietimpact/dietplot/survey"
)

// Column names of the long table drawn by staticPlot.
const (
	colAxis  = "axis"
	colValue = "scaled value"
)

// normalizers returns a scale for each metric that maps the range of
// that metric over all of subsets to [0, 1].
func normalizers(subsets []survey.Subset) map[string]scale.Linear {
	scales := make(map[string]scale.Linear)
	for _, m := range survey.Metrics {
		var all []float64
		for _, s := range subsets {
			var xs []float64
			slice.Convert(&xs, s.Rows.MustColumn(m.Key))
			for _, x := range xs {
				if !math.IsNaN(x) {
					all = append(all, x)
				}
			}
		}
		if len(all) == 0 {
			scales[m.Key] = scale.Linear{Min: 0, Max: 1}
			continue
		}
		lo, hi := stats.Bounds(all)
		scales[m.Key] = scale.Linear{Min: lo, Max: hi}
	}
	return scales
}

// longTable reshapes subsets into one row per (subset, diet group,
// metric), with each metric rescaled to [0, 1]. Missing values are
// dropped.
func longTable(subsets []survey.Subset) *table.Table {
	scales := normalizers(subsets)
	var sexes, diets []string
	var axes, values []float64
	for _, s := range subsets {
		groups := s.Rows.MustColumn(survey.DietGroup).([]string)
		for i, m := range survey.Metrics {
			var xs []float64
			slice.Convert(&xs, s.Rows.MustColumn(m.Key))
			sc := scales[m.Key]
			for j, x := range xs {
				if math.IsNaN(x) {
					continue
				}
				sexes = append(sexes, s.Name)
				diets = append(diets, groups[j])
				axes = append(axes, float64(i))
				values = append(values, sc.Map(x))
			}
		}
	}
	return table.NewBuilder(nil).
		Add(survey.Sex, sexes).
		Add(survey.DietGroup, diets).
		Add(colAxis, axes).
		Add(colValue, values).
		Done()
}

// staticPlot returns a plot with one panel per subset and one line per
// diet group across the rescaled metrics.
func staticPlot(subsets []survey.Subset, title string) *gg.Plot {
	plot := gg.NewPlot(longTable(subsets))
	plot.GroupBy(survey.DietGroup)
	plot.SetScale("y", gg.NewLinearScaler().SetMin(0).SetMax(1))
	plot.Add(gg.FacetX{Col: survey.Sex})
	plot.Add(gg.LayerLines{
		X:     colAxis,
		Y:     colValue,
		Color: survey.DietGroup,
	})
	plot.Add(gg.Title(title))
	return plot
}

// writeStatic writes the static rendition of subsets to w as SVG.
func writeStatic(w io.Writer, subsets []survey.Subset, title string) error {
	return staticPlot(subsets, title).WriteSVG(w, 500*len(subsets), 400)
}
