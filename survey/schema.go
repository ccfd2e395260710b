// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package survey loads and summarizes diet survey results.
//
// The input is a CSV file with one row per group of survey
// participants. Each row gives the participants' diet group, their
// sex, and the mean of several environmental-impact measures of their
// diets, such as greenhouse gas emissions and land use. Package
// survey reads this file into a go-gg table and aggregates it by diet
// group and sex.
package survey

import "fmt"

// Names of the categorical columns.
const (
	DietGroup = "diet_group"
	Sex       = "sex"
)

// Participants is the column giving the number of participants
// summarized by a row.
const Participants = "n_participants"

// RowCount is the column added by Aggregate giving the number of input
// rows that contributed to each output row.
const RowCount = "n_rows"

// Metric is a numeric environmental-impact column.
type Metric struct {
	// Key is the column name in the input.
	Key string

	// Label is a human-readable name for the metric, including
	// its unit.
	Label string
}

// Metrics lists the environmental-impact columns in axis order.
var Metrics = []Metric{
	{"mean_ghgs", "GHG Emissions (kg CO₂e/day)"},
	{"mean_land", "Land Use (m²/day)"},
	{"mean_watscar", "Water Scarcity (liters/kg)"},
	{"mean_eut", "Eutrophication (g PO₄³⁻ eq/day)"},
	{"mean_ghgs_ch4", "Methane Emissions (kg CH₄/day)"},
	{"mean_ghgs_n2o", "Nitrous Oxide Emissions (kg N₂O/day)"},
	{"mean_bio", "Biodiversity Impact (loss units)"},
	{"mean_watuse", "Water Use (liters/day)"},
	{"mean_acid", "Acidification (g SO₂ eq/day)"},
}

// GHG is the key of the metric used to color the chart.
const GHG = "mean_ghgs"

// GroupCols are the columns Aggregate groups by, in order.
var GroupCols = []string{DietGroup, Sex}

// NumericCols returns the metric keys followed by Participants. These
// are the columns Aggregate averages.
func NumericCols() []string {
	cols := make([]string, 0, len(Metrics)+1)
	for _, m := range Metrics {
		cols = append(cols, m.Key)
	}
	return append(cols, Participants)
}

// RequiredCols returns every column an input file must have.
func RequiredCols() []string {
	return append(append([]string{}, GroupCols...), NumericCols()...)
}

// Label returns the display label of metric key, or key itself if it
// is not a known metric.
func Label(key string) string {
	for _, m := range Metrics {
		if m.Key == key {
			return m.Label
		}
	}
	return key
}

// A SchemaError reports an input table that lacks a required column
// or has a column of the wrong type.
type SchemaError struct {
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("column %q: %s", e.Column, e.Reason)
}
