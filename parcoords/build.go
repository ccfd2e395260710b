// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parcoords

import (
	"fmt"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/dietimpact/dietplot/survey"
	"golang.org/x/image/colornames"
)

// DietAxisLabel is the label of the first axis of every trace.
const DietAxisLabel = "Diet Group"

// Options controls the text of a chart.
type Options struct {
	// Title is the chart title. The active subset and the diet
	// group legend are appended to it.
	Title string

	// Labels maps metric keys to axis labels. Metrics not in
	// Labels use survey.Label.
	Labels map[string]string

	// DietNames maps diet group values to the names used in the
	// title legend. Groups not in DietNames appear as is.
	DietNames map[string]string

	// ColorScale colors the lines by GHG emissions. If nil,
	// the Tealrose palette is used.
	ColorScale ColorScale
}

// DefaultOptions returns the options used by dietplot unless
// configured otherwise.
func DefaultOptions() Options {
	return Options{
		Title: "Environmental Impacts by Diet Group",
		DietNames: map[string]string{
			"vegan":   "Vegan",
			"veggie":  "Vegetarian",
			"fish":    "Pescatarian",
			"meat50":  "Low Meat",
			"meat":    "Medium Meat",
			"meat100": "High Meat",
		},
	}
}

func (o *Options) label(key string) string {
	if l, ok := o.Labels[key]; ok {
		return l
	}
	return survey.Label(key)
}

func (o *Options) dietName(group string) string {
	if n, ok := o.DietNames[group]; ok {
		return n
	}
	return group
}

// title returns the full chart title when trace t is shown.
func (o *Options) title(t *Trace) string {
	return fmt.Sprintf("%s (%s) | Bottom to Top: %s", o.Title, t.Name, strings.Join(t.legend, ", "))
}

// Build returns a hidden trace drawing the rows of s.
//
// The first axis places the diet groups at 0, 1, 2, ... in the order
// of s.Rows and labels them with the group names. The range of this
// axis is padded by one on each side. The remaining axes are the
// survey metrics. Lines are colored by GHG emissions.
func Build(s survey.Subset, opts Options) (*Trace, error) {
	if s.Rows == nil {
		return nil, fmt.Errorf("subset %s has no rows", s.Name)
	}
	diets, ok := s.Rows.Column(survey.DietGroup).([]string)
	if !ok {
		return nil, &survey.SchemaError{Column: survey.DietGroup, Reason: "missing or not a string column"}
	}
	for _, m := range survey.Metrics {
		if s.Rows.Column(m.Key) == nil {
			return nil, &survey.SchemaError{Column: m.Key, Reason: "missing"}
		}
	}

	n := len(diets)
	pos := make(Floats, n)
	legend := make([]string, n)
	for i, d := range diets {
		pos[i] = float64(i)
		legend[i] = opts.dietName(d)
	}

	dims := []Dimension{{
		Label:    DietAxisLabel,
		Values:   pos,
		TickVals: pos,
		TickText: append([]string(nil), diets...),
		Range:    []float64{-1, float64(n)},
		Visible:  true,
	}}
	var ghg []float64
	for _, m := range survey.Metrics {
		var xs []float64
		slice.Convert(&xs, s.Rows.MustColumn(m.Key))
		dims = append(dims, Dimension{
			Label:   opts.label(m.Key),
			Values:  xs,
			Visible: true,
		})
		if m.Key == survey.GHG {
			ghg = xs
		}
	}

	cs := opts.ColorScale
	if cs == nil {
		cs = GradientScale(Tealrose)
	}
	return &Trace{
		Type:       "parcoords",
		Name:       s.Name,
		Dimensions: dims,
		Line: Line{
			Color:      ghg,
			ColorScale: cs,
			ShowScale:  true,
			ColorBar:   &ColorBar{Title{opts.label(survey.GHG)}},
		},
		legend: legend,
	}, nil
}

// Combine returns a figure showing traces, one at a time. The trace
// named active is shown initially. The figure has one button per
// trace, labeled with the trace name, that shows only that trace and
// sets the title to name it.
//
// Trace names must be unique. Each button's visibility vector is
// derived from the position of its trace in traces, so the buttons
// are correct for any order of traces.
func Combine(traces []*Trace, active string, opts Options) (*Figure, error) {
	if len(traces) == 0 {
		return nil, fmt.Errorf("no traces")
	}
	index := make(map[string]int, len(traces))
	for i, t := range traces {
		if _, ok := index[t.Name]; ok {
			return nil, fmt.Errorf("duplicate trace %q", t.Name)
		}
		index[t.Name] = i
	}
	if _, ok := index[active]; !ok {
		return nil, fmt.Errorf("no trace %q", active)
	}

	show := func(name string) []bool {
		vis := make([]bool, len(traces))
		vis[index[name]] = true
		return vis
	}

	f := &Figure{
		Layout: Layout{
			Title:       Title{opts.title(traces[index[active]])},
			PlotBGColor: cssColor(colornames.White),
			Margin:      Margin{L: 50, R: 50, T: 100, B: 50},
		},
	}
	menu := UpdateMenu{
		Type:       "buttons",
		Direction:  "right",
		X:          0.5,
		Y:          1.2,
		ShowActive: true,
	}
	for _, t := range traces {
		nt := *t
		nt.Visible = t.Name == active
		f.Data = append(f.Data, &nt)
		menu.Buttons = append(menu.Buttons, Button{
			Label:  t.Name,
			Method: "update",
			Update: Update{Visible: show(t.Name), Title: opts.title(t)},
		})
	}
	f.Layout.UpdateMenus = []UpdateMenu{menu}
	return f, nil
}
