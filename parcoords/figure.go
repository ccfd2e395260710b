// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parcoords builds interactive parallel-coordinates charts of
// aggregated survey results.
//
// A chart is a Figure in the JSON form understood by plotly.js: a list
// of traces and a layout. Each trace draws one subset of the data, and
// a row of buttons in the layout switches which trace is visible.
package parcoords

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// A Figure is a chart made of one or more parcoords traces.
type Figure struct {
	Data   []*Trace `json:"data"`
	Layout Layout   `json:"layout"`
}

// A Trace is a single parallel-coordinates series.
type Trace struct {
	Type       string      `json:"type"`
	Name       string      `json:"name"`
	Visible    bool        `json:"visible"`
	Dimensions []Dimension `json:"dimensions"`
	Line       Line        `json:"line"`

	// legend lists the diet groups from the bottom of the diet
	// group axis to the top, as they appear in the title.
	legend []string
}

// A Dimension is one vertical axis of a trace.
type Dimension struct {
	Label    string    `json:"label"`
	Values   Floats    `json:"values"`
	TickVals Floats    `json:"tickvals,omitempty"`
	TickText []string  `json:"ticktext,omitempty"`
	Range    []float64 `json:"range,omitempty"`
	Visible  bool      `json:"visible"`
}

// Line styles the polylines of a trace.
type Line struct {
	Color      Floats     `json:"color"`
	ColorScale ColorScale `json:"colorscale"`
	ShowScale  bool       `json:"showscale"`
	ColorBar   *ColorBar  `json:"colorbar,omitempty"`
}

type ColorBar struct {
	Title Title `json:"title"`
}

type Title struct {
	Text string `json:"text"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

type Layout struct {
	Title       Title        `json:"title"`
	PlotBGColor string       `json:"plot_bgcolor"`
	Margin      Margin       `json:"margin"`
	UpdateMenus []UpdateMenu `json:"updatemenus,omitempty"`
}

// An UpdateMenu is a group of buttons placed on the chart.
type UpdateMenu struct {
	Type       string   `json:"type"`
	Direction  string   `json:"direction"`
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	ShowActive bool     `json:"showactive"`
	Buttons    []Button `json:"buttons"`
}

// A Button applies Update to the figure when clicked.
type Button struct {
	Label  string
	Method string
	Update Update
}

// An Update is the change a Button makes: it sets the visibility of
// every trace and replaces the title.
type Update struct {
	Visible []bool
	Title   string
}

// MarshalJSON encodes b as a plotly "update" button, whose args are a
// trace restyle object followed by a layout relayout object.
func (b Button) MarshalJSON() ([]byte, error) {
	type traceUpdate struct {
		Visible []bool `json:"visible"`
	}
	type layoutUpdate struct {
		Title Title `json:"title"`
	}
	return json.Marshal(struct {
		Label  string        `json:"label"`
		Method string        `json:"method"`
		Args   []interface{} `json:"args"`
	}{
		b.Label,
		b.Method,
		[]interface{}{traceUpdate{b.Update.Visible}, layoutUpdate{Title{b.Update.Title}}},
	})
}

// Visible returns the visibility of each trace in f.
func (f *Figure) Visible() []bool {
	vis := make([]bool, len(f.Data))
	for i, t := range f.Data {
		vis[i] = t.Visible
	}
	return vis
}

// Press applies the update of the button labeled label, as if it had
// been clicked in the browser.
func (f *Figure) Press(label string) error {
	for _, menu := range f.Layout.UpdateMenus {
		for _, b := range menu.Buttons {
			if b.Label != label {
				continue
			}
			if len(b.Update.Visible) != len(f.Data) {
				return fmt.Errorf("button %q sets %d traces; figure has %d", label, len(b.Update.Visible), len(f.Data))
			}
			for i, v := range b.Update.Visible {
				f.Data[i].Visible = v
			}
			f.Layout.Title.Text = b.Update.Title
			return nil
		}
	}
	return fmt.Errorf("no button %q", label)
}

// Floats is a sequence of numbers that encodes NaN as JSON null.
type Floats []float64

func (xs Floats) MarshalJSON() ([]byte, error) {
	if xs == nil {
		return []byte("[]"), nil
	}
	buf := make([]byte, 0, 8*len(xs)+2)
	buf = append(buf, '[')
	for i, x := range xs {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			buf = append(buf, "null"...)
		} else {
			buf = strconv.AppendFloat(buf, x, 'g', -1, 64)
		}
	}
	return append(buf, ']'), nil
}
