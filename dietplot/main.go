// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dietplot charts the environmental impacts of diets.
//
// dietplot reads a survey of per-participant impact estimates (by
// default, Results_21Mar2022.csv next to the dietplot binary), averages
// each impact metric per diet group and sex, and draws the averages as
// an interactive parallel-coordinates chart with one trace per sex.
// Buttons above the chart switch between the male and female traces.
//
// By default the chart is opened in a web browser and dietplot runs
// until Enter is pressed or it is interrupted. With -o, it writes the
// chart to a standalone HTML file instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aclements/go-gg/table"
	"github.com/dietimpact/dietplot/internal/viewer"
	"github.com/dietimpact/dietplot/parcoords"
	"github.com/dietimpact/dietplot/survey"
)

func main() {
	log.SetPrefix("dietplot: ")
	log.SetFlags(0)

	defaultData, err := survey.DefaultPath()
	if err != nil {
		defaultData = survey.DefaultFile
	}
	var (
		flagData    = flag.String("data", defaultData, "read survey results from `file`")
		flagOut     = flag.String("o", "", "write the chart as HTML to `file` instead of showing it")
		flagSVG     = flag.String("svg", "", "also write a static chart as SVG to `file`")
		flagTable   = flag.Bool("table", false, "print the aggregated table instead of a chart")
		flagConfig  = flag.String("config", "", "read title and label overrides from YAML `file`")
		flagBrowser = flag.String("browser", "", "open the chart with `command` (default: $BROWSER or the system opener)")
		flagAddr    = flag.String("addr", "127.0.0.1:0", "serve the chart on `address`")
		flagWatch   = flag.Bool("watch", false, "reload the chart when the data file changes")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	opts, err := loadConfig(*flagConfig)
	if err != nil {
		log.Fatal(err)
	}

	agg, err := aggregate(*flagData)
	if err != nil {
		log.Fatal(err)
	}

	// Output table.
	if *flagTable {
		table.Fprint(os.Stdout, agg)
		return
	}

	subsets := partition(agg, log.Printf)
	fig, err := chart(subsets, opts)
	if err != nil {
		log.Fatal(err)
	}

	if *flagSVG != "" {
		if err := writeFile(*flagSVG, func(w io.Writer) error {
			return writeStatic(w, subsets, opts.Title)
		}); err != nil {
			log.Fatal(err)
		}
	}

	if *flagOut != "" {
		if err := writeFile(*flagOut, func(w io.Writer) error {
			return parcoords.WriteHTML(w, fig, parcoords.HTMLOptions{})
		}); err != nil {
			log.Fatal(err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	vopts := viewer.Options{Addr: *flagAddr, Browser: *flagBrowser}
	if *flagWatch {
		vopts.Watch = []string{*flagData}
	}
	first := true
	page := func(w io.Writer, reload string) error {
		if !first {
			// The data file changed; start over from it.
			agg, err := aggregate(*flagData)
			if err != nil {
				return err
			}
			if fig, err = chart(partition(agg, log.Printf), opts); err != nil {
				return err
			}
		}
		first = false
		return parcoords.WriteHTML(w, fig, parcoords.HTMLOptions{Reload: reload})
	}
	if err := viewer.Show(ctx, page, vopts); err != nil {
		log.Fatal(err)
	}
}

// aggregate loads the survey in path and averages it per diet group
// and sex.
func aggregate(path string) (*table.Table, error) {
	t, err := survey.Load(path)
	if err != nil {
		return nil, err
	}
	return survey.Aggregate(t)
}

// partition splits agg into the male and female subsets and reports
// any rows that belong to neither.
func partition(agg *table.Table, logf func(string, ...interface{})) []survey.Subset {
	if other := survey.Unmatched(agg, survey.Male, survey.Female); len(other) > 0 {
		logf("ignoring rows with %s %q", survey.Sex, other)
	}
	return survey.Partition(agg, survey.Male, survey.Female)
}

// chart builds the combined figure for subsets, showing the first
// subset initially.
func chart(subsets []survey.Subset, opts parcoords.Options) (*parcoords.Figure, error) {
	var traces []*parcoords.Trace
	for _, s := range subsets {
		tr, err := parcoords.Build(s, opts)
		if err != nil {
			return nil, err
		}
		traces = append(traces, tr)
	}
	if len(traces) == 0 {
		return nil, fmt.Errorf("nothing to chart")
	}
	return parcoords.Combine(traces, traces[0].Name, opts)
}

// writeFile creates path and writes it with write.
func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
