// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/dietimpact/dietplot/parcoords"
	"github.com/dietimpact/dietplot/survey"
	"gopkg.in/yaml.v3"
)

// config is the format of the -config file. For example:
//
//	title: Impacts by diet
//	labels:
//	  mean_ghgs: GHG (kg CO2e)
//	diet_names:
//	  meat100: Heavy meat
//
// Fields that are not set keep their defaults.
type config struct {
	Title     string            `yaml:"title"`
	Labels    map[string]string `yaml:"labels"`
	DietNames map[string]string `yaml:"diet_names"`
}

// loadConfig returns the chart options with the overrides in path
// applied. If path is "", it returns the defaults.
func loadConfig(path string) (parcoords.Options, error) {
	opts := parcoords.DefaultOptions()
	if path == "" {
		return opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	var c config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return opts, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.apply(&opts); err != nil {
		return opts, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

func (c *config) apply(opts *parcoords.Options) error {
	if c.Title != "" {
		opts.Title = c.Title
	}
	known := make(map[string]bool)
	for _, m := range survey.Metrics {
		known[m.Key] = true
	}
	for key, label := range c.Labels {
		if !known[key] {
			return fmt.Errorf("labels: unknown metric %q", key)
		}
		if opts.Labels == nil {
			opts.Labels = make(map[string]string)
		}
		opts.Labels[key] = label
	}
	for group, name := range c.DietNames {
		if opts.DietNames == nil {
			opts.DietNames = make(map[string]string)
		}
		opts.DietNames[group] = name
	}
	return nil
}
