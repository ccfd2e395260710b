// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survey

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/tools/txtar"
)

var approx = cmp.Options{cmpopts.EquateApprox(0, 1e-9), cmpopts.EquateNaNs()}

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	ar, err := txtar.ParseFile("testdata/results.txtar")
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range ar.Files {
		if f.Name == name {
			return f.Data
		}
	}
	t.Fatalf("no fixture %s", name)
	return nil
}

func readFixture(t *testing.T, name string) *table.Table {
	t.Helper()
	tab, err := Read(bytes.NewReader(fixture(t, name)))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return tab
}

func TestRead(t *testing.T) {
	tab := readFixture(t, "basic.csv")
	if tab.Len() != 7 {
		t.Fatalf("want 7 rows, got %d", tab.Len())
	}
	if _, ok := tab.MustColumn(DietGroup).([]string); !ok {
		t.Errorf("%s should be []string; got %T", DietGroup, tab.MustColumn(DietGroup))
	}
	for _, col := range NumericCols() {
		if _, ok := tab.MustColumn(col).([]float64); !ok {
			t.Errorf("%s should be []float64; got %T", col, tab.MustColumn(col))
		}
	}
	// Columns the aggregation doesn't use are kept as-is.
	if got := tab.MustColumn("age_group").([]string)[1]; got != "30-39" {
		t.Errorf("age_group[1]: want 30-39, got %q", got)
	}
}

func TestReadMissingValues(t *testing.T) {
	tab := readFixture(t, "missing.csv")
	ghgs := tab.MustColumn("mean_ghgs").([]float64)
	want := []float64{2, math.NaN(), math.NaN()}
	if diff := cmp.Diff(want, ghgs, approx); diff != "" {
		t.Errorf("mean_ghgs (-want +got):\n%s", diff)
	}
}

func TestReadErrors(t *testing.T) {
	for _, test := range []struct {
		name   string
		input  string
		column string
		substr string
	}{
		{name: "no_acid.csv", column: "mean_acid"},
		{name: "empty", input: "", substr: "missing header"},
		{name: "bad_number.csv", substr: `line 3: column "mean_land"`},
		{name: "no sex", input: "diet_group,mean_ghgs\nvegan,1\n", column: "sex"},
	} {
		input := test.input
		if strings.HasSuffix(test.name, ".csv") {
			input = string(fixture(t, test.name))
		}
		_, err := Read(strings.NewReader(input))
		if err == nil {
			t.Errorf("%s: want error, got nil", test.name)
			continue
		}
		if test.column != "" {
			var se *SchemaError
			if !errors.As(err, &se) {
				t.Errorf("%s: want *SchemaError, got %T: %v", test.name, err, err)
			} else if se.Column != test.column {
				t.Errorf("%s: want error for column %q, got %q", test.name, test.column, se.Column)
			}
		}
		if test.substr != "" && !strings.Contains(err.Error(), test.substr) {
			t.Errorf("%s: want error containing %q, got %v", test.name, test.substr, err)
		}
	}
}

func TestLoadNotFound(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.csv"); err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestAggregate(t *testing.T) {
	agg, err := Aggregate(readFixture(t, "basic.csv"))
	if err != nil {
		t.Fatal(err)
	}

	wantDiets := []string{"fish", "meat", "meat", "vegan", "vegan"}
	wantSexes := []string{"male", "female", "male", "female", "male"}
	if diff := cmp.Diff(wantDiets, agg.MustColumn(DietGroup)); diff != "" {
		t.Errorf("%s (-want +got):\n%s", DietGroup, diff)
	}
	if diff := cmp.Diff(wantSexes, agg.MustColumn(Sex)); diff != "" {
		t.Errorf("%s (-want +got):\n%s", Sex, diff)
	}

	for _, test := range []struct {
		col  string
		want []float64
	}{
		{"mean_ghgs", []float64{5, 9, 11, 3, 3}},
		{"mean_land", []float64{6, 18, 21, 2, 2}},
		{"mean_ghgs_ch4", []float64{0.5, 0.9, 1.1, 0.2, 0.2}},
		{"mean_bio", []float64{0.5, 0.9, 1.2, 0.2, 0.2}},
		{"mean_watuse", []float64{350, 450, 510, 200, 200}},
		{Participants, []float64{7, 15, 10, 15, 5}},
	} {
		if diff := cmp.Diff(test.want, agg.MustColumn(test.col), approx); diff != "" {
			t.Errorf("%s (-want +got):\n%s", test.col, diff)
		}
	}
	if diff := cmp.Diff([]int{1, 1, 2, 2, 1}, agg.MustColumn(RowCount)); diff != "" {
		t.Errorf("%s (-want +got):\n%s", RowCount, diff)
	}
}

// TestAggregateMeans checks every aggregated value against a direct
// computation over the raw rows.
func TestAggregateMeans(t *testing.T) {
	raw := readFixture(t, "basic.csv")
	agg, err := Aggregate(raw)
	if err != nil {
		t.Fatal(err)
	}

	rawDiets := raw.MustColumn(DietGroup).([]string)
	rawSexes := raw.MustColumn(Sex).([]string)
	type pair struct{ diet, sex string }
	pairs := make(map[pair]bool)
	for i := range rawDiets {
		pairs[pair{rawDiets[i], rawSexes[i]}] = true
	}
	if agg.Len() != len(pairs) {
		t.Fatalf("want %d rows, one per pair, got %d", len(pairs), agg.Len())
	}

	aggDiets := agg.MustColumn(DietGroup).([]string)
	aggSexes := agg.MustColumn(Sex).([]string)
	for row := range aggDiets {
		p := pair{aggDiets[row], aggSexes[row]}
		if !pairs[p] {
			t.Errorf("row %d: pair %v not in input", row, p)
			continue
		}
		delete(pairs, p)
		for _, col := range NumericCols() {
			xs := raw.MustColumn(col).([]float64)
			sum, n := 0.0, 0
			for i := range xs {
				if rawDiets[i] == p.diet && rawSexes[i] == p.sex {
					sum += xs[i]
					n++
				}
			}
			want := sum / float64(n)
			got := agg.MustColumn(col).([]float64)[row]
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("%v %s: want %g, got %g", p, col, want, got)
			}
		}
	}
}

func TestAggregateScenario(t *testing.T) {
	raw := table.NewBuilder(nil).
		Add(DietGroup, []string{"vegan", "vegan"}).
		Add(Sex, []string{"female", "female"})
	for _, col := range NumericCols() {
		raw.Add(col, []float64{1, 1})
	}
	raw.Add("mean_ghgs", []float64{2, 4})
	raw.Add("mean_land", []float64{1, 3})

	agg, err := Aggregate(raw.Done())
	if err != nil {
		t.Fatal(err)
	}
	if agg.Len() != 1 {
		t.Fatalf("want 1 row, got %d", agg.Len())
	}
	if got := agg.MustColumn("mean_ghgs").([]float64)[0]; got != 3 {
		t.Errorf("mean_ghgs: want 3, got %g", got)
	}
	if got := agg.MustColumn("mean_land").([]float64)[0]; got != 2 {
		t.Errorf("mean_land: want 2, got %g", got)
	}
}

func TestAggregateMissingValues(t *testing.T) {
	agg, err := Aggregate(readFixture(t, "missing.csv"))
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		col  string
		want []float64
	}{
		{"mean_ghgs", []float64{2, math.NaN()}},
		{"mean_land", []float64{5, math.NaN()}},
		{"mean_acid", []float64{2, 1}},
	} {
		if diff := cmp.Diff(test.want, agg.MustColumn(test.col), approx); diff != "" {
			t.Errorf("%s (-want +got):\n%s", test.col, diff)
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	agg, err := Aggregate(readFixture(t, "header_only.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if agg.Len() != 0 {
		t.Errorf("want no rows, got %d", agg.Len())
	}
	for _, col := range RequiredCols() {
		if agg.Column(col) == nil {
			t.Errorf("missing column %s", col)
		}
	}
}

func TestAggregateSchema(t *testing.T) {
	tab := table.NewBuilder(nil).
		Add(DietGroup, []string{"vegan"}).
		Add(Sex, []string{"female"}).
		Done()
	_, err := Aggregate(tab)
	var se *SchemaError
	if !errors.As(err, &se) || se.Column != "mean_ghgs" {
		t.Errorf("want SchemaError for mean_ghgs, got %v", err)
	}
}

func TestPartition(t *testing.T) {
	agg, err := Aggregate(readFixture(t, "basic.csv"))
	if err != nil {
		t.Fatal(err)
	}
	subsets := Partition(agg, Male, Female)
	if len(subsets) != 2 || subsets[0].Name != "Male" || subsets[1].Name != "Female" {
		t.Fatalf("want [Male Female], got %v", subsets)
	}
	male, female := subsets[0].Rows, subsets[1].Rows
	if male.Len()+female.Len() != agg.Len() {
		t.Errorf("male %d + female %d rows should equal %d", male.Len(), female.Len(), agg.Len())
	}
	if diff := cmp.Diff([]string{"fish", "meat", "vegan"}, male.MustColumn(DietGroup)); diff != "" {
		t.Errorf("male diet groups (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"meat", "vegan"}, female.MustColumn(DietGroup)); diff != "" {
		t.Errorf("female diet groups (-want +got):\n%s", diff)
	}
	if Male.Rows != nil {
		t.Errorf("Partition modified Male")
	}
}

func TestPartitionOtherValues(t *testing.T) {
	agg, err := Aggregate(readFixture(t, "other_sex.csv"))
	if err != nil {
		t.Fatal(err)
	}
	subsets := Partition(agg, Male, Female)
	for _, s := range subsets {
		for _, sex := range s.Rows.MustColumn(Sex).([]string) {
			if sex != s.Sex {
				t.Errorf("%s subset contains sex %q", s.Name, sex)
			}
		}
	}
	if n := subsets[0].Rows.Len() + subsets[1].Rows.Len(); n != 3 {
		t.Errorf("want 3 rows in subsets, got %d", n)
	}
	if diff := cmp.Diff([]string{"", "other"}, Unmatched(agg, Male, Female)); diff != "" {
		t.Errorf("Unmatched (-want +got):\n%s", diff)
	}
}

func TestPartitionEmpty(t *testing.T) {
	agg, err := Aggregate(readFixture(t, "missing.csv"))
	if err != nil {
		t.Fatal(err)
	}
	subsets := Partition(agg, Female, Subset{Name: "Nobody", Sex: "nobody"})
	nobody := subsets[1].Rows
	if nobody.Len() != 0 {
		t.Errorf("want empty subset, got %d rows", nobody.Len())
	}
	if _, ok := nobody.MustColumn("mean_ghgs").([]float64); !ok {
		t.Errorf("empty subset lost column types")
	}
}
