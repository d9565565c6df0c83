package statview_test

import (
	"fmt"

	"github.com/hupe1980/statview"
	"github.com/hupe1980/statview/schema"
	"github.com/hupe1980/statview/stats"
)

func Example() {
	data := &stats.DatasetFeatureStatistics{
		NumExamples: 10,
		Features: []stats.FeatureNameStatistics{
			{
				PathSteps:   []string{"s"},
				Type:        stats.TypeStruct,
				StructStats: &stats.StructStatistics{CommonStats: &stats.CommonStatistics{NumNonMissing: 10}},
			},
			{
				PathSteps: []string{"s", "x"},
				Type:      stats.TypeInt,
				NumStats: &stats.NumericStatistics{
					CommonStats: &stats.CommonStatistics{NumNonMissing: 8},
				},
			},
		},
	}

	view, err := statview.NewDatasetView(data, false)
	if err != nil {
		panic(err)
	}

	f, _ := view.ByPath(schema.NewPath("s", "x"))
	parent, _ := f.Parent()
	fraction, _ := f.FractionPresent()

	fmt.Println(parent.Path(), f.Name(), fraction)
	// Output: s x 0.8
}

func Example_baselines() {
	previousData := &stats.DatasetFeatureStatistics{
		NumExamples: 8,
		Features: []stats.FeatureNameStatistics{
			{
				Name:     "a",
				Type:     stats.TypeInt,
				NumStats: &stats.NumericStatistics{CommonStats: &stats.CommonStatistics{NumNonMissing: 8}},
			},
		},
	}
	data := &stats.DatasetFeatureStatistics{
		NumExamples: 10,
		Features: []stats.FeatureNameStatistics{
			{
				Name:     "a",
				Type:     stats.TypeInt,
				NumStats: &stats.NumericStatistics{CommonStats: &stats.CommonStatistics{NumNonMissing: 10}},
			},
			{
				Name:     "b",
				Type:     stats.TypeInt,
				NumStats: &stats.NumericStatistics{CommonStats: &stats.CommonStatistics{NumNonMissing: 10}},
			},
		},
	}

	previousView, _ := statview.NewDatasetView(previousData, false)
	view, _ := statview.NewDatasetView(data, false, statview.WithPrevious(previousView))

	a, _ := view.ByPath(schema.NewPath("a"))
	if before, ok := a.Previous(); ok {
		fmt.Println("a before:", before.NumPresent())
	}

	b, _ := view.ByPath(schema.NewPath("b"))
	if _, ok := b.Previous(); !ok {
		fmt.Println("b is new")
	}

	// Output:
	// a before: 8
	// b is new
}
