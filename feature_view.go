package statview

import (
	"sort"

	"github.com/hupe1980/statview/schema"
	"github.com/hupe1980/statview/stats"
)

// FeatureView is a view into one feature's statistics. It is a pair of
// (owning DatasetView, position) and should be treated as such: cheap to
// copy, produced only by DatasetView, never constructed directly.
//
// Every accessor reads through the owning view and resolves weighted vs
// unweighted fields according to the owning view's ByWeight mode. No
// accessor mutates state, blocks, or fails on absent statistics.
type FeatureView struct {
	view     DatasetView
	position int
}

// View returns the owning DatasetView.
func (v FeatureView) View() DatasetView { return v.view }

func (v FeatureView) data() *stats.FeatureNameStatistics {
	return v.view.record(v.position)
}

func (v FeatureView) commonStats() *stats.CommonStatistics {
	return v.data().CommonStats()
}

// Name returns the feature's name: the last path step.
func (v FeatureView) Name() string { return v.Path().Last() }

// Path returns the feature's path.
func (v FeatureView) Path() schema.Path {
	return v.view.PathOf(v)
}

// Type returns the declared type of the underlying record.
func (v FeatureView) Type() stats.Type { return v.data().Type }

// FeatureType returns the physical type materialized in examples. BYTES
// and STRING collapse to FeatureTypeBytes; both are physically byte
// strings.
func (v FeatureView) FeatureType() schema.FeatureType {
	switch v.data().Type {
	case stats.TypeBytes, stats.TypeString:
		return schema.FeatureTypeBytes
	case stats.TypeInt:
		return schema.FeatureTypeInt
	case stats.TypeFloat:
		return schema.FeatureTypeFloat
	case stats.TypeStruct:
		return schema.FeatureTypeStruct
	default:
		return schema.FeatureTypeUnknown
	}
}

// IsStruct reports whether this feature is a container for nested
// features.
func (v FeatureView) IsStruct() bool { return v.data().Type == stats.TypeStruct }

// NumPresent returns the (weighted) number of examples in which this
// feature is present.
func (v FeatureView) NumPresent() float64 {
	c := v.commonStats()
	if c == nil {
		return 0
	}
	if v.view.ByWeight() {
		if c.WeightedCommonStats == nil {
			return 0
		}
		return c.WeightedCommonStats.NumNonMissing
	}
	return float64(c.NumNonMissing)
}

// MinNumValues returns the minimum number of values per example. The
// count can never meaningfully be negative: instead of propagating such
// an error we treat it as zero.
func (v FeatureView) MinNumValues() int64 {
	c := v.commonStats()
	if c == nil || c.MinNumValues < 0 {
		return 0
	}
	return c.MinNumValues
}

// MaxNumValues returns the maximum number of values per example.
func (v FeatureView) MaxNumValues() int64 {
	c := v.commonStats()
	if c == nil {
		return 0
	}
	return c.MaxNumValues
}

// NumExamples returns the (weighted) total example count, present or
// absent. The total is a dataset-level quantity; this delegates to the
// owning view.
func (v FeatureView) NumExamples() float64 {
	return v.view.NumExamples()
}

// NumMissing returns the (weighted) number of examples in which this
// feature is absent.
func (v FeatureView) NumMissing() float64 {
	return v.NumExamples() - v.NumPresent()
}

// FractionPresent returns NumPresent/NumExamples, or false when the
// example count is zero.
func (v FeatureView) FractionPresent() (float64, bool) {
	numExamples := v.NumExamples()
	if numExamples == 0 {
		return 0, false
	}
	return v.NumPresent() / numExamples, true
}

// TotalValueCountInExamples returns the total (weighted) number of
// values of this feature across all examples. When the producer left the
// unweighted total unset, it is reconstructed from the average value
// count and the presence count.
func (v FeatureView) TotalValueCountInExamples() float64 {
	c := v.commonStats()
	if c == nil {
		return 0
	}
	if v.view.ByWeight() {
		if c.WeightedCommonStats == nil {
			return 0
		}
		return c.WeightedCommonStats.TotNumValues
	}
	if c.TotNumValues == 0 {
		return c.AvgNumValues * float64(c.NumNonMissing)
	}
	return float64(c.TotNumValues)
}

// StringValuesWithCounts returns the distinct string values with their
// (weighted) occurrence counts, or an empty map when the record carries
// no string statistics.
func (v FeatureView) StringValuesWithCounts() map[string]float64 {
	result := make(map[string]float64)
	ss := v.data().StringStats
	if ss == nil {
		return result
	}
	var histogram *stats.RankHistogram
	if v.view.ByWeight() {
		if ss.WeightedStringStats != nil {
			histogram = ss.WeightedStringStats.RankHistogram
		}
	} else {
		histogram = ss.RankHistogram
	}
	if histogram == nil {
		return result
	}
	for _, bucket := range histogram.Buckets {
		result[bucket.Label] = bucket.SampleCount
	}
	return result
}

// StringValues returns the distinct string values in sorted order, empty
// when the record carries no string statistics.
func (v FeatureView) StringValues() []string {
	counts := v.StringValuesWithCounts()
	values := make([]string, 0, len(counts))
	for value := range counts {
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}

// HasInvalidUTF8Strings reports whether this is a string feature whose
// statistics contain the producer's invalid-UTF-8 sentinel value.
func (v FeatureView) HasInvalidUTF8Strings() bool {
	if v.data().Type != stats.TypeString {
		return false
	}
	_, ok := v.StringValuesWithCounts()[stats.InvalidUTF8Label]
	return ok
}

// NumStats returns the numeric statistics, or a zero value when the
// feature has none. Numeric statistics are optional per feature type;
// absence is not an error.
func (v FeatureView) NumStats() stats.NumericStatistics {
	if ns := v.data().NumStats; ns != nil {
		return *ns
	}
	return stats.NumericStatistics{}
}

// WeightedStatisticsExist reports whether this feature carries weighted
// statistics with parity to its unweighted ones. Independent of
// ByWeight.
func (v FeatureView) WeightedStatisticsExist() bool {
	c := v.commonStats()
	return c != nil && c.WeightedCommonStats != nil
}

// CustomStats returns a copy of the record's custom statistics, in
// producer order.
func (v FeatureView) CustomStats() []stats.CustomStatistic {
	cs := v.data().CustomStats
	out := make([]stats.CustomStatistic, len(cs))
	copy(out, cs)
	return out
}

// Parent returns the parent feature, or false for roots.
func (v FeatureView) Parent() (FeatureView, bool) {
	return v.view.Parent(v)
}

// Children returns the features whose resolved parent is this one, in
// input order.
func (v FeatureView) Children() []FeatureView {
	return v.view.Children(v)
}

// Previous looks up this feature's path in the owning view's previous
// baseline; false when there is no baseline or the baseline has no
// feature at this path.
func (v FeatureView) Previous() (FeatureView, bool) {
	previous, ok := v.view.Previous()
	if !ok {
		return FeatureView{}, false
	}
	return previous.ByPath(v.Path())
}

// Serving looks up this feature's path in the owning view's serving
// baseline; false when there is no baseline or the baseline has no
// feature at this path.
func (v FeatureView) Serving() (FeatureView, bool) {
	serving, ok := v.view.Serving()
	if !ok {
		return FeatureView{}, false
	}
	return serving.ByPath(v.Path())
}

// Environment returns the owning view's environment label.
func (v FeatureView) Environment() (string, bool) {
	return v.view.Environment()
}
