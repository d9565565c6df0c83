package stats

import (
	"github.com/hupe1980/statview/schema"
)

// Type is the declared type of a feature in a statistics record.
// The values match the producer's enumeration.
type Type uint8

const (
	TypeInt Type = iota
	TypeFloat
	TypeString
	TypeBytes
	TypeStruct
)

// String returns the string representation of the Type.
func (t Type) String() string {
	switch t {
	case TypeInt:
		return "INT"
	case TypeFloat:
		return "FLOAT"
	case TypeString:
		return "STRING"
	case TypeBytes:
		return "BYTES"
	case TypeStruct:
		return "STRUCT"
	default:
		return "UNKNOWN"
	}
}

// DatasetFeatureStatistics is the statistics snapshot for one dataset:
// dataset-level example counts plus one record per feature, in producer
// order. Records are immutable once produced; the view layer never
// mutates them.
type DatasetFeatureStatistics struct {
	Name                string                  `json:"name,omitempty"`
	NumExamples         float64                 `json:"num_examples,omitempty"`
	WeightedNumExamples float64                 `json:"weighted_num_examples,omitempty"`
	Features            []FeatureNameStatistics `json:"features,omitempty"`
}

// FeatureNameStatistics is the statistical summary for a single feature.
// Exactly one of the per-type branches (NumStats, StringStats,
// BytesStats, StructStats) is populated, matching Type.
type FeatureNameStatistics struct {
	// Name identifies flat features. Nested features carry PathSteps
	// instead; PathSteps wins when both are set.
	Name      string   `json:"name,omitempty"`
	PathSteps []string `json:"path,omitempty"`

	Type Type `json:"type"`

	NumStats    *NumericStatistics `json:"num_stats,omitempty"`
	StringStats *StringStatistics  `json:"string_stats,omitempty"`
	BytesStats  *BytesStatistics   `json:"bytes_stats,omitempty"`
	StructStats *StructStatistics  `json:"struct_stats,omitempty"`

	CustomStats []CustomStatistic `json:"custom_stats,omitempty"`
}

// FeaturePath returns the feature's path: the explicit path steps when
// present, otherwise a single-step path derived from Name.
func (f *FeatureNameStatistics) FeaturePath() schema.Path {
	if len(f.PathSteps) > 0 {
		return schema.NewPath(f.PathSteps...)
	}
	return schema.NewPath(f.Name)
}

// CommonStats returns the common statistics of whichever per-type branch
// is populated, or nil when the record carries none.
func (f *FeatureNameStatistics) CommonStats() *CommonStatistics {
	switch {
	case f.NumStats != nil:
		return f.NumStats.CommonStats
	case f.StringStats != nil:
		return f.StringStats.CommonStats
	case f.BytesStats != nil:
		return f.BytesStats.CommonStats
	case f.StructStats != nil:
		return f.StructStats.CommonStats
	default:
		return nil
	}
}

// CommonStatistics carries presence and value-count statistics common to
// all feature types.
type CommonStatistics struct {
	NumNonMissing int64   `json:"num_non_missing,omitempty"`
	NumMissing    int64   `json:"num_missing,omitempty"`
	MinNumValues  int64   `json:"min_num_values,omitempty"`
	MaxNumValues  int64   `json:"max_num_values,omitempty"`
	AvgNumValues  float64 `json:"avg_num_values,omitempty"`
	TotNumValues  int64   `json:"tot_num_values,omitempty"`

	// WeightedCommonStats is set iff the producer computed weighted
	// statistics for this feature.
	WeightedCommonStats *WeightedCommonStatistics `json:"weighted_common_stats,omitempty"`
}

// WeightedCommonStatistics is the weighted counterpart of
// CommonStatistics. Counts are fractional because example weights are.
type WeightedCommonStatistics struct {
	NumNonMissing float64 `json:"num_non_missing,omitempty"`
	NumMissing    float64 `json:"num_missing,omitempty"`
	AvgNumValues  float64 `json:"avg_num_values,omitempty"`
	TotNumValues  float64 `json:"tot_num_values,omitempty"`
}

// NumericStatistics summarizes a numeric feature.
type NumericStatistics struct {
	CommonStats *CommonStatistics `json:"common_stats,omitempty"`

	Mean     float64 `json:"mean,omitempty"`
	StdDev   float64 `json:"std_dev,omitempty"`
	NumZeros int64   `json:"num_zeros,omitempty"`
	Min      float64 `json:"min,omitempty"`
	Median   float64 `json:"median,omitempty"`
	Max      float64 `json:"max,omitempty"`

	Histograms []Histogram `json:"histograms,omitempty"`

	WeightedNumericStats *WeightedNumericStatistics `json:"weighted_numeric_stats,omitempty"`
}

// WeightedNumericStatistics is the weighted counterpart of
// NumericStatistics.
type WeightedNumericStatistics struct {
	Mean   float64 `json:"mean,omitempty"`
	StdDev float64 `json:"std_dev,omitempty"`
	Median float64 `json:"median,omitempty"`

	Histograms []Histogram `json:"histograms,omitempty"`
}

// StringStatistics summarizes a string or bytes feature's values.
// Values that are not valid UTF-8 appear under the InvalidUTF8Label
// sentinel; this layer does not validate encodings itself.
type StringStatistics struct {
	CommonStats *CommonStatistics `json:"common_stats,omitempty"`

	Unique        int64           `json:"unique,omitempty"`
	TopValues     []FreqAndValue  `json:"top_values,omitempty"`
	AvgLength     float64         `json:"avg_length,omitempty"`
	RankHistogram *RankHistogram  `json:"rank_histogram,omitempty"`
	Vocabulary    string          `json:"vocabulary_file,omitempty"`

	WeightedStringStats *WeightedStringStatistics `json:"weighted_string_stats,omitempty"`
}

// InvalidUTF8Label is the sentinel the statistics producer substitutes
// for string values that are not valid UTF-8.
const InvalidUTF8Label = "__BYTES_VALUE__"

// WeightedStringStatistics is the weighted counterpart of
// StringStatistics.
type WeightedStringStatistics struct {
	TopValues     []FreqAndValue `json:"top_values,omitempty"`
	RankHistogram *RankHistogram `json:"rank_histogram,omitempty"`
}

// BytesStatistics summarizes a raw-bytes feature.
type BytesStatistics struct {
	CommonStats *CommonStatistics `json:"common_stats,omitempty"`

	Unique      int64   `json:"unique,omitempty"`
	AvgNumBytes float64 `json:"avg_num_bytes,omitempty"`
	MinNumBytes float64 `json:"min_num_bytes,omitempty"`
	MaxNumBytes float64 `json:"max_num_bytes,omitempty"`
}

// StructStatistics summarizes a struct feature, which carries only
// common statistics of its own; its children are separate records.
type StructStatistics struct {
	CommonStats *CommonStatistics `json:"common_stats,omitempty"`
}

// FreqAndValue is one entry of a most-frequent-values list.
type FreqAndValue struct {
	Value     string  `json:"value"`
	Frequency float64 `json:"frequency"`
}

// RankHistogram maps distinct values, ordered by rank, to occurrence
// counts.
type RankHistogram struct {
	Buckets []RankBucket `json:"buckets,omitempty"`
}

// RankBucket is one entry of a RankHistogram.
type RankBucket struct {
	LowRank     int64   `json:"low_rank,omitempty"`
	HighRank    int64   `json:"high_rank,omitempty"`
	Label       string  `json:"label"`
	SampleCount float64 `json:"sample_count,omitempty"`
}

// Histogram is a standard quantile or equal-width histogram over numeric
// values.
type Histogram struct {
	NumNaN       int64             `json:"num_nan,omitempty"`
	NumUndefined int64             `json:"num_undefined,omitempty"`
	Buckets      []HistogramBucket `json:"buckets,omitempty"`
	HistType     HistogramType     `json:"type,omitempty"`
	Name         string            `json:"name,omitempty"`
}

// HistogramType distinguishes equal-width from quantile histograms.
type HistogramType uint8

const (
	HistogramStandard HistogramType = iota
	HistogramQuantiles
)

// HistogramBucket is one bucket of a Histogram.
type HistogramBucket struct {
	LowValue    float64 `json:"low_value"`
	HighValue   float64 `json:"high_value"`
	SampleCount float64 `json:"sample_count,omitempty"`
}

// CustomStatistic is an opaque named statistic attached by the producer.
// Exactly one of the value fields is meaningful; name collisions are
// permitted and left to the consumer to disambiguate.
type CustomStatistic struct {
	Name          string         `json:"name"`
	Num           float64        `json:"num,omitempty"`
	Str           string         `json:"str,omitempty"`
	Histogram     *Histogram     `json:"histogram,omitempty"`
	RankHistogram *RankHistogram `json:"rank_histogram,omitempty"`
}
