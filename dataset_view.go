package statview

import (
	"time"

	"github.com/hupe1980/statview/internal/pathindex"
	"github.com/hupe1980/statview/schema"
	"github.com/hupe1980/statview/stats"
)

// DatasetView is a queryable view over one dataset's feature statistics
// under one weighting interpretation.
//
// A DatasetView is a lightweight handle over shared, immutable state: it
// is designed to be passed by value. Copies share the same underlying
// records and derived index, so copying is O(1) and a copy answers every
// query identically to the original.
type DatasetView struct {
	// Guaranteed not to be nil for views produced by NewDatasetView.
	impl *viewImpl
}

// viewImpl owns the underlying records and the build-once derived index.
// It is never mutated after construction, which makes any number of
// concurrent readers safe without synchronization.
type viewImpl struct {
	data     *stats.DatasetFeatureStatistics
	byWeight bool

	environment *string
	previous    *DatasetView
	serving     *DatasetView

	index   *pathindex.Index
	metrics MetricsCollector
}

// NewDatasetView builds a view over the given statistics. The records
// are shared, not copied; they must not be mutated afterwards.
//
// Construction assigns each record its input-order position, maps each
// record's path to its position, and resolves parent/child links by
// longest-struct-prefix matching. Duplicate paths keep the first-seen
// mapping and are logged; with WithStrictPaths they fail construction
// with an error unwrapping to ErrDuplicatePath.
func NewDatasetView(data *stats.DatasetFeatureStatistics, byWeight bool, opts ...Option) (DatasetView, error) {
	if data == nil {
		return DatasetView{}, ErrNilStatistics
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()

	paths := make([]schema.Path, len(data.Features))
	isStruct := make([]bool, len(data.Features))
	for i := range data.Features {
		paths[i] = data.Features[i].FeaturePath()
		isStruct[i] = data.Features[i].Type == stats.TypeStruct
	}

	index := pathindex.Build(paths, isStruct)

	if dups := index.Duplicates(); len(dups) > 0 {
		if o.strictPaths {
			err := &DuplicatePathError{
				Path:   dups[0].Path,
				First:  dups[0].First,
				Second: dups[0].Second,
			}
			o.metrics.RecordViewBuild(len(data.Features), time.Since(start), err)
			return DatasetView{}, err
		}
		for _, d := range dups {
			o.logger.LogDuplicatePath(d.Path.String(), d.First, d.Second)
		}
	}

	v := DatasetView{impl: &viewImpl{
		data:        data,
		byWeight:    byWeight,
		environment: o.environment,
		previous:    o.previous,
		serving:     o.serving,
		index:       index,
		metrics:     o.metrics,
	}}

	o.metrics.RecordViewBuild(len(data.Features), time.Since(start), nil)
	o.logger.LogViewBuild(data.Name, len(data.Features), len(index.Roots()))

	return v, nil
}

// MustNewDatasetView is like NewDatasetView but panics on error. Useful
// for statically-known inputs and tests.
func MustNewDatasetView(data *stats.DatasetFeatureStatistics, byWeight bool, opts ...Option) DatasetView {
	v, err := NewDatasetView(data, byWeight, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Features returns one FeatureView per record, in input order.
func (d DatasetView) Features() []FeatureView {
	out := make([]FeatureView, d.impl.index.Len())
	for i := range out {
		out[i] = FeatureView{view: d, position: i}
	}
	return out
}

// RootFeatures returns the features with no resolved parent, in input
// order.
func (d DatasetView) RootFeatures() []FeatureView {
	roots := d.impl.index.Roots()
	out := make([]FeatureView, len(roots))
	for i, pos := range roots {
		out[i] = FeatureView{view: d, position: pos}
	}
	return out
}

// NumExamples returns the dataset-level total example count, weighted if
// the view was built with byWeight. A producer that never set the field
// yields 0, indistinguishable from a genuine zero.
func (d DatasetView) NumExamples() float64 {
	if d.impl.byWeight {
		return d.impl.data.WeightedNumExamples
	}
	return d.impl.data.NumExamples
}

// ByWeight returns the weighting mode accessors resolve under.
func (d DatasetView) ByWeight() bool { return d.impl.byWeight }

// ByPath returns the feature at the given path, or false when absent.
func (d DatasetView) ByPath(p schema.Path) (FeatureView, bool) {
	pos, ok := d.impl.index.Position(p)
	d.impl.metrics.RecordPathLookup(ok)
	if !ok {
		return FeatureView{}, false
	}
	return FeatureView{view: d, position: pos}, true
}

// WeightedStatisticsExist reports whether weighted statistics are fully
// populated: the dataset-level weighted example count is set and every
// feature carries a weighted counterpart with parity to its unweighted
// statistics. This is independent of ByWeight.
func (d DatasetView) WeightedStatisticsExist() bool {
	if d.impl.data.WeightedNumExamples == 0 {
		return false
	}
	for i := 0; i < d.impl.index.Len(); i++ {
		if !(FeatureView{view: d, position: i}).WeightedStatisticsExist() {
			return false
		}
	}
	return true
}

// Parent returns the parent of v, or false for roots. The parent, if
// any, is the STRUCT-typed feature whose path is the longest strict
// prefix of v's path.
//
// v must have been produced by this view; passing a foreign FeatureView
// is a contract violation and panics.
func (d DatasetView) Parent(v FeatureView) (FeatureView, bool) {
	d.mustOwn(v)
	pos, ok := d.impl.index.Parent(v.position)
	if !ok {
		return FeatureView{}, false
	}
	return FeatureView{view: d, position: pos}, true
}

// Children returns the features whose resolved parent is v, in input
// order. v must have been produced by this view.
func (d DatasetView) Children(v FeatureView) []FeatureView {
	d.mustOwn(v)
	positions := d.impl.index.Children(v.position)
	out := make([]FeatureView, len(positions))
	for i, pos := range positions {
		out[i] = FeatureView{view: d, position: pos}
	}
	return out
}

// PathOf returns the path of v. v must have been produced by this view.
func (d DatasetView) PathOf(v FeatureView) schema.Path {
	d.mustOwn(v)
	return d.impl.index.Path(v.position)
}

// Environment returns the optional environment label.
func (d DatasetView) Environment() (string, bool) {
	if d.impl.environment == nil {
		return "", false
	}
	return *d.impl.environment, true
}

// Previous returns the linked previous-baseline view, if any.
func (d DatasetView) Previous() (DatasetView, bool) {
	if d.impl.previous == nil {
		return DatasetView{}, false
	}
	return *d.impl.previous, true
}

// Serving returns the linked serving-baseline view, if any.
func (d DatasetView) Serving() (DatasetView, bool) {
	if d.impl.serving == nil {
		return DatasetView{}, false
	}
	return *d.impl.serving, true
}

// record returns the underlying record at the given position. Positions
// come from this view's own index, so out-of-range access is a defect.
func (d DatasetView) record(position int) *stats.FeatureNameStatistics {
	return &d.impl.data.Features[position]
}

func (d DatasetView) mustOwn(v FeatureView) {
	if v.view.impl != d.impl {
		panic("statview: FeatureView does not belong to this DatasetView")
	}
}
