// Package statview provides queryable, hierarchical views over flat
// per-feature dataset statistics.
//
// A statistics producer emits one flat, ordered sequence of per-feature
// records per dataset (counts, value distributions, missingness, numeric
// ranges, string value frequencies). statview turns that sequence into:
//
//   - a path-indexed view (lookup any feature by its path),
//   - a derived parent/child tree over nested ("struct") features, based
//     on longest-struct-prefix path matching, and
//   - weight-aware accessors that resolve to weighted or unweighted
//     fields with defined fallback behavior.
//
// # Quick Start
//
//	view, _ := statview.NewDatasetView(data, false)
//	for _, f := range view.RootFeatures() {
//	    fraction, ok := f.FractionPresent()
//	    fmt.Println(f.Path(), f.FeatureType(), fraction, ok)
//	}
//
//	if f, ok := view.ByPath(schema.NewPath("s", "x")); ok {
//	    parent, _ := f.Parent() // the STRUCT feature "s"
//	    _ = parent
//	}
//
// Baseline comparison: a view can link a "previous" and a "serving"
// view, each independently indexed. A feature resolves its counterpart
// by path:
//
//	prevView, _ := statview.NewDatasetView(prevData, false)
//	view, _ := statview.NewDatasetView(data, false, statview.WithPrevious(prevView))
//	f, _ := view.ByPath(schema.NewPath("a"))
//	before, ok := f.Previous() // false if the baseline lacks "a"
//
// # Sharing Model
//
// DatasetView and FeatureView are lightweight handles over shared,
// immutable state. Copying a DatasetView is O(1) and shares the
// underlying records and derived index; a copy answers every query
// identically. Nothing is mutated after construction, so any number of
// goroutines may query concurrently without synchronization. No
// operation performs I/O or blocks.
//
// Snapshots are loaded and persisted through the snapshot and blobstore
// packages; the view layer itself never touches storage.
package statview
