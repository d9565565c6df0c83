package snapshot

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/statview"
	"github.com/hupe1980/statview/blobstore"
	"github.com/hupe1980/statview/stats"
)

// Ref names a snapshot and its optional baselines within a store.
type Ref struct {
	// Name is the snapshot blob name of the dataset to view.
	Name string
	// Previous optionally names the previous-baseline snapshot.
	Previous string
	// Serving optionally names the serving-baseline snapshot.
	Serving string
}

// LoadDatasetView loads the referenced snapshots (concurrently, when
// baselines are named) and assembles the linked DatasetViews. A named
// baseline that is missing from the store is an error; leave the field
// empty for no baseline.
func LoadDatasetView(ctx context.Context, store blobstore.Store, ref Ref, byWeight bool, opts ...Option) (statview.DatasetView, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if ref.Name == "" {
		return statview.DatasetView{}, errors.New("snapshot: ref has no name")
	}

	var current, previous, serving *stats.DatasetFeatureStatistics

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = Load(gctx, store, ref.Name, opts...)
		return err
	})
	if ref.Previous != "" {
		g.Go(func() error {
			var err error
			previous, err = Load(gctx, store, ref.Previous, opts...)
			return err
		})
	}
	if ref.Serving != "" {
		g.Go(func() error {
			var err error
			serving, err = Load(gctx, store, ref.Serving, opts...)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return statview.DatasetView{}, err
	}

	viewOpts := append([]statview.Option(nil), o.viewOptions...)
	if previous != nil {
		previousView, err := statview.NewDatasetView(previous, byWeight)
		if err != nil {
			return statview.DatasetView{}, fmt.Errorf("snapshot: previous baseline %q: %w", ref.Previous, err)
		}
		viewOpts = append(viewOpts, statview.WithPrevious(previousView))
	}
	if serving != nil {
		servingView, err := statview.NewDatasetView(serving, byWeight)
		if err != nil {
			return statview.DatasetView{}, fmt.Errorf("snapshot: serving baseline %q: %w", ref.Serving, err)
		}
		viewOpts = append(viewOpts, statview.WithServing(servingView))
	}

	view, err := statview.NewDatasetView(current, byWeight, viewOpts...)
	if err != nil {
		return statview.DatasetView{}, fmt.Errorf("snapshot: %q: %w", ref.Name, err)
	}
	return view, nil
}
