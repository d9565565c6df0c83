package snapshot

import (
	"github.com/hupe1980/statview"
	"github.com/hupe1980/statview/codec"
)

type options struct {
	codec       codec.Codec
	compression Compression
	metrics     statview.MetricsCollector
	viewOptions []statview.Option
}

func defaultOptions() options {
	return options{
		codec:       codec.Default,
		compression: CompressionZSTD,
		metrics:     statview.NoopMetricsCollector{},
	}
}

// Option configures snapshot save/load behavior.
type Option func(*options)

// WithCodec configures the codec used for new snapshots. Loading always
// selects the codec recorded in the blob header.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures the payload compression for new snapshots.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithMetrics configures a collector for snapshot load metrics. Note
// that this does not affect the views built by LoadDatasetView; use
// WithViewOptions(statview.WithMetrics(...)) for those.
//
// If nil is passed, a no-op collector is used.
func WithMetrics(m statview.MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = statview.NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithViewOptions passes construction options through to the primary
// DatasetView assembled by LoadDatasetView (environment, strict paths,
// logging, metrics).
func WithViewOptions(opts ...statview.Option) Option {
	return func(o *options) {
		o.viewOptions = append(o.viewOptions, opts...)
	}
}
