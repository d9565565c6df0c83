// Package stats defines the statistics records consumed by the view
// layer: per-dataset snapshots of per-feature statistical summaries as
// produced by an external statistics generator.
//
// The types are inert carriers. Nothing in this module computes or
// mutates them; they are decoded from snapshots (see the snapshot
// package) or constructed by tests, then read through views.
package stats
