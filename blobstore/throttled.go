package blobstore

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// ThrottledStore wraps a Store and rate-limits operations. Useful when
// snapshots live on shared object storage and bulk baseline loads must
// not exhaust request quotas.
type ThrottledStore struct {
	inner   Store
	limiter *rate.Limiter
}

// Throttled wraps store so that each operation first waits on limiter.
func Throttled(store Store, limiter *rate.Limiter) *ThrottledStore {
	return &ThrottledStore{inner: store, limiter: limiter}
}

// Open opens a blob for reading.
func (s *ThrottledStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.inner.Open(ctx, name)
}

// Put writes a blob.
func (s *ThrottledStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

// List returns the names of blobs starting with prefix, sorted.
func (s *ThrottledStore) List(ctx context.Context, prefix string) ([]string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.inner.List(ctx, prefix)
}
