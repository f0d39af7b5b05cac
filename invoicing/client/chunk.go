package client

import (
	"context"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// FetchChunked splits ids into bounded chunks, fetches each chunk, and
// reassembles the results so callers always decide on the complete set.
// Duplicate ids are collapsed before chunking.
func FetchChunked[T any](ctx context.Context, ids []string, chunkSize int, fetch func(context.Context, []string) ([]T, error)) ([]T, error) {
	ids = lo.Uniq(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	var out []T
	for _, chunk := range lo.Chunk(ids, chunkSize) {
		part, err := fetch(ctx, chunk)
		if err != nil {
			return nil, err
		}
		out = append(out, part...)
	}
	return out, nil
}

// FetchChunkedConcurrent is FetchChunked with chunks fetched concurrently,
// bounded by concurrency. Result order follows the chunk order, not
// completion order.
func FetchChunkedConcurrent[T any](ctx context.Context, ids []string, chunkSize, concurrency int, fetch func(context.Context, []string) ([]T, error)) ([]T, error) {
	ids = lo.Uniq(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	chunks := lo.Chunk(ids, chunkSize)
	results := make([][]T, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			part, err := fetch(gctx, chunk)
			if err != nil {
				return err
			}
			results[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []T
	for _, part := range results {
		out = append(out, part...)
	}
	return out, nil
}
