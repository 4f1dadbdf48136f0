// Package nearest implements brute-force k-nearest-neighbor search
// over fixed-size vectors. It is the reference consumer of the hqvec
// types: points are held by value, distances come from a metric, and
// the scan is chunked across goroutines.
package nearest

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/humz2k/hqvec/collection"
	"github.com/humz2k/hqvec/metric"
	"github.com/humz2k/hqvec/pipeline"
)

// Candidate is one search result.
type Candidate[U any] struct {
	Item     U
	Distance float64
}

// Index is a flat index of points with attached items. V is a vector
// type, M the metric ranking it. M is a type parameter rather than a
// field so a zero Index (and a gob-decoded one) is ready to search.
type Index[V any, U any, M metric.Metric[V]] struct {
	Points []V
	Items  []U

	maxGoroutines int
}

type chunk struct {
	begin int
	end   int
}

// NewIndex returns an empty index.
func NewIndex[V any, U any, M metric.Metric[V]]() *Index[V, U, M] {
	return &Index[V, U, M]{}
}

// WithMaxGoroutines caps the scan parallelism. Zero means NumCPU.
func (ix *Index[V, U, M]) WithMaxGoroutines(n int) *Index[V, U, M] {
	ix.maxGoroutines = n
	return ix
}

// Add appends a point with its item.
func (ix *Index[V, U, M]) Add(p V, item U) {
	ix.Points = append(ix.Points, p)
	ix.Items = append(ix.Items, item)
}

func (ix *Index[V, U, M]) Len() int { return len(ix.Points) }

// Search returns the k nearest points to query, ascending by distance.
// Fewer than k candidates are returned when the index is smaller.
func (ix *Index[V, U, M]) Search(query V, k int) ([]Candidate[U], error) {
	if k <= 0 {
		return nil, ErrBadK
	}
	if len(ix.Points) == 0 {
		return nil, ErrEmptyIndex
	}

	var m M
	chunks := ix.chunks()
	tops := make([]*collection.TopK[U], len(chunks))

	p := pool.New().WithMaxGoroutines(ix.procs())
	for ci, c := range chunks {
		ci, c := ci, c
		p.Go(func() {
			top := collection.NewTopK[U](k)
			for i := c.begin; i < c.end; i++ {
				top.Push(ix.Items[i], m.Distance(query, ix.Points[i]))
			}
			tops[ci] = top
		})
	}
	p.Wait()

	merged := collection.NewTopK[U](k)
	for _, top := range tops {
		for _, c := range top.Drain() {
			merged.Push(c.Item, c.Priority)
		}
	}

	out := make([]Candidate[U], 0, merged.Len())
	for _, c := range merged.Drain() {
		out = append(out, Candidate[U]{Item: c.Item, Distance: c.Priority})
	}
	return out, nil
}

// SearchChannel streams every candidate ascending by distance until
// the context ends. Compose with pipeline.Take for a bounded prefix.
func (ix *Index[V, U, M]) SearchChannel(ctx context.Context, query V) <-chan Candidate[U] {
	ranked := make(chan Candidate[U])
	go func() {
		defer close(ranked)

		var m M
		all := make([]Candidate[U], len(ix.Points))

		wg := sync.WaitGroup{}
		for _, c := range ix.chunks() {
			wg.Add(1)
			go func(c chunk) {
				defer wg.Done()
				for i := c.begin; i < c.end; i++ {
					all[i] = Candidate[U]{
						Item:     ix.Items[i],
						Distance: m.Distance(query, ix.Points[i]),
					}
				}
			}(c)
		}
		wg.Wait()

		sort.Slice(all, func(i, j int) bool {
			return all[i].Distance < all[j].Distance
		})

		for _, cand := range all {
			select {
			case <-ctx.Done():
				return
			case ranked <- cand:
			}
		}
	}()

	return pipeline.OrDone(ctx, ranked)
}

func (ix *Index[V, U, M]) procs() int {
	if ix.maxGoroutines <= 0 {
		return runtime.NumCPU()
	}
	return ix.maxGoroutines
}

func (ix *Index[V, U, M]) chunks() []chunk {
	procs := ix.procs()
	size := (len(ix.Points) + procs - 1) / procs
	if size == 0 {
		size = 1
	}

	out := make([]chunk, 0, procs)
	for begin := 0; begin < len(ix.Points); begin += size {
		end := begin + size
		if len(ix.Points) < end {
			end = len(ix.Points)
		}
		out = append(out, chunk{begin: begin, end: end})
	}
	return out
}
