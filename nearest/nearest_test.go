package nearest

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/humz2k/hqvec"
	"github.com/humz2k/hqvec/metric"
	"github.com/humz2k/hqvec/pipeline"
)

type testIndex = Index[hqvec.Vec[float32, [8]float32], int, metric.SqL2[float32, [8]float32]]

func buildIndex(n int) *testIndex {
	ix := &testIndex{}
	for i := 0; i < n; i++ {
		ix.Add(hqvec.Fill[float32, [8]float32](float32(i)), i)
	}
	return ix
}

func Test_Search(t *testing.T) {
	ix := buildIndex(10)
	query := hqvec.Fill[float32, [8]float32](3.2)

	got, err := ix.Search(query, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(got))
	assert.Equal(t, 3, got[0].Item)
	assert.Equal(t, 4, got[1].Item)
	assert.Equal(t, 2, got[2].Item)
	assert.InDelta(t, 8*0.2*0.2, got[0].Distance, 1e-4)
	assert.InDelta(t, 8*0.8*0.8, got[1].Distance, 1e-4)
}

func Test_SearchSmallIndex(t *testing.T) {
	ix := buildIndex(2)
	query := hqvec.Fill[float32, [8]float32](0)

	got, err := ix.Search(query, 5)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(got))
	assert.Equal(t, 0, got[0].Item)
	assert.Equal(t, 1, got[1].Item)
}

func Test_SearchErrors(t *testing.T) {
	ix := NewIndex[hqvec.Vec[float32, [8]float32], int, metric.SqL2[float32, [8]float32]]()
	_, err := ix.Search(hqvec.Fill[float32, [8]float32](0), 1)
	assert.ErrorIs(t, err, ErrEmptyIndex)

	ix = buildIndex(3)
	_, err = ix.Search(hqvec.Fill[float32, [8]float32](0), 0)
	assert.ErrorIs(t, err, ErrBadK)
}

func Test_SearchMaxGoroutines(t *testing.T) {
	ix := buildIndex(100).WithMaxGoroutines(1)
	query := hqvec.Fill[float32, [8]float32](41.6)

	got, err := ix.Search(query, 2)
	assert.NoError(t, err)
	assert.Equal(t, 42, got[0].Item)
	assert.Equal(t, 41, got[1].Item)
}

func Test_SearchChannel(t *testing.T) {
	ix := buildIndex(10)
	query := hqvec.Fill[float32, [8]float32](6.9)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := pipeline.ToSlice(pipeline.Take(ctx, 4, ix.SearchChannel(ctx, query)))
	assert.Equal(t, 4, len(got))
	assert.Equal(t, 7, got[0].Item)
	assert.Equal(t, 6, got[1].Item)
	assert.Equal(t, 8, got[2].Item)
	assert.Equal(t, 5, got[3].Item)
}

func Test_SaveLoad(t *testing.T) {
	ix := buildIndex(10)
	query := hqvec.Fill[float32, [8]float32](3.2)

	var buffer bytes.Buffer
	assert.NoError(t, ix.Save(&buffer))

	loaded, err := LoadIndex[hqvec.Vec[float32, [8]float32], int, metric.SqL2[float32, [8]float32]](&buffer)
	assert.NoError(t, err)
	assert.Equal(t, ix.Len(), loaded.Len())
	assert.Equal(t, ix.Points, loaded.Points)

	want, err := ix.Search(query, 3)
	assert.NoError(t, err)
	got, err := loaded.Search(query, 3)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
