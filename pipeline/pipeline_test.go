package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func source(items ...int) <-chan int {
	ch := make(chan int)
	go func() {
		defer close(ch)
		for _, item := range items {
			ch <- item
		}
	}()
	return ch
}

func Test_Take(t *testing.T) {
	ctx := context.Background()

	got := ToSlice(Take(ctx, 3, source(1, 2, 3, 4, 5)))
	assert.Equal(t, []int{1, 2, 3}, got)

	got = ToSlice(Take(ctx, 10, source(1, 2)))
	assert.Equal(t, []int{1, 2}, got)

	got = ToSlice(Take(ctx, 0, source(1, 2)))
	assert.Empty(t, got)
}

func Test_TakeCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := make(chan int)
	got := ToSlice(Take(ctx, 5, ch))
	assert.Empty(t, got)
}

func Test_OrDone(t *testing.T) {
	ctx := context.Background()
	got := ToSlice(OrDone(ctx, source(7, 8, 9)))
	assert.Equal(t, []int{7, 8, 9}, got)
}

func Test_OrDoneCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := make(chan int)
	got := ToSlice(OrDone(ctx, ch))
	assert.Empty(t, got)
}
