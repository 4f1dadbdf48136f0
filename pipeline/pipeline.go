// Package pipeline provides the context-aware channel stages used by
// the streaming search API.
package pipeline

import (
	"context"
)

const streamBufferSize = 8

// Take forwards at most n items from inputStream.
func Take[T any](ctx context.Context, n uint, inputStream <-chan T) <-chan T {
	outputStream := make(chan T, streamBufferSize)
	go func() {
		defer close(outputStream)

		taken := uint(0)
		for taken < n {
			select {
			case <-ctx.Done():
				return
			case item, ok := <-inputStream:
				if !ok {
					return
				}
				select {
				case <-ctx.Done():
					return
				case outputStream <- item:
					taken++
				}
			}
		}
	}()

	return outputStream
}

// OrDone forwards inputStream until it closes or the context ends.
func OrDone[T any](ctx context.Context, inputStream <-chan T) <-chan T {
	outputStream := make(chan T, streamBufferSize)
	go func() {
		defer close(outputStream)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-inputStream:
				if !ok {
					return
				}
				select {
				case <-ctx.Done():
					return
				case outputStream <- v:
				}
			}
		}
	}()

	return outputStream
}

// ToSlice collects inputStream until it closes.
func ToSlice[T any](inputStream <-chan T) []T {
	output := make([]T, 0)
	for item := range inputStream {
		output = append(output, item)
	}

	return output
}
