//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package parallel implements index-ordered fan-out of independent
// computations.
package parallel

import (
	"sync"

	"github.com/juju/errors"
)

const chanSize = 1024

// Map runs fn for the indices 0...n-1 on workers concurrent goroutines
// and returns the results ordered by index. If any invocation fails,
// Map returns the error of the lowest failing index. With workers <= 1
// the indices are processed sequentially in order and the first error
// stops the processing.
func Map[T any](n, workers int, fn func(i int) (T, error)) ([]T, error) {
	if n < 0 {
		return nil, errors.NotValidf("job count %d", n)
	}
	result := make([]T, n)
	if workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			v, err := fn(i)
			if err != nil {
				return nil, errors.Trace(err)
			}
			result[i] = v
		}
		return result, nil
	}

	c := make(chan int, chanSize)
	// producer
	go func() {
		for i := 0; i < n; i++ {
			c <- i
		}
		close(c)
	}()
	// consumers
	errs := make([]error, n)
	var wg sync.WaitGroup
	for j := 0; j < min(workers, n); j++ {
		wg.Go(func() {
			for i := range c {
				result[i], errs[i] = fn(i)
			}
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, errors.Trace(err)
		}
	}
	return result, nil
}

// MapSlice applies fn to every element of values on workers
// concurrent goroutines and returns the results in the order of
// values.
func MapSlice[T, R any](values []T, workers int,
	fn func(i int, v T) (R, error)) ([]R, error) {

	return Map(len(values), workers, func(i int) (R, error) {
		return fn(i, values[i])
	})
}
