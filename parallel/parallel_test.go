//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package parallel

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	for _, workers := range []int{0, 1, 2, 4, 17} {
		r, err := Map(1000, workers, func(i int) (int, error) {
			return i * i, nil
		})
		require.NoError(t, err)
		require.Len(t, r, 1000)
		for i, v := range r {
			assert.Equal(t, i*i, v, "workers=%d", workers)
		}
	}
}

func TestMapEmpty(t *testing.T) {
	r, err := Map(0, 4, func(i int) (string, error) {
		return "", fmt.Errorf("unexpected call %d", i)
	})
	require.NoError(t, err)
	assert.Empty(t, r)

	_, err = Map(-1, 4, func(i int) (string, error) {
		return "", nil
	})
	assert.True(t, errors.Is(err, errors.NotValid))
}

var errJob = fmt.Errorf("job failed")

func TestMapError(t *testing.T) {
	for _, workers := range []int{1, 4} {
		var calls atomic.Int32
		_, err := Map(100, workers, func(i int) (int, error) {
			calls.Add(1)
			if i == 10 || i == 50 {
				return 0, fmt.Errorf("job %d: %w", i, errJob)
			}
			return i, nil
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errJob)
		assert.Contains(t, err.Error(), "job 10")
		if workers == 1 {
			assert.Equal(t, int32(11), calls.Load())
		}
	}
}

func TestMapSlice(t *testing.T) {
	values := []string{"a", "bb", "ccc", "dddd"}
	r, err := MapSlice(values, 3, func(i int, v string) (string, error) {
		return fmt.Sprintf("%d:%d", i, len(v)), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"0:1", "1:2", "2:3", "3:4"}, r)
}
