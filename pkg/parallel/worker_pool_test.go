package parallel

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWorkerPoolBasicOperations tests basic worker pool functionality
func TestWorkerPoolBasicOperations(t *testing.T) {
	pool, err := NewWorkerPool(4)
	require.NoError(t, err)

	executed := false
	success := pool.Submit(func() {
		executed = true
	})
	assert.True(t, success, "Task submission failed")

	// Wait for task to complete
	pool.Close()
	assert.True(t, executed, "Task was not executed")
}

func TestWorkerPoolSizing(t *testing.T) {
	_, err := NewWorkerPool(MaxWorkers + 1)
	assert.ErrorIs(t, err, ErrTooManyWorkers)

	for _, workers := range []int{-5, 0} {
		pool, err := NewWorkerPool(workers)
		require.NoError(t, err)
		assert.Equal(t, 1, pool.Workers(), "non-positive counts default to 1")
		pool.Close()
	}

	pool, err := NewWorkerPool(MaxWorkers)
	require.NoError(t, err)
	assert.Equal(t, MaxWorkers, pool.Workers())
	pool.Close()
}

// TestWorkerPoolConcurrentSubmissions tests concurrent task submissions
func TestWorkerPoolConcurrentSubmissions(t *testing.T) {
	pool, err := NewWorkerPool(10)
	require.NoError(t, err)

	numTasks := 100
	var counter int64

	var wg sync.WaitGroup
	for i := 0; i < numTasks; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.Submit(func() {
				atomic.AddInt64(&counter, 1)
			})
		}()
	}
	wg.Wait()
	pool.Close()

	assert.Equal(t, int64(numTasks), atomic.LoadInt64(&counter))
}

// TestWorkerPoolSubmitAfterClose tests that submit fails after close
func TestWorkerPoolSubmitAfterClose(t *testing.T) {
	pool, err := NewWorkerPool(2)
	require.NoError(t, err)
	pool.Close()

	assert.False(t, pool.Submit(func() {}), "Submit after Close should fail")
	assert.False(t, pool.ForEachRange(10, func(lo, hi int) {}), "ForEachRange after Close should fail")

	// Multiple closes are safe
	pool.Close()
	pool.Wait()
}

// TestForEachRangeCoversEveryIndexOnce tests chunking of the index space
func TestForEachRangeCoversEveryIndexOnce(t *testing.T) {
	for _, workers := range []int{1, 3, 8, 64} {
		pool, err := NewWorkerPool(workers)
		require.NoError(t, err)

		for _, n := range []int{0, 1, 7, 100, 1001} {
			hits := make([]int32, n)
			ok := pool.ForEachRange(n, func(lo, hi int) {
				for i := lo; i < hi; i++ {
					atomic.AddInt32(&hits[i], 1)
				}
			})
			require.True(t, ok)
			for i, h := range hits {
				if h != 1 {
					t.Fatalf("workers=%d n=%d: index %d visited %d times", workers, n, i, h)
				}
			}
		}

		pool.Close()
	}
}

// TestForEachRangeReusable tests that the pool stays usable between batches
func TestForEachRangeReusable(t *testing.T) {
	pool, err := NewWorkerPool(4)
	require.NoError(t, err)
	defer pool.Close()

	var total int64
	for round := 0; round < 50; round++ {
		pool.ForEachRange(40, func(lo, hi int) {
			atomic.AddInt64(&total, int64(hi-lo))
		})
	}
	assert.Equal(t, int64(2000), atomic.LoadInt64(&total))
}

// TestWorkerPoolWithPanic tests that a panicking chunk does not deadlock the batch
func TestWorkerPoolWithPanic(t *testing.T) {
	pool, err := NewWorkerPool(2)
	require.NoError(t, err)
	defer pool.Close()

	var ran int64
	ok := pool.ForEachRange(4, func(lo, hi int) {
		if lo == 0 {
			panic("chunk failure")
		}
		atomic.AddInt64(&ran, 1)
	})
	assert.True(t, ok)
	assert.Equal(t, int64(1), atomic.LoadInt64(&ran))

	// Workers survive the panic
	done := make(chan struct{})
	pool.Submit(func() { close(done) })
	<-done
}

func BenchmarkForEachRange(b *testing.B) {
	pool, _ := NewWorkerPool(4)
	defer pool.Close()

	data := make([]float64, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ForEachRange(len(data), func(lo, hi int) {
			for j := lo; j < hi; j++ {
				data[j] += 1
			}
		})
	}
}
