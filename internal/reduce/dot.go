package reduce

import (
	"sync"

	"github.com/samcharles93/parnorm/internal/tensor"
)

// Dot computes the dot product of a and b with one worker per element pair.
// Each worker multiplies one pair and adds the product to the shared
// accumulator under a mutex.  This is the finest partitioning the package
// supports; DotBlocks covers the coarse-grained variant.
func Dot(a, b tensor.Vec) (float64, error) {
	if err := checkOperands(a, b); err != nil {
		return 0, err
	}

	var acc float64
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := range a {
		wg.Add(1)
		go func(x, y float64) {
			defer wg.Done()
			p := x * y
			mu.Lock()
			acc += p
			mu.Unlock()
		}(a[i], b[i])
	}
	wg.Wait()

	return acc, nil
}

// DotBlocks computes the dot product of a and b with one worker per
// contiguous block of k elements.  k must be positive and divide the vector
// length evenly; anything else returns ErrInvalidPartition rather than
// silently truncating the tail.
func DotBlocks(a, b tensor.Vec, k int) (float64, error) {
	if err := checkOperands(a, b); err != nil {
		return 0, err
	}
	if k <= 0 || len(a)%k != 0 {
		return 0, ErrInvalidPartition
	}

	var acc float64
	var mu sync.Mutex
	var wg sync.WaitGroup

	blocks := len(a) / k
	for i := range blocks {
		start := i * k
		end := start + k
		wg.Add(1)
		go func(ax, bx tensor.Vec) {
			defer wg.Done()
			var local float64
			for j := range ax {
				local += ax[j] * bx[j]
			}
			mu.Lock()
			acc += local
			mu.Unlock()
		}(a[start:end], b[start:end])
	}
	wg.Wait()

	return acc, nil
}

// DotRef is the sequential reference for Dot and DotBlocks.
func DotRef(a, b tensor.Vec) (float64, error) {
	if err := checkOperands(a, b); err != nil {
		return 0, err
	}
	var acc float64
	for i := range a {
		acc += a[i] * b[i]
	}
	return acc, nil
}

// dotSlots is the lock-free alternative: each worker writes its partial sum
// to a private slot and a single combining pass folds the slots after the
// join.  Kept as the contention-free upgrade path for higher worker counts;
// the mutex variants above remain the canonical implementations.
func dotSlots(a, b tensor.Vec, workers int) (float64, error) {
	if err := checkOperands(a, b); err != nil {
		return 0, err
	}
	if workers < 1 {
		return 0, ErrInvalidPartition
	}
	if workers > len(a) {
		workers = len(a)
	}

	slots := make([]float64, workers)
	chunk := (len(a) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := range workers {
		start := w * chunk
		end := min(start+chunk, len(a))
		if start >= end {
			break
		}
		wg.Add(1)
		go func(slot *float64, ax, bx tensor.Vec) {
			defer wg.Done()
			var local float64
			for j := range ax {
				local += ax[j] * bx[j]
			}
			*slot = local
		}(&slots[w], a[start:end], b[start:end])
	}
	wg.Wait()

	var acc float64
	for _, s := range slots {
		acc += s
	}
	return acc, nil
}

func checkOperands(a, b tensor.Vec) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmpty
	}
	if len(a) != len(b) {
		return ErrShapeMismatch
	}
	return nil
}
