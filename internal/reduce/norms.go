package reduce

import (
	"math"
	"sync"

	"github.com/samcharles93/parnorm/internal/tensor"
)

// MaxAbs computes the max-absolute-value norm of m in parallel, one worker
// per row.  Each worker scans its row for the largest |x| and the maxima are
// folded into a shared accumulator under a mutex; the fold is commutative so
// worker ordering does not affect the result.
func MaxAbs(m *tensor.Mat) (float64, error) {
	if m.R == 0 || m.C == 0 {
		return 0, ErrEmpty
	}

	// Seed with the first element so the accumulator always holds a value
	// taken from the matrix.
	acc := math.Abs(m.Data[0])
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := range m.R {
		wg.Add(1)
		go func(row []float64) {
			defer wg.Done()
			local := math.Abs(row[0])
			for _, x := range row[1:] {
				if v := math.Abs(x); v > local {
					local = v
				}
			}
			mu.Lock()
			if local > acc {
				acc = local
			}
			mu.Unlock()
		}(m.Row(i))
	}
	wg.Wait()

	return acc, nil
}

// MaxAbsRef is the sequential reference for MaxAbs.
func MaxAbsRef(m *tensor.Mat) (float64, error) {
	if m.R == 0 || m.C == 0 {
		return 0, ErrEmpty
	}
	acc := math.Abs(m.Data[0])
	for i := range m.R {
		for _, x := range m.Row(i) {
			if v := math.Abs(x); v > acc {
				acc = v
			}
		}
	}
	return acc, nil
}

// SumSquares computes the sum of squared elements of m in parallel, one
// worker per row, each adding its row sum to the shared accumulator under a
// mutex.  Addition order is not deterministic, so results may differ from
// the sequential sum by floating-point rounding.
func SumSquares(m *tensor.Mat) (float64, error) {
	if m.R == 0 || m.C == 0 {
		return 0, ErrEmpty
	}

	var acc float64
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := range m.R {
		wg.Add(1)
		go func(row []float64) {
			defer wg.Done()
			var local float64
			for _, x := range row {
				local += x * x
			}
			mu.Lock()
			acc += local
			mu.Unlock()
		}(m.Row(i))
	}
	wg.Wait()

	return acc, nil
}

// Frobenius computes the Frobenius norm of m: the square root of the
// parallel sum of squares.
func Frobenius(m *tensor.Mat) (float64, error) {
	ss, err := SumSquares(m)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(ss), nil
}

// FrobeniusRef is the sequential reference for Frobenius.
func FrobeniusRef(m *tensor.Mat) (float64, error) {
	if m.R == 0 || m.C == 0 {
		return 0, ErrEmpty
	}
	var acc float64
	for i := range m.R {
		for _, x := range m.Row(i) {
			acc += x * x
		}
	}
	return math.Sqrt(acc), nil
}
