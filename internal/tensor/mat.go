package tensor

import (
	"math/rand"
	"strconv"
	"strings"
)

// Mat represents a dense row‑major matrix of float64 values.
//
// R and C represent the number of rows and columns respectively.  Stride is
// the number of elements between the starts of two consecutive rows (for
// row‑major matrices this is equal to C).  Data holds the flattened matrix
// values.
//
// Mat does not perform any memory safety beyond the checks performed by Go's
// slice types; out‑of‑range indices will panic.
type Mat struct {
	R, C   int
	Stride int
	Data   []float64
}

// NewMat allocates a new matrix with the given number of rows and columns.
// The underlying slice is zero initialised.  The stride is set to the
// number of columns.
func NewMat(r, c int) Mat {
	if r < 0 || c < 0 {
		panic("negative dimension for matrix")
	}
	return Mat{
		R:      r,
		C:      c,
		Stride: c,
		Data:   make([]float64, r*c),
	}
}

// NewMatFromData creates a matrix from existing data.
// It checks that the data length matches r*c.
func NewMatFromData(r, c int, data []float64) Mat {
	if r*c != len(data) {
		panic("data length mismatch")
	}
	return Mat{
		R:      r,
		C:      c,
		Stride: c,
		Data:   data,
	}
}

// Row returns a view of the i‑th row of the matrix as a slice.  The slice
// has length equal to the number of columns.  Modifications to the returned
// slice update the underlying matrix values.
func (m *Mat) Row(i int) []float64 {
	if i < 0 || i >= m.R {
		panic("row index out of range")
	}
	start := i * m.Stride
	return m.Data[start : start+m.C]
}

// FillRamp fills the matrix row-major with incrementing values starting at
// start (start, start+1, start+2, ...).  The start value is explicit so that
// repeated fills are deterministic and independent of each other.
func (m *Mat) FillRamp(start float64) {
	elem := start
	for i := 0; i < m.R; i++ {
		row := m.Row(i)
		for j := range row {
			row[j] = elem
			elem += 1
		}
	}
}

// FillRand fills the matrix with reproducible pseudo‑random values in
// (-1, 1).  The seed controls the random sequence; multiple calls with the
// same seed produce identical matrices.
func (m *Mat) FillRand(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range m.Data {
		m.Data[i] = rng.Float64()*2 - 1
	}
}

// String renders the matrix one row per line with space-separated elements,
// matching the layout the CLI prints.
func (m *Mat) String() string {
	var sb strings.Builder
	for i := 0; i < m.R; i++ {
		row := m.Row(i)
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
