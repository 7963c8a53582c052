package tensor

import (
	"math/rand"
	"strconv"
	"strings"
)

// Vec is a one-dimensional buffer of float64 values.
type Vec []float64

// NewVec allocates a zero-initialised vector of length n.
func NewVec(n int) Vec {
	if n < 0 {
		panic("negative length for vector")
	}
	return make(Vec, n)
}

// FillRamp fills the vector with incrementing values starting at start.
func (v Vec) FillRamp(start float64) {
	elem := start
	for i := range v {
		v[i] = elem
		elem += 1
	}
}

// FillRand fills the vector with reproducible pseudo‑random values in (-1, 1).
func (v Vec) FillRand(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}
}

// String renders the vector as a single space-separated line.
func (v Vec) String() string {
	var sb strings.Builder
	for i, x := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
	}
	return sb.String()
}
