package reduce

import (
	"errors"
	"testing"

	"github.com/samcharles93/parnorm/internal/tensor"
)

func TestDotRamp10(t *testing.T) {
	// a = b = [0..9]: dot = sum i^2 = 285.
	a := tensor.NewVec(10)
	b := tensor.NewVec(10)
	a.FillRamp(0)
	b.FillRamp(0)

	ref, err := DotRef(a, b)
	if err != nil {
		t.Fatalf("DotRef: %v", err)
	}
	res, err := Dot(a, b)
	if err != nil {
		t.Fatalf("Dot: %v", err)
	}
	if ref != 285 {
		t.Fatalf("reference: got %g, want 285", ref)
	}
	if !Close(res, ref, DefaultTolerance) {
		t.Fatalf("parallel vs reference: %g vs %g", res, ref)
	}
}

func TestDotBlocksRamp9(t *testing.T) {
	// n=9, k=3, a = b = [0..8]: dot = sum i^2 = 204.
	a := tensor.NewVec(9)
	b := tensor.NewVec(9)
	a.FillRamp(0)
	b.FillRamp(0)

	res, err := DotBlocks(a, b, 3)
	if err != nil {
		t.Fatalf("DotBlocks: %v", err)
	}
	ref, _ := DotRef(a, b)
	if ref != 204 {
		t.Fatalf("reference: got %g, want 204", ref)
	}
	if !Close(res, ref, DefaultTolerance) {
		t.Fatalf("blocks vs reference: %g vs %g", res, ref)
	}
}

func TestDotPartitioningsAgree(t *testing.T) {
	// Pairs, blocks of several sizes, private slots and the sequential
	// reference must all agree within tolerance regardless of granularity.
	const n = 24
	a := tensor.NewVec(n)
	b := tensor.NewVec(n)
	a.FillRand(11)
	b.FillRand(12)

	ref, err := DotRef(a, b)
	if err != nil {
		t.Fatalf("DotRef: %v", err)
	}

	pairs, err := Dot(a, b)
	if err != nil {
		t.Fatalf("Dot: %v", err)
	}
	if !Close(pairs, ref, DefaultTolerance) {
		t.Fatalf("pairs: %g vs %g", pairs, ref)
	}

	for _, k := range []int{1, 2, 3, 4, 6, 8, 12, 24} {
		res, err := DotBlocks(a, b, k)
		if err != nil {
			t.Fatalf("DotBlocks k=%d: %v", k, err)
		}
		if !Close(res, ref, DefaultTolerance) {
			t.Fatalf("blocks k=%d: %g vs %g", k, res, ref)
		}
	}

	for _, w := range []int{1, 3, 8, 64} {
		res, err := dotSlots(a, b, w)
		if err != nil {
			t.Fatalf("dotSlots workers=%d: %v", w, err)
		}
		if !Close(res, ref, DefaultTolerance) {
			t.Fatalf("slots workers=%d: %g vs %g", w, res, ref)
		}
	}
}

func TestDotSingleElement(t *testing.T) {
	a := tensor.Vec{4}
	b := tensor.Vec{-2}

	if res, err := Dot(a, b); err != nil || res != -8 {
		t.Fatalf("Dot: got %g, %v", res, err)
	}
	if res, err := DotBlocks(a, b, 1); err != nil || res != -8 {
		t.Fatalf("DotBlocks: got %g, %v", res, err)
	}
}

func TestDotValidation(t *testing.T) {
	a := tensor.NewVec(6)
	b := tensor.NewVec(6)

	if _, err := Dot(tensor.Vec{}, tensor.Vec{}); !errors.Is(err, ErrEmpty) {
		t.Fatalf("empty: got %v, want ErrEmpty", err)
	}
	if _, err := Dot(a, b[:4]); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("mismatch: got %v, want ErrShapeMismatch", err)
	}
	if _, err := DotBlocks(a, b, 0); !errors.Is(err, ErrInvalidPartition) {
		t.Fatalf("k=0: got %v, want ErrInvalidPartition", err)
	}
	if _, err := DotBlocks(a, b, 4); !errors.Is(err, ErrInvalidPartition) {
		t.Fatalf("k=4 with n=6: got %v, want ErrInvalidPartition", err)
	}
	if _, err := DotBlocks(a, b, -3); !errors.Is(err, ErrInvalidPartition) {
		t.Fatalf("k=-3: got %v, want ErrInvalidPartition", err)
	}
}

func BenchmarkDotPairs(b *testing.B) {
	x := tensor.NewVec(256)
	y := tensor.NewVec(256)
	x.FillRand(1)
	y.FillRand(2)
	for b.Loop() {
		if _, err := Dot(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDotBlocks(b *testing.B) {
	x := tensor.NewVec(256)
	y := tensor.NewVec(256)
	x.FillRand(1)
	y.FillRand(2)
	for b.Loop() {
		if _, err := DotBlocks(x, y, 32); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDotSlots(b *testing.B) {
	x := tensor.NewVec(256)
	y := tensor.NewVec(256)
	x.FillRand(1)
	y.FillRand(2)
	for b.Loop() {
		if _, err := dotSlots(x, y, 8); err != nil {
			b.Fatal(err)
		}
	}
}
