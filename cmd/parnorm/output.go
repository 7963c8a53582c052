package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/samcharles93/parnorm/internal/reduce"
)

type cliResult struct {
	Op        string  `json:"op"`
	Reference float64 `json:"reference"`
	Result    float64 `json:"result"`
	Match     bool    `json:"match"`
	Tolerance float64 `json:"tolerance"`
}

// emitResult prints the outcome in text or JSON form and returns an error
// when the parallel result does not match the reference, so a mismatch
// exits non-zero.
func emitResult(op, label string, printBuffers func(), ref, res float64) error {
	match := reduce.Close(ref, res, tolerance)

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(cliResult{
			Op:        op,
			Reference: ref,
			Result:    res,
			Match:     match,
			Tolerance: tolerance,
		}); err != nil {
			return err
		}
	} else {
		printBuffers()
		fmt.Printf("\n%s (reference) = %f\n", label, ref)
		fmt.Printf("%s (parallel)  = %f\n", label, res)
		if match {
			fmt.Println("OK")
		}
	}

	if !match {
		return fmt.Errorf("%s: parallel result %g differs from reference %g by more than %g", op, res, ref, tolerance)
	}
	return nil
}
