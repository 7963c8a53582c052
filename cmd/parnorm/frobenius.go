package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/parnorm/internal/reduce"
	"github.com/samcharles93/parnorm/internal/tensor"
)

func frobeniusCmd() *cli.Command {
	var (
		rows int64
		cols int64
	)

	return &cli.Command{
		Name:  "frobenius",
		Usage: "Compute the Frobenius norm of a ramp matrix, one worker per row",
		Flags: append(commonReductionFlags(),
			&cli.Int64Flag{
				Name:        "rows",
				Aliases:     []string{"m"},
				Usage:       "number of matrix rows",
				Value:       5,
				Destination: &rows,
			},
			&cli.Int64Flag{
				Name:        "cols",
				Aliases:     []string{"n"},
				Usage:       "number of matrix columns",
				Value:       8,
				Destination: &cols,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyMatrixConfig(cmd, LoadConfig(), &rows, &cols)
			log := buildLogger()

			if rows < 1 || cols < 1 {
				return fmt.Errorf("rows and cols must be positive, got %dx%d", rows, cols)
			}
			m := tensor.NewMat(int(rows), int(cols))
			m.FillRamp(start)
			log.Debug("computing Frobenius norm", "rows", rows, "cols", cols, "start", start)

			ref, err := reduce.FrobeniusRef(&m)
			if err != nil {
				return err
			}
			res, err := reduce.Frobenius(&m)
			if err != nil {
				return err
			}

			return emitResult("frobenius", "Frobenius norm", func() {
				fmt.Println("A =")
				fmt.Print(m.String())
			}, ref, res)
		},
	}
}
