package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/parnorm/internal/reduce"
	"github.com/samcharles93/parnorm/internal/tensor"
)

func dotprodCmd() *cli.Command {
	var (
		length    int64
		mode      string
		blockSize int64
	)

	return &cli.Command{
		Name:  "dotprod",
		Usage: "Compute the dot product of two ramp vectors in parallel",
		Flags: append(commonReductionFlags(),
			&cli.Int64Flag{
				Name:        "length",
				Aliases:     []string{"n"},
				Usage:       "vector length (defaults to 10 for pairs mode, 9 for blocks mode)",
				Value:       10,
				Destination: &length,
			},
			&cli.StringFlag{
				Name:        "mode",
				Usage:       "partitioning: pairs (one worker per element) or blocks",
				Value:       "pairs",
				Destination: &mode,
			},
			&cli.Int64Flag{
				Name:        "block-size",
				Aliases:     []string{"k"},
				Usage:       "elements per worker in blocks mode; must divide length evenly",
				Value:       3,
				Destination: &blockSize,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyDotConfig(cmd, LoadConfig(), &length, &blockSize)
			log := buildLogger()

			if mode != "pairs" && mode != "blocks" {
				return fmt.Errorf("unknown mode %q (want pairs or blocks)", mode)
			}
			if mode == "blocks" && !cmd.IsSet("length") && length == 10 {
				// The blocks default block size is 3; keep the default
				// shape valid by matching it.
				length = 9
			}
			if length < 1 {
				return fmt.Errorf("length must be positive, got %d", length)
			}

			a := tensor.NewVec(int(length))
			b := tensor.NewVec(int(length))
			a.FillRamp(start)
			b.FillRamp(start)
			log.Debug("computing dot product", "mode", mode, "length", length, "start", start)

			ref, err := reduce.DotRef(a, b)
			if err != nil {
				return err
			}

			var res float64
			if mode == "pairs" {
				res, err = reduce.Dot(a, b)
			} else {
				res, err = reduce.DotBlocks(a, b, int(blockSize))
			}
			if err != nil {
				return err
			}

			return emitResult("dotprod", "dot product", func() {
				fmt.Println("a =")
				fmt.Println(a.String())
				fmt.Println("b =")
				fmt.Println(b.String())
			}, ref, res)
		},
	}
}
