package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/parnorm/internal/api"
	"github.com/samcharles93/parnorm/internal/logger"
)

func serveCmd() *cli.Command {
	var (
		addr        string
		readTimeout time.Duration
		ratePerSec  float64
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the reduction REST API",
		Flags: append(loggingFlags(),
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
			&cli.DurationFlag{
				Name:        "read-timeout",
				Usage:       "read timeout",
				Value:       30 * time.Second,
				Destination: &readTimeout,
			},
			&cli.Float64Flag{
				Name:        "rate",
				Usage:       "max requests per second (0 disables limiting)",
				Value:       50,
				Destination: &ratePerSec,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyServeConfig(cmd, LoadConfig(), &addr, &ratePerSec)
			log := buildLogger()
			ctx = logger.WithContext(ctx, log)

			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			if ratePerSec > 0 {
				burst := max(int(ratePerSec), 1)
				e.Use(api.RateLimiter(ratePerSec, burst))
			}
			api.NewServer().Register(e)

			log.Info("starting server", "address", addr, "rate", ratePerSec)
			sc := echo.StartConfig{
				Address: addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = readTimeout
					return nil
				},
			}
			return sc.Start(ctx, e)
		},
	}
}
