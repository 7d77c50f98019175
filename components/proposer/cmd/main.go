package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"

	"github.com/op-succinct/fault-proof/components/proposer"
	"github.com/op-succinct/fault-proof/components/proposer/metrics"
	kservice "github.com/op-succinct/fault-proof/utils/service"
	klog "github.com/op-succinct/fault-proof/utils/service/log"
	kmetrics "github.com/op-succinct/fault-proof/utils/service/metrics"
)

var (
	Version   = ""
	GitCommit = ""
	GitDate   = ""
)

func main() {
	klog.SetupDefaults()

	app := cli.NewApp()
	app.Version = fmt.Sprintf("%s-%s-%s", Version, GitCommit, GitDate)
	app.Name = "fp-proposer"
	app.Usage = "Fault Proof Proposer Service"
	app.Description = "Service that submits output root proposals to the " +
		"rollup contract, proves them when challenged and claims bonds"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "env-file",
			Usage: "Path to the env file with the proposer configuration",
			Value: ".env.proposer",
		},
	}

	app.Action = Main
	err := app.Run(os.Args)
	if err != nil {
		log.Crit("Application failed", "message", err)
	}
}

func Main(cliCtx *cli.Context) error {
	if err := godotenv.Load(cliCtx.String("env-file")); err != nil {
		log.Warn("Could not load env file, relying on process environment", "err", err)
	}

	cfg, err := proposer.FromEnv()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return kservice.CloseAction(func(ctx context.Context, shutdown <-chan struct{}) error {
		registry := prometheus.NewRegistry()
		metr := metrics.NewMetrics(registry)

		prop, err := proposer.New(ctx, log.Root(), cfg, metr)
		if err != nil {
			return err
		}

		group, gCtx := errgroup.WithContext(ctx)
		group.Go(func() error {
			return kmetrics.ListenAndServe(gCtx, registry, "0.0.0.0", cfg.MetricsPort)
		})
		group.Go(func() error {
			return prop.Start(gCtx)
		})
		return group.Wait()
	})
}
