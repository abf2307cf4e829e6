package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/pflag"

	"github.com/certsource/certreg/genesis"
	"github.com/certsource/certreg/offline"
	"github.com/certsource/certreg/submit"
)

func (a *app) runGenesis(args []string) error {
	fs := pflag.NewFlagSet("genesis", pflag.ContinueOnError)
	descriptorPath := fs.StringP("descriptor", "d", "genesis.yaml", "agent descriptor file")
	output := fs.StringP("output", "o", "certreg-genesis.batch", "batch file to write")
	keyDir := fs.String("keys-directory", "", "directory to escrow generated keys (defaults to the configured key dir)")
	dryRun := fs.Bool("dry-run", false, "build and validate without writing anything")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := os.Open(*descriptorPath)
	if err != nil {
		return fmt.Errorf("opening descriptor: %w", err)
	}
	defer f.Close()

	agents, err := genesis.Parse(f)
	if err != nil {
		return err
	}
	result, err := genesis.Build(agents, time.Now())
	if err != nil {
		return err
	}
	a.log.Infow("genesis list built", "agents", len(agents), "batches", len(result.List.Batches))
	if *dryRun {
		return nil
	}

	dir := *keyDir
	if dir == "" {
		dir = a.cfg.KeyDir
	}
	if err := genesis.StoreKeys(result, dir); err != nil {
		return err
	}

	// Staged through the offline gateway: same pipeline, no network.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	conn := offline.NewConnection(*output)
	w := &submit.Waiter{Interval: a.cfg.PollInterval, Logger: a.log}
	if err := w.Run(ctx, conn, result.List); err != nil {
		return err
	}
	a.log.Infow("genesis batch file staged", "path", conn.Path(), "keys", dir)
	return nil
}
