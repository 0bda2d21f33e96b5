package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/hupe1980/diskpack/instance"
)

func runGen(ctx context.Context, e *env, fs *flag.FlagSet, args []string) (int, error) {
	var (
		n, side    int
		radius     float64
		seed       int64
		out        string
		configPath string
	)
	fs.IntVar(&n, "n", 1000, "number of candidate points")
	fs.IntVar(&side, "side", 1000, "coordinates are drawn from [0, side)")
	fs.Float64Var(&radius, "radius", 10, "disk radius")
	fs.Int64Var(&seed, "seed", 1, "random seed")
	fs.StringVar(&out, "out", "", "output location; the extension selects compression (.gz, .zst, .lz4)")
	fs.StringVar(&configPath, "config", "", "YAML config file")

	if err := e.setup(fs, args, &configPath, nil); err != nil {
		return 0, err
	}
	if err := requireFlag(fs, "out", out); err != nil {
		return 0, err
	}
	if n < 0 || side < 1 || !(radius > 0) {
		fmt.Fprintln(fs.Output(), "-n must be non-negative, -side and -radius positive")
		return 0, errUsage
	}

	log := e.cfg.newLogger(e.stderr).WithRunID(e.runID)

	loc, err := parseLocation(out)
	if err != nil {
		return 0, err
	}
	st, err := e.stores.open(ctx, loc)
	if err != nil {
		return 0, err
	}

	inst := instance.Uniform(seed, n, side, radius)
	if err := instance.Save(ctx, st, loc.key, inst); err != nil {
		log.LogSave(ctx, loc.String(), 0, err)
		return 0, err
	}
	log.Info("instance generated", "name", loc.String(), "points", n, "side", side, "radius", radius, "seed", seed)
	fmt.Fprintf(e.stdout, "Wrote %d points to %s\n", n, loc)
	return exitOK, nil
}
