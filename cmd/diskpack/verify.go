package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"

	"github.com/hupe1980/diskpack"
	"github.com/hupe1980/diskpack/render"
)

// maxExitErrors caps the error count reported through the exit status.
const maxExitErrors = 125

func runVerify(ctx context.Context, e *env, fs *flag.FlagSet, args []string) (int, error) {
	var in, solution, svgOut, configPath string
	fs.StringVar(&in, "in", "", "instance location")
	fs.StringVar(&solution, "solution", "", "solution location (.ind format)")
	fs.StringVar(&svgOut, "svg", "", "write an SVG with conflicts highlighted")
	fs.StringVar(&configPath, "config", "", "YAML config file")

	if err := e.setup(fs, args, &configPath, nil); err != nil {
		return 0, err
	}
	if err := requireFlag(fs, "in", in); err != nil {
		return 0, err
	}
	if err := requireFlag(fs, "solution", solution); err != nil {
		return 0, err
	}

	log := e.cfg.newLogger(e.stderr).WithRunID(e.runID)

	inLoc, err := parseLocation(in)
	if err != nil {
		return 0, err
	}
	solLoc, err := parseLocation(solution)
	if err != nil {
		return 0, err
	}

	inst, err := e.loadInstance(ctx, log, inLoc)
	if err != nil {
		return 0, err
	}
	data, err := e.stores.read(ctx, solLoc)
	if err != nil {
		return 0, fmt.Errorf("read solution %s: %w", solLoc, err)
	}
	sol, err := render.ReadIndices(bytes.NewReader(data))
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(e.stdout, "Size: %d\n", len(sol))

	conflicts := diskpack.Conflicts(inst.Points, inst.Radius, sol)
	if err := diskpack.Verify(inst.Points, inst.Radius, sol); err != nil {
		fmt.Fprintf(e.stdout, "First error: %v\n", err)
	}
	if len(conflicts) == 0 {
		fmt.Fprintln(e.stdout, "Solution is correct")
		if free := diskpack.Uncovered(inst.Points, inst.Radius, sol); len(free) > 0 {
			fmt.Fprintf(e.stdout, "Solution is not maximal: %d candidates can still be added\n", len(free))
		} else {
			fmt.Fprintln(e.stdout, "Solution is maximal")
		}
	} else {
		fmt.Fprintf(e.stdout, "There are %d errors\n", len(conflicts))
	}
	log.Info("solution verified", "size", len(sol), "conflicts", len(conflicts))

	if svgOut != "" {
		loc, err := parseLocation(svgOut)
		if err != nil {
			return 0, err
		}
		var buf bytes.Buffer
		err = render.WriteSVG(&buf, inst.Points, inst.Radius, sol,
			render.WithImageSize(e.cfg.Render.ImageSize),
			render.WithConflicts(conflicts),
			render.WithSummary(),
		)
		if err != nil {
			return 0, err
		}
		if err := e.save(ctx, log, loc, buf.Bytes()); err != nil {
			return 0, err
		}
		fmt.Fprintf(e.stdout, "Solution saved to %s\n", loc)
	}

	return min(len(conflicts), maxExitErrors), nil
}
