package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/diskpack"
	"github.com/hupe1980/diskpack/instance"
	"github.com/hupe1980/diskpack/render"
)

func runPack(ctx context.Context, e *env, fs *flag.FlagSet, args []string) (int, error) {
	var (
		in, svgOut, indOut, jsonOut, configPath string
		angles, parallel                        int
	)
	fs.StringVar(&in, "in", "", "instance location")
	fs.StringVar(&svgOut, "svg", "", "write an SVG rendering to this location")
	fs.StringVar(&indOut, "ind", "", "write the selected indices to this location")
	fs.StringVar(&jsonOut, "json", "", "write a JSON solution document to this location")
	fs.IntVar(&angles, "angles", diskpack.DefaultAngleCount, "number of sweep directions")
	fs.IntVar(&parallel, "parallel", 1, "directions swept concurrently")
	fs.StringVar(&configPath, "config", "", "YAML config file")

	err := e.setup(fs, args, &configPath, func(cfg *Config, set map[string]bool) {
		if set["angles"] {
			cfg.Search.Angles = angles
		}
		if set["parallel"] {
			cfg.Search.Parallelism = parallel
		}
	})
	if err != nil {
		return 0, err
	}
	if err := requireFlag(fs, "in", in); err != nil {
		return 0, err
	}

	log := e.cfg.newLogger(e.stderr).WithRunID(e.runID)

	inLoc, err := parseLocation(in)
	if err != nil {
		return 0, err
	}
	outputs := map[string]string{"svg": svgOut, "ind": indOut, "json": jsonOut}
	outLocs := make(map[string]location)
	for kind, s := range outputs {
		if s == "" {
			continue
		}
		if outLocs[kind], err = parseLocation(s); err != nil {
			return 0, err
		}
	}

	inst, err := e.loadInstance(ctx, log, inLoc)
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(e.stdout, "Read %d points with radius %g\n", inst.Len(), inst.Radius)

	metrics := &diskpack.BasicMetricsCollector{}
	start := time.Now()
	res, err := diskpack.Search(ctx, inst.Points, inst.Radius,
		diskpack.WithAngleCount(e.cfg.Search.Angles),
		diskpack.WithParallelism(e.cfg.Search.Parallelism),
		diskpack.WithLogger(log),
		diskpack.WithMetricsCollector(metrics),
	)
	if err != nil {
		return 0, err
	}
	elapsed := time.Since(start)

	fmt.Fprintf(e.stdout, "Found %d independent sets of size:%s\n", len(res.Runs), formatSizes(res))
	fmt.Fprintf(e.stdout, "Best: %d\n", res.Best.Len())

	stats := metrics.GetStats()
	log.Debug("search stats",
		"elapsed", elapsed,
		"direction_avg", time.Duration(stats.DirectionAvgNanos),
		"best", stats.BestPackingSize,
	)

	if loc, ok := outLocs["ind"]; ok {
		var buf bytes.Buffer
		if err := render.WriteIndices(&buf, res.Best); err != nil {
			return 0, err
		}
		if err := e.save(ctx, log, loc, buf.Bytes()); err != nil {
			return 0, err
		}
	}
	if loc, ok := outLocs["json"]; ok {
		var buf bytes.Buffer
		c, err := e.cfg.documentCodec()
		if err != nil {
			return 0, err
		}
		doc := render.NewDocument(inst.Points, inst.Radius, res.Best)
		if err := render.WriteDocument(&buf, doc, c); err != nil {
			return 0, err
		}
		if err := e.save(ctx, log, loc, buf.Bytes()); err != nil {
			return 0, err
		}
	}
	if loc, ok := outLocs["svg"]; ok {
		var buf bytes.Buffer
		err := render.WriteSVG(&buf, inst.Points, inst.Radius, res.Best,
			render.WithImageSize(e.cfg.Render.ImageSize),
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
	return exitOK, nil
}

// formatSizes lists per-direction sizes, starring each new best in sweep order.
func formatSizes(res *diskpack.Result) string {
	var b strings.Builder
	best := -1
	for _, size := range res.Sizes() {
		fmt.Fprintf(&b, " %d", size)
		if size > best {
			best = size
			b.WriteByte('*')
		}
	}
	return b.String()
}

func (e *env) loadInstance(ctx context.Context, log *diskpack.Logger, loc location) (*instance.Instance, error) {
	st, err := e.stores.open(ctx, loc)
	if err != nil {
		return nil, err
	}
	inst, err := instance.Load(ctx, st, loc.key)
	if err != nil {
		log.LogLoad(ctx, loc.String(), 0, 0, err)
		return nil, err
	}
	log.LogLoad(ctx, loc.String(), inst.Len(), inst.Radius, nil)
	return inst, nil
}

func (e *env) save(ctx context.Context, log *diskpack.Logger, loc location, data []byte) error {
	err := e.stores.write(ctx, loc, data)
	log.LogSave(ctx, loc.String(), len(data), err)
	return err
}
