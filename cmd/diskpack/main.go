// Command diskpack packs equal-radius disks from a candidate point set.
//
// Usage:
//
//	diskpack pack   -in LOC [-svg LOC] [-ind LOC] [-json LOC] [-angles n] [-parallel p] [-config file]
//	diskpack verify -in LOC -solution LOC [-svg LOC] [-config file]
//	diskpack gen    -n N -side S -radius R [-seed K] -out LOC
//
// LOC is a local path, s3://bucket/key or minio://bucket/key.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// env carries what every subcommand needs.
type env struct {
	cfg    Config
	stores *stores
	stdout io.Writer
	stderr io.Writer
	runID  string
}

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, e *env, fs *flag.FlagSet, args []string) (int, error)
}

var commands = []command{
	{"pack", "compute a packing for an instance", runPack},
	{"verify", "check a solution against an instance", runVerify},
	{"gen", "generate a random instance", runGen},
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: diskpack <command> [flags]")
	fmt.Fprintln(w)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.usage)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	var cmd *command
	for i := range commands {
		if commands[i].name == args[0] {
			cmd = &commands[i]
		}
	}
	if cmd == nil {
		if args[0] == "-h" || args[0] == "help" || args[0] == "--help" {
			usage(stdout)
			return exitOK
		}
		fmt.Fprintf(stderr, "diskpack: unknown command %q\n", args[0])
		usage(stderr)
		return exitUsage
	}

	fs := flag.NewFlagSet("diskpack "+cmd.name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	e := &env{stdout: stdout, stderr: stderr, runID: uuid.NewString()}
	code, err := cmd.run(ctx, e, fs, args[1:])
	switch {
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		return exitUsage
	case err != nil:
		fmt.Fprintf(stderr, "diskpack %s: %v\n", cmd.name, err)
		return exitError
	}
	return code
}

// setup parses flags, loads the config file and applies flag overrides.
func (e *env) setup(fs *flag.FlagSet, args []string, configPath *string, override func(cfg *Config, set map[string]bool)) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(e.stderr, "unexpected arguments: %v\n", fs.Args())
		return errUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if override != nil {
		override(&cfg, set)
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	e.cfg = cfg
	e.stores = newStores(&e.cfg)
	return nil
}

func requireFlag(fs *flag.FlagSet, name, value string) error {
	if value == "" {
		fmt.Fprintf(fs.Output(), "flag -%s is required\n", name)
		fs.Usage()
		return errUsage
	}
	return nil
}
