// Package main provides the estimator CLI.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/born-ml/estimator/internal/config"
	"github.com/born-ml/estimator/internal/download"
	"github.com/born-ml/estimator/internal/progress"
)

var version = "v0.1.0-dev"

func main() {
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	defer klog.Flush()

	app := newApp(klogFlags)
	if err := app.Run(os.Args); err != nil {
		klog.Errorf("%+v", err)
		klog.Flush()
		os.Exit(1)
	}
}

func newApp(klogFlags *flag.FlagSet) *cli.App {
	flags := []cli.Flag{
		&cli.IntFlag{
			Name:     "verbosity",
			Usage:    "klog verbosity level",
			EnvVars:  []string{"ESTIMATOR_VERBOSITY"},
			Category: "logging",
		},
	}
	flags = append(flags, klogCLIFlags(klogFlags)...)

	return &cli.App{
		Name:    "estimator",
		Usage:   "Run tensor ops and fetch datasets with a wget-style progress bar",
		Version: version,
		Flags:   flags,
		Before: func(c *cli.Context) error {
			if err := applyKlogFlags(c, klogFlags); err != nil {
				return err
			}
			if !c.IsSet("verbosity") {
				return nil
			}
			return setVerbosity(klogFlags, c.Int("verbosity"))
		},
		Commands: []*cli.Command{
			versionCommand(),
			barCommand(),
			downloadCommand(klogFlags),
			opsCommand(),
		},
	}
}

// klogCLIFlags mirrors klog's flags (-logtostderr, -vmodule, ...) as global
// cli flags. "v" is skipped: the cli reserves -v for --version, so
// verbosity is exposed as --verbosity instead.
func klogCLIFlags(klogFlags *flag.FlagSet) []cli.Flag {
	var out []cli.Flag
	klogFlags.VisitAll(func(f *flag.Flag) {
		if f.Name == "v" {
			return
		}
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			def, _ := strconv.ParseBool(f.DefValue)
			out = append(out, &cli.BoolFlag{Name: f.Name, Usage: f.Usage, Value: def, Category: "logging"})
			return
		}
		out = append(out, &cli.StringFlag{Name: f.Name, Usage: f.Usage, Value: f.DefValue, Category: "logging"})
	})
	return out
}

// applyKlogFlags copies the klog flags given on the command line into
// klogFlags.
func applyKlogFlags(c *cli.Context, klogFlags *flag.FlagSet) error {
	var err error
	klogFlags.VisitAll(func(f *flag.Flag) {
		if err != nil || f.Name == "v" || !c.IsSet(f.Name) {
			return
		}
		value := c.String(f.Name)
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			value = strconv.FormatBool(c.Bool(f.Name))
		}
		err = errors.Wrapf(klogFlags.Set(f.Name, value), "set klog flag %s", f.Name)
	})
	return err
}

func setVerbosity(klogFlags *flag.FlagSet, level int) error {
	return errors.Wrap(klogFlags.Set("v", strconv.Itoa(level)), "set klog verbosity")
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version",
		Action: func(c *cli.Context) error {
			fmt.Fprintf(c.App.Writer, "estimator %s\n", version)
			return nil
		},
	}
}

func barCommand() *cli.Command {
	return &cli.Command{
		Name:      "bar",
		Usage:     "Print the progress bar for CURRENT of TOTAL bytes",
		ArgsUsage: "CURRENT TOTAL",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Aliases: []string{"w"}, Value: progress.DefaultWidth, Usage: "line width"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("bar: expected CURRENT and TOTAL", 2)
			}
			current, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
			if err != nil {
				return errors.Wrap(err, "parse CURRENT")
			}
			total, err := strconv.ParseInt(c.Args().Get(1), 10, 64)
			if err != nil {
				return errors.Wrap(err, "parse TOTAL")
			}
			fmt.Fprintln(c.App.Writer, progress.Bar(current, total, c.Int("width")))
			return nil
		},
	}
}

func downloadCommand(klogFlags *flag.FlagSet) *cli.Command {
	return &cli.Command{
		Name:      "download",
		Usage:     "Download URL into the data directory with a live progress bar",
		ArgsUsage: "URL",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Usage: "target directory (overrides data_dir)"},
			&cli.StringFlag{Name: "name", Aliases: []string{"o"}, Usage: "output file name"},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("download: expected URL", 2)
			}

			cfg := config.Default()
			if path := c.String("config"); path != "" {
				var err error
				if cfg, err = config.LoadFromFile(path); err != nil {
					return err
				}
				if !c.IsSet("verbosity") && cfg.LogVerbosity > 0 {
					if err := setVerbosity(klogFlags, cfg.LogVerbosity); err != nil {
						return err
					}
				}
			}
			dir := cfg.DataDir
			if c.IsSet("dir") {
				dir = c.String("dir")
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return errors.Wrapf(err, "create %s", dir)
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			printer := progress.NewPrinter(progress.Options{Width: cfg.BarWidth})
			path, err := download.Download(ctx, c.Args().First(), dir, download.Options{
				Client:    &http.Client{Timeout: cfg.Timeout},
				Filename:  c.String("name"),
				ChunkSize: cfg.ChunkSize,
				Progress:  printer.Update,
			})
			printer.Done()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, path)
			return nil
		},
	}
}
