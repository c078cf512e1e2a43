// Command wlinfo connects to a wayland compositor and describes what it
// offers.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/elliotmr/wlclient/internal/config"
	"github.com/elliotmr/wlclient/internal/logging"
	"github.com/elliotmr/wlclient/wl"
	"github.com/elliotmr/wlclient/wl/wlp"
)

type options struct {
	configPath string
	display    string
	logLevel   string
	outputs    bool
	shm        bool
	monitor    bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("wlinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "TOML config file")
	fs.StringVar(&o.display, "display", "", "socket name or path, overrides "+config.EnvDisplay)
	fs.StringVar(&o.logLevel, "log-level", "", "trace, debug, info, warn, error or off")
	fs.BoolVar(&o.outputs, "outputs", false, "describe every wl_output")
	fs.BoolVar(&o.shm, "shm", false, "list wl_shm pixel formats")
	fs.BoolVar(&o.monitor, "monitor", false, "print registry changes until interrupted")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, errors.Errorf("unexpected arguments: %v", fs.Args())
	}
	return o, nil
}

func loadConfig(o options) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}
	cfg.ApplyEnv()
	if o.display != "" {
		cfg.Display = o.display
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	logging.New(cfg.Log, stderr, "wlinfo")

	c, err := wl.Connect(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	printGlobals(stdout, c.Globals())

	if o.outputs {
		screens, err := c.Screens()
		if err != nil {
			return errors.Wrap(err, "unable to describe outputs")
		}
		for _, s := range screens {
			printScreen(stdout, s.Output().ID(), s.Info())
		}
	}
	if o.shm {
		shm, err := c.Shm()
		if err != nil {
			return err
		}
		printFormats(stdout, shm.Formats())
	}
	if o.monitor {
		return monitor(ctx, c, stdout)
	}
	return nil
}

func printGlobals(w io.Writer, globals []wl.Global) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tINTERFACE\tVERSION")
	for _, g := range globals {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", g.Name, g.Interface, g.Version)
	}
	tw.Flush()
}

func printScreen(w io.Writer, id uint32, info wl.ScreenInfo) {
	fmt.Fprintf(w, "\nwl_output@%d", id)
	if info.Name != "" {
		fmt.Fprintf(w, " %s", info.Name)
	}
	fmt.Fprintln(w)
	if info.Description != "" {
		fmt.Fprintf(w, "  description: %s\n", info.Description)
	}
	fmt.Fprintf(w, "  make: %s model: %s\n", info.Make, info.Model)
	fmt.Fprintf(w, "  position: %d,%d physical: %dx%d mm\n", info.X, info.Y, info.PhysicalWidth, info.PhysicalHeight)
	fmt.Fprintf(w, "  mode: %dx%d @ %.3f Hz scale: %d transform: %d\n",
		info.Width, info.Height, float64(info.Refresh)/1000, info.Factor, info.Transform)
}

func printFormats(w io.Writer, formats []uint32) {
	fmt.Fprintln(w, "\nwl_shm formats:")
	for _, f := range formats {
		fmt.Fprintf(w, "  0x%08x %s\n", f, wl.FormatName(f))
	}
}

func monitor(ctx context.Context, c *wl.Client, w io.Writer) error {
	q := wl.NewQueue(0, nil)
	c.Context().AddObjectListener(c.Registry(), q)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-c.Context().Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	for {
		ev, err := q.Wait(ctx)
		if err != nil {
			if cerr := c.Err(); cerr != nil && !errors.Is(cerr, wlp.ErrClosed) {
				return cerr
			}
			return nil
		}
		printRegistryEvent(w, ev)
	}
}

func printRegistryEvent(w io.Writer, ev wlp.Event) {
	if g, ok := ev.AsGlobal(); ok {
		fmt.Fprintf(w, "+ %d %s v%d\n", g.Name, g.Interface, g.Version)
		return
	}
	if name, ok := ev.AsGlobalRemove(); ok {
		fmt.Fprintf(w, "- %d\n", name)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal().Err(err).Msg("wlinfo failed")
	}
}
