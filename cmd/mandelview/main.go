package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/mandelview/audio"
	"github.com/lixenwraith/mandelview/config"
	"github.com/lixenwraith/mandelview/constants"
	"github.com/lixenwraith/mandelview/engine"
	"github.com/lixenwraith/mandelview/fractal"
	"github.com/lixenwraith/mandelview/headless"
	"github.com/lixenwraith/mandelview/logger"
	"github.com/lixenwraith/mandelview/terminal"
	"github.com/lixenwraith/mandelview/window"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the viewer crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			crash(fmt.Sprintf("MANDELVIEW CRASHED: %v", r), debug.Stack())
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "mandelview: %v\n", err)
		os.Exit(1)
	}
}

// crash prints a red banner and stack trace; \r\n keeps raw-mode terminals from zig-zagging
func crash(banner string, stack []byte) {
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "\r\n%s\r\n", banner)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	cmd := &cobra.Command{
		Use:   "mandelview",
		Short: "Interactive Mandelbrot viewer with progressive refinement",
		Long: `mandelview renders the Mandelbrot set and refines it while idle.

Arrow keys (or h/j/k/l) pan, the mouse wheel zooms, q or Esc quits.
The terminal backend draws with half-block characters, the window backend
opens an 800x800 window, and the headless backend replays a script and
writes PNG snapshots.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), s)
		},
	}

	if err := config.RegisterFlags(cmd, v); err != nil {
		panic(err)
	}
	return cmd
}

func run(ctx context.Context, s *config.Settings) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log, logFile, err := logger.Setup(s.Debug, s.LogDir)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	log.WithFields(logrus.Fields{
		"backend": s.Backend,
		"workers": s.Workers,
		"audio":   s.Audio,
	}).Info("starting")

	opts := []engine.ControllerOption{
		engine.WithLogger(log),
		engine.WithEngine(fractal.NewEngine(fractal.WithWorkers(s.Workers), fractal.WithLogger(log))),
		engine.WithObserver(engine.LogObserver{Log: log}),
	}

	if s.Audio {
		player := audio.NewCuePlayer(audio.DefaultConfig(), audio.WithLogger(log))
		if err := player.Init(); err != nil {
			log.WithError(err).Warn("audio initialization failed, continuing without audio")
		} else {
			defer player.Close()
			opts = append(opts, engine.WithObserver(player))
		}
	}

	switch s.Backend {
	case config.BackendWindow:
		c := engine.NewController(constants.SurfaceWidth, constants.SurfaceHeight, opts...)
		if err := window.Run(ctx, c, window.WithLogger(log)); err != nil {
			return fmt.Errorf("window: %w", err)
		}
		return nil

	case config.BackendHeadless:
		return runHeadless(ctx, s, log, opts)

	default:
		return runTerminal(ctx, s, log, opts)
	}
}

func runTerminal(ctx context.Context, s *config.Settings, log *logrus.Entry, opts []engine.ControllerOption) error {
	b, err := terminal.New(s.Color, terminal.WithLogger(log))
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer b.Close()

	w, h := b.Size()
	c := engine.NewController(w, h, opts...)
	return engine.Run(ctx, c, b, engine.NewTickPacer(constants.TickInterval))
}

func runHeadless(ctx context.Context, s *config.Settings, log *logrus.Entry, opts []engine.ControllerOption) error {
	b, err := headless.New(s.Script, s.Out, s.Every, headless.WithLogger(log))
	if err != nil {
		return fmt.Errorf("headless: %w", err)
	}

	w, h := b.Size()
	c := engine.NewController(w, h, opts...)
	if err := engine.Run(ctx, c, b, engine.NoopPacer{}); err != nil {
		return err
	}
	if err := b.Close(); err != nil {
		return fmt.Errorf("headless: %w", err)
	}

	fmt.Printf("%s %d frames, %d snapshots in %s (quality %d, %s)\n",
		color.GreenString("[mandelview]"), b.Presented(), len(b.Written()), s.Out,
		c.State().Quality, c.Phase())
	return nil
}
