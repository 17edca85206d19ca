package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/magi42/solarvibe"
	"github.com/magi42/solarvibe/ephemeris"
	"github.com/magi42/solarvibe/stream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/cobra"
)

var (
	cfgFile       string
	catalogueFile string
	verbose       bool

	cfg    solarvibe.Config
	logger kitlog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "solarvibe",
		Short: "Visually scaled solar system engine",
		Long: `Computes the positions of the Sun, planets, dwarf planets and moons from their
Keplerian elements, and places them in a compressed scene where every body is
visible and no moon sits inside its parent.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = solarvibe.LoadConfig(cfgFile); err != nil {
				return err
			}
			if verbose {
				cfg.Log.Level = "debug"
			}
			logger, err = newLogger(cfg.Log, cmd.ErrOrStderr())
			return err
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file (TOML, YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&catalogueFile, "catalogue", "", "catalogue JSON file (default is the built-in solar system)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		planCmd(),
		stateCmd(),
		pathCmd(),
		trajectoryCmd(),
		catalogueCmd(),
		serveCmd(),
		recordCmd(),
		queryCmd(),
	)
	return rootCmd
}

// newEngine builds the engine of the configured catalogue, with the Earth
// spin matching the time of day at t.
func newEngine(t time.Time, opts ...solarvibe.Option) (*solarvibe.Engine, error) {
	cat, err := loadCatalogue(catalogueFile)
	if err != nil {
		return nil, err
	}
	opts = append([]solarvibe.Option{
		solarvibe.WithLogger(logger),
		solarvibe.WithPathSegments(cfg.Engine.PathSegments),
	}, opts...)
	if _, ok := cat.Index("earth"); ok {
		opts = append(opts, solarvibe.WithInitialRotation("earth", solarvibe.EarthInitialRotation(t)))
	}
	return solarvibe.NewEngine(cat, cfg.Scale, opts...), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func planCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the visual radius, orbit scale and alignment of every body",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine(time.Now())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), e.Plan())
		},
	}
}

func stateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Print the scene position and spin of every body at an instant",
		RunE: func(cmd *cobra.Command, args []string) error {
			at, _ := cmd.Flags().GetString("at")
			t, err := parseTime(at)
			if err != nil {
				return err
			}
			e, err := newEngine(t)
			if err != nil {
				return err
			}
			e.Update(t, 0)
			return writeJSON(cmd.OutOrStdout(), e.Snapshot())
		},
	}
	cmd.Flags().String("at", "", "instant, RFC 3339 or \""+dateFormat+"\" UTC (default now)")
	return cmd
}

func pathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path <body>",
		Short: "Print the closed orbit line of a body, relative to its parent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine(time.Now())
			if err != nil {
				return err
			}
			points, err := e.Path(args[0])
			if err != nil {
				return err
			}
			var line []mgl64.Vec3
			for p := range points {
				line = append(line, p)
			}
			return writeJSON(cmd.OutOrStdout(), line)
		},
	}
	return cmd
}

func trajectoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trajectory <body>",
		Short: "Print the scene positions of a body over a time range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, until, step, err := readRange(cmd)
			if err != nil {
				return err
			}
			e, err := newEngine(from)
			if err != nil {
				return err
			}
			b, err := e.Body(args[0])
			if err != nil {
				return err
			}
			states := func(yield func(solarvibe.TrajectoryState) bool) {
				for dt := from; !dt.After(until); dt = dt.Add(step) {
					e.Update(dt, 0)
					if !yield(solarvibe.TrajectoryState{JD: julian.TimeToJD(dt), Position: b.Position()}) {
						return
					}
				}
			}
			return solarvibe.WriteTrajectory(cmd.OutOrStdout(), b.ID(), time.Now(), states)
		},
	}
	rangeFlags(cmd)
	return cmd
}

func catalogueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalogue",
		Short: "Print the catalogue as JSON, or check a catalogue file",
		RunE: func(cmd *cobra.Command, args []string) error {
			check, _ := cmd.Flags().GetBool("check")
			cat, err := loadCatalogue(catalogueFile)
			if err != nil {
				return err
			}
			if check {
				for _, d := range cat.Bodies() {
					level.Info(logger).Log("body", d.ID, "category", d.Category, "parent", d.ParentID, "orbit", d.Orbit != nil)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d bodies OK\n", cat.Len())
				return nil
			}
			name, _ := cmd.Flags().GetString("name")
			return cat.WriteJSON(cmd.OutOrStdout(), name)
		},
	}
	cmd.Flags().Bool("check", false, "only validate the catalogue")
	cmd.Flags().String("name", "solar system", "catalogue name")
	return cmd
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Stream the frames to renderers over websockets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			clock := solarvibe.NewClock(cfg.Clock, nil)
			e, err := newEngine(clock.Instant(), solarvibe.WithMetrics(solarvibe.NewMetrics(reg)))
			if err != nil {
				return err
			}
			srv := stream.NewServer(e, clock, cfg.Stream, logger)

			mux := http.NewServeMux()
			mux.Handle("/ws", srv)
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			httpSrv := &http.Server{Addr: cfg.Stream.Address, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

			errs := make(chan error, 1)
			go func() {
				level.Info(logger).Log("msg", "listening", "addr", cfg.Stream.Address)
				if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					errs <- err
				}
			}()
			runErr := make(chan error, 1)
			go func() { runErr <- srv.Run(ctx) }()

			select {
			case err = <-errs:
				stop()
			case <-ctx.Done():
			}
			<-runErr
			shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if serr := httpSrv.Shutdown(shutdown); serr != nil && err == nil {
				err = serr
			}
			level.Info(logger).Log("msg", "stopped")
			return err
		},
	}
	return cmd
}

func recordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record the scene positions of every body over a time range",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, until, step, err := readRange(cmd)
			if err != nil {
				return err
			}
			e, err := newEngine(from)
			if err != nil {
				return err
			}
			store, err := ephemeris.Open(cfg.Ephemeris.Path, logger)
			if err != nil {
				return err
			}
			defer store.Close()
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			frames, err := store.RecordRange(ctx, e, from, until, step)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d frames recorded in %s\n", frames, cfg.Ephemeris.Path)
			return nil
		},
	}
	rangeFlags(cmd)
	return cmd
}

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <body>",
		Short: "Print the recorded positions of a body over a time range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, until, _, err := readRange(cmd)
			if err != nil {
				return err
			}
			store, err := ephemeris.Open(cfg.Ephemeris.Path, logger)
			if err != nil {
				return err
			}
			defer store.Close()
			states, err := store.Query(cmd.Context(), args[0], from, until)
			if err != nil {
				return err
			}
			if len(states) == 0 {
				return fmt.Errorf("no samples of '%s' in %s", args[0], cfg.Ephemeris.Path)
			}
			return solarvibe.WriteTrajectory(cmd.OutOrStdout(), args[0], time.Now(), slicesOf(states))
		},
	}
	rangeFlags(cmd)
	return cmd
}

func slicesOf(states []solarvibe.TrajectoryState) iter.Seq[solarvibe.TrajectoryState] {
	return func(yield func(solarvibe.TrajectoryState) bool) {
		for _, s := range states {
			if !yield(s) {
				return
			}
		}
	}
}

func rangeFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "start instant (default now)")
	cmd.Flags().String("until", "", "end instant (default one year after the start)")
	cmd.Flags().Duration("step", 0, "time step (default ephemeris.step)")
}

func readRange(cmd *cobra.Command) (from, until time.Time, step time.Duration, err error) {
	fromS, _ := cmd.Flags().GetString("from")
	untilS, _ := cmd.Flags().GetString("until")
	step, _ = cmd.Flags().GetDuration("step")
	if from, err = parseTime(fromS); err != nil {
		return
	}
	if untilS == "" {
		until = solarvibe.AddSeconds(from, solarvibe.YearSeconds)
	} else if until, err = parseTime(untilS); err != nil {
		return
	}
	if until.Before(from) {
		err = fmt.Errorf("%s is before %s", until.Format(dateFormat), from.Format(dateFormat))
		return
	}
	if step == 0 {
		if step, err = time.ParseDuration(cfg.Ephemeris.Step); err != nil {
			err = fmt.Errorf("ephemeris.step: %w", err)
			return
		}
	}
	if step <= 0 {
		err = fmt.Errorf("step must be positive, got %s", step)
	}
	return
}
