package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/galpot/internal/config"
	"github.com/san-kum/galpot/internal/curves"
	"github.com/san-kum/galpot/internal/export"
	"github.com/san-kum/galpot/internal/grid"
	"github.com/san-kum/galpot/internal/orbit"
	"github.com/san-kum/galpot/internal/potential"
	"github.com/san-kum/galpot/internal/registry"
	"github.com/san-kum/galpot/internal/storage"
	"github.com/san-kum/galpot/internal/viz"
)

var (
	dataDir    string
	configFile string
	verbose    bool

	modelName string
	amp       float64
	normalize float64
	phi       float64

	rmin    float64
	rmax    float64
	samples int

	nr, nz     int
	zmin, zmax float64
	density    bool
	savefile   string

	dt       float64
	duration float64
	stepper  string
	initR    float64
	initVR   float64
	initVT   float64
	initZ    float64
	initVZ   float64
	initPhi  float64

	saveRun bool
	svgOut  string

	logger *log.Logger
)

func newLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "galpot",
		Short: "galactic potential toolkit",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger = newLogger(level)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".galpot", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&modelName, "model", "miyamoto", "potential model")
	rootCmd.PersistentFlags().Float64Var(&amp, "amp", 1.0, "amplitude")
	rootCmd.PersistentFlags().Float64Var(&normalize, "normalize", 0, "normalize so |Rforce(1,0)| equals this (0 = off)")

	evalCmd := &cobra.Command{
		Use:   "eval [R] [z]",
		Short: "evaluate potential, forces and density at a point",
		Args:  cobra.ExactArgs(2),
		RunE:  runEval,
	}
	evalCmd.Flags().Float64Var(&phi, "phi", 0, "azimuth (rad)")

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "plot the rotation curve",
		RunE:  runCurve,
	}
	escapeCmd := &cobra.Command{
		Use:   "escape",
		Short: "plot the escape-velocity curve",
		RunE:  runEscape,
	}
	for _, c := range []*cobra.Command{curveCmd, escapeCmd} {
		c.Flags().Float64Var(&rmin, "rmin", config.DefaultRmin, "minimum radius")
		c.Flags().Float64Var(&rmax, "rmax", config.DefaultRmax, "maximum radius")
		c.Flags().IntVar(&samples, "samples", config.DefaultSamples, "number of samples")
		c.Flags().BoolVar(&saveRun, "save", false, "store the curve in the data directory")
		c.Flags().StringVar(&svgOut, "svg", "", "also write an SVG to this path")
	}

	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "render the potential (or density) over an (R,z) grid",
		RunE:  runGrid,
	}
	gridCmd.Flags().Float64Var(&rmin, "rmin", 0, "minimum radius")
	gridCmd.Flags().Float64Var(&rmax, "rmax", 1.5, "maximum radius")
	gridCmd.Flags().IntVar(&nr, "nr", 21, "samples in R")
	gridCmd.Flags().Float64Var(&zmin, "zmin", -0.5, "minimum z")
	gridCmd.Flags().Float64Var(&zmax, "zmax", 0.5, "maximum z")
	gridCmd.Flags().IntVar(&nz, "nz", 21, "samples in z")
	gridCmd.Flags().BoolVar(&density, "density", false, "sample density instead of potential")
	gridCmd.Flags().StringVar(&savefile, "savefile", "", "cache the grid in this file")

	orbitCmd := &cobra.Command{
		Use:   "orbit",
		Short: "integrate a test-particle orbit",
		RunE:  runOrbit,
	}
	orbitCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	orbitCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	orbitCmd.Flags().StringVar(&stepper, "stepper", "rk4", "integrator (rk4, euler)")
	orbitCmd.Flags().Float64Var(&initR, "r", 1.0, "initial radius")
	orbitCmd.Flags().Float64Var(&initVR, "vr", 0.0, "initial radial velocity")
	orbitCmd.Flags().Float64Var(&initVT, "vt", 1.0, "initial tangential velocity")
	orbitCmd.Flags().Float64Var(&initZ, "z", 0.0, "initial height")
	orbitCmd.Flags().Float64Var(&initVZ, "vz", 0.0, "initial vertical velocity")
	orbitCmd.Flags().Float64Var(&initPhi, "phi", 0.0, "initial azimuth")
	orbitCmd.Flags().BoolVar(&saveRun, "save", false, "store the orbit in the data directory")
	orbitCmd.Flags().StringVar(&svgOut, "svg", "", "write the meridional trace as SVG")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactively explore the rotation curve",
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&rmin, "rmin", config.DefaultRmin, "minimum radius")
	liveCmd.Flags().Float64Var(&rmax, "rmax", config.DefaultRmax, "maximum radius")
	liveCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "number of samples")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list models and stored runs",
		RunE:  runList,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	rootCmd.AddCommand(evalCmd, curveCmd, escapeCmd, gridCmd, orbitCmd, liveCmd, listCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildPotentials resolves the composition from the config file when
// given, otherwise from the --model/--amp flags.
func buildPotentials() ([]potential.Potential, []string, error) {
	reg := registry.New()

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, nil, err
		}
		pots, err := cfg.BuildPotentials(reg)
		if err != nil {
			return nil, nil, err
		}
		names := make([]string, len(cfg.Components))
		for i, c := range cfg.Components {
			names[i] = c.Model
		}
		logger.Debug("composition built from config", "path", configFile, "components", len(pots))
		return pots, names, nil
	}

	p, err := reg.Get(modelName, map[string]float64{"amp": amp})
	if err != nil {
		return nil, nil, err
	}
	if normalize > 0 {
		if err := potential.Normalize(p, normalize); err != nil {
			return nil, nil, err
		}
		logger.Debug("normalized", "model", modelName, "target", normalize, "amp", p.Amplitude())
	}
	return []potential.Potential{p}, []string{modelName}, nil
}

func runEval(cmd *cobra.Command, args []string) error {
	R, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid R: %w", err)
	}
	z, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid z: %w", err)
	}

	pots, names, err := buildPotentials()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "composition\t%s\n", strings.Join(names, " + "))
	fmt.Fprintf(w, "position\tR=%.4f z=%.4f phi=%.4f\n", R, z, phi)

	if v, err := potential.EvaluatePotentials(R, z, pots, phi); err == nil {
		fmt.Fprintf(w, "Phi\t%.8f\n", v)
	} else {
		fmt.Fprintf(w, "Phi\t%v\n", err)
	}
	if v, err := potential.EvaluateRforces(R, z, pots, phi); err == nil {
		fmt.Fprintf(w, "K_R\t%.8f\n", v)
	} else {
		fmt.Fprintf(w, "K_R\t%v\n", err)
	}
	if v, err := potential.EvaluateZforces(R, z, pots, phi); err == nil {
		fmt.Fprintf(w, "K_z\t%.8f\n", v)
	} else {
		fmt.Fprintf(w, "K_z\t%v\n", err)
	}
	if v, err := potential.EvaluatePhiforces(R, z, pots, phi); err == nil {
		fmt.Fprintf(w, "K_phi\t%.8f\n", v)
	}
	if v, err := potential.EvaluateDensities(R, z, pots, phi); err == nil {
		fmt.Fprintf(w, "rho\t%.8f\n", v)
	} else {
		fmt.Fprintf(w, "rho\t%v\n", err)
	}
	return nil
}

func sampledCurve(kind string) ([]curves.Sample, []string, error) {
	pots, names, err := buildPotentials()
	if err != nil {
		return nil, nil, err
	}

	var cs []curves.Sample
	switch kind {
	case "rotation":
		cs, err = curves.Rotation(pots, rmin, rmax, samples)
	case "escape":
		cs, err = curves.Escape(pots, rmin, rmax, samples)
	}
	if err != nil {
		return nil, nil, err
	}
	return cs, names, nil
}

func finishCurve(kind string, cs []curves.Sample, names []string) error {
	fmt.Print(viz.RenderCurve(kind+" curve — "+strings.Join(names, " + "), cs, 72, 16))

	if svgOut != "" {
		if err := export.WriteFile(svgOut, export.CurveToSVG(cs, 800, 500)); err != nil {
			return err
		}
		logger.Info("svg written", "path", svgOut)
	}
	if saveRun {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.SaveCurve(kind, names, cs)
		if err != nil {
			return err
		}
		logger.Info("run stored", "id", runID)
	}
	return nil
}

func runCurve(cmd *cobra.Command, args []string) error {
	cs, names, err := sampledCurve("rotation")
	if err != nil {
		return err
	}
	return finishCurve("rotation", cs, names)
}

func runEscape(cmd *cobra.Command, args []string) error {
	cs, names, err := sampledCurve("escape")
	if err != nil {
		return err
	}
	return finishCurve("escape", cs, names)
}

func runGrid(cmd *cobra.Command, args []string) error {
	pots, names, err := buildPotentials()
	if err != nil {
		return err
	}

	sp := grid.Spec{Rmin: rmin, Rmax: rmax, NR: nr, Zmin: zmin, Zmax: zmax, NZ: nz}
	quantity := "potential"
	compute := func() (*grid.Grid, error) { return grid.EvaluatePotentials(pots, sp) }
	if density {
		quantity = "density"
		compute = func() (*grid.Grid, error) { return grid.EvaluateDensities(pots, sp) }
	}

	var g *grid.Grid
	if savefile != "" {
		g, err = grid.Cached(savefile, compute)
	} else {
		g, err = compute()
	}
	if err != nil {
		return err
	}

	fmt.Print(viz.RenderGrid(quantity+" — "+strings.Join(names, " + "), g))
	return nil
}

func runOrbit(cmd *cobra.Command, args []string) error {
	pots, names, err := buildPotentials()
	if err != nil {
		return err
	}

	var step orbit.Stepper
	switch stepper {
	case "rk4":
		step = orbit.NewRK4()
	case "euler":
		step = orbit.NewEuler()
	default:
		return fmt.Errorf("unknown stepper: %s", stepper)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s0 := orbit.NewState(initR, initVR, initVT, initZ, initVZ, initPhi)
	cfg := orbit.Config{Dt: dt, Duration: duration, ValidateState: true}

	res, err := orbit.Integrate(ctx, pots, s0, step, cfg)
	if err != nil {
		return err
	}

	rs := make([]curves.Sample, len(res.States))
	for i, s := range res.States {
		rs[i] = curves.Sample{R: res.Times[i], V: s[orbit.IdxR]}
	}
	fmt.Print(viz.RenderCurve("R(t) — "+strings.Join(names, " + "), rs, 72, 16))
	logger.Info("orbit integrated", "steps", res.StepsTaken, "energy_drift", res.EnergyDrift)

	if svgOut != "" {
		if err := export.WriteFile(svgOut, export.OrbitToSVG(res, 800, 600)); err != nil {
			return err
		}
		logger.Info("svg written", "path", svgOut)
	}
	if saveRun {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.SaveOrbit(names, res, cfg)
		if err != nil {
			return err
		}
		logger.Info("run stored", "id", runID)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	pots, names, err := buildPotentials()
	if err != nil {
		return err
	}

	m := viz.NewLive(pots, names, rmin, rmax, samples)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func runList(cmd *cobra.Command, args []string) error {
	reg := registry.New()
	fmt.Println("models:")
	for _, name := range reg.List() {
		fmt.Printf("  %s\n", name)
	}

	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Println("\nruns:")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "  ID\tKIND\tCOMPONENTS\tSAMPLES\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%d\t%s\n",
			r.ID, r.Kind, strings.Join(r.Components, "+"), r.Samples,
			r.Timestamp.Format("2006-01-02 15:04"))
	}
	return nil
}
