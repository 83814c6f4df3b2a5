package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/diffuse1d/internal/config"
	"github.com/san-kum/diffuse1d/internal/diffusion"
	"github.com/san-kum/diffuse1d/internal/field"
	"github.com/san-kum/diffuse1d/internal/grid"
	"github.com/san-kum/diffuse1d/internal/metrics"
	"github.com/san-kum/diffuse1d/internal/storage"
	"github.com/san-kum/diffuse1d/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir     string
	length      float64
	dx          float64
	diffusivity float64
	steps       int
	left        float64
	right       float64
	dt          float64
	profile     string
	frameStride int
	configFile  string
	preset      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "diffuse1d",
		Short: "1D explicit diffusion simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".diffuse1d", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a diffusion simulation",
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run profiles",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run frames to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark step throughput across grid sizes",
		RunE:  benchSizes,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "list available initial profiles",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range grid.ProfileNames() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd, liveCmd, benchCmd, presetsCmd, profilesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&length, "length", config.DefaultLength, "domain length")
	cmd.Flags().Float64Var(&dx, "dx", config.DefaultDx, "grid spacing")
	cmd.Flags().Float64Var(&diffusivity, "diffusivity", config.DefaultDiffusivity, "diffusivity D")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of explicit updates")
	cmd.Flags().Float64Var(&left, "left", config.DefaultLeft, "left boundary value")
	cmd.Flags().Float64Var(&right, "right", config.DefaultRight, "right boundary value")
	cmd.Flags().Float64Var(&dt, "dt", 0, "timestep (0 = stability limit)")
	cmd.Flags().StringVar(&profile, "profile", "step", "initial profile")
	cmd.Flags().IntVar(&frameStride, "frames", 0, "record every k-th field (0 = final only)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig merges preset, config file and CLI flags, flags winning.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("length") {
		cfg.Length = length
	}
	if cmd.Flags().Changed("dx") {
		cfg.Dx = dx
	}
	if cmd.Flags().Changed("diffusivity") {
		cfg.Diffusivity = diffusivity
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("left") {
		cfg.Left = left
	}
	if cmd.Flags().Changed("right") {
		cfg.Right = right
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = profile
	}
	if cmd.Flags().Changed("frames") {
		cfg.FrameStride = frameStride
	}

	return cfg, nil
}

// setup builds the grid, initial field and integrator from a config.
func setup(cfg *config.Config) (*grid.Grid, field.Field, *diffusion.Integrator, error) {
	g, err := grid.New(cfg.Length, cfg.Dx)
	if err != nil {
		return nil, nil, nil, err
	}

	prof, err := grid.GetProfile(cfg.Profile)
	if err != nil {
		return nil, nil, nil, err
	}
	initial := prof(g, cfg.Left, cfg.Right)

	integ, err := diffusion.New(diffusion.Params{
		Diffusivity: cfg.Diffusivity,
		Dx:          cfg.Dx,
		Left:        cfg.Left,
		Right:       cfg.Right,
		Dt:          cfg.Dt,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	return g, initial, integ, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	_, initial, integ, err := setup(cfg)
	if err != nil {
		return err
	}

	integ.AddMetric(metrics.NewMass(cfg.Dx))
	integ.AddMetric(metrics.NewSteadyStateResidual())
	integ.AddMetric(metrics.NewSpan())

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s profile, %d nodes, %d steps...\n", cfg.Profile, len(initial), cfg.Steps)
	start := time.Now()

	result, err := integ.Run(context.Background(), initial, diffusion.RunConfig{
		Steps:       cfg.Steps,
		FrameStride: cfg.FrameStride,
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunMetadata{
		Profile:     cfg.Profile,
		Length:      cfg.Length,
		Dx:          cfg.Dx,
		Diffusivity: cfg.Diffusivity,
		Dt:          integ.Dt(),
		Steps:       result.StepsTaken,
		Left:        cfg.Left,
		Right:       cfg.Right,
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("dt: %.6g (diffusion number %.3f)\n", integ.Dt(), cfg.Diffusivity*integ.Dt()/(cfg.Dx*cfg.Dx))
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	fmt.Println()
	fmt.Println(viz.PlotPair(initial, result.Final, "initial vs final"))

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROFILE\tTIME\tNODES\tSTEPS\tDT\tD")

	for _, run := range runs {
		nodes := int(run.Length/run.Dx) + 1
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.4g\t%.4g\n",
			run.ID,
			run.Profile,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			nodes,
			run.Steps,
			run.Dt,
			run.Diffusivity,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, times, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("profile: %s\n", meta.Profile)
	fmt.Printf("frames: %d\n\n", len(frames))

	first := frames[0]
	last := frames[len(frames)-1]

	if len(frames) > 1 {
		fmt.Println(viz.Plot(first, fmt.Sprintf("t = %.4f", times[0])))
		fmt.Println()
	}
	fmt.Println(viz.Plot(last, fmt.Sprintf("t = %.4f", times[len(times)-1])))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, nil, nil)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, times, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to export")
	}

	return storage.ExportCSV(os.Stdout, frames, times)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	frames, times, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, frames, times)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	_, initial, integ, err := setup(cfg)
	if err != nil {
		return err
	}

	m := viz.NewModel(integ, initial)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func benchSizes(cmd *cobra.Command, args []string) error {
	sizes := []int{101, 1001, 10001, 100001}
	benchSteps := 1000

	fmt.Println("benchmarking explicit step")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NODES\tSTEPS\tTIME\tSTEPS/SEC")

	for _, n := range sizes {
		g, err := grid.New(float64(n-1), 1.0)
		if err != nil {
			return err
		}

		integ, err := diffusion.New(diffusion.Params{Diffusivity: 1, Dx: 1, Left: 1, Right: 0})
		if err != nil {
			return err
		}

		initial := grid.Step(g, 1, 0)

		start := time.Now()
		result, err := integ.Run(context.Background(), initial, diffusion.RunConfig{Steps: benchSteps})
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		stepsPerSec := float64(result.StepsTaken) / elapsed.Seconds()
		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n", n, result.StepsTaken, elapsed, stepsPerSec)
	}

	return w.Flush()
}
