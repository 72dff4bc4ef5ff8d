package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/robolab-io/roboviz"
	"github.com/robolab-io/roboviz/internal/config"
	"github.com/robolab-io/roboviz/internal/demo"
	"github.com/robolab-io/roboviz/internal/export"
	"github.com/robolab-io/roboviz/internal/trace"
	"github.com/robolab-io/roboviz/internal/tui"
)

var (
	configFile string
	preset     string

	pixels    int
	meters    float64
	title     string
	frameRate int
	seed      int64
	showTraj  bool
	zeroAngle float64

	duration float64
	stepDt   float64

	outPath   string
	svgWidth  int
	svgHeight int
	svgColor  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roboviz",
		Short: "occupancy-grid map and robot pose visualizer",
		RunE:  runDemo,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().IntVar(&pixels, "pixels", config.DefaultMapSizePixels, "map size in pixels")
	rootCmd.PersistentFlags().Float64Var(&meters, "meters", config.DefaultMapSizeMeters, "map size in meters")
	rootCmd.PersistentFlags().StringVar(&title, "title", config.DefaultTitle, "window title")
	rootCmd.PersistentFlags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "frame rate")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed for the demo world")
	rootCmd.PersistentFlags().BoolVar(&showTraj, "trajectory", false, "draw the trajectory trail")
	rootCmd.PersistentFlags().Float64Var(&zeroAngle, "zero-angle", 0, "show headings relative to the first pose, offset by this angle")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "wander a procedural floorplan with a live map view",
		RunE:  runDemo,
	}

	replayCmd := &cobra.Command{
		Use:   "replay [trace.csv]",
		Short: "replay a recorded pose trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}

	recordCmd := &cobra.Command{
		Use:   "record [out.csv]",
		Short: "run the demo headless and record a pose trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runRecord,
	}
	recordCmd.Flags().Float64Var(&duration, "time", 60.0, "duration in seconds")
	recordCmd.Flags().Float64Var(&stepDt, "dt", 0.05, "timestep")

	plotCmd := &cobra.Command{
		Use:   "plot [trace.csv]",
		Short: "plot a recorded trace in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [trace.csv]",
		Short: "export a trace trajectory as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outPath, "out", "trajectory.svg", "output file")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 600, "image height")
	exportSVGCmd.Flags().StringVar(&svgColor, "color", "#00ff00", "stroke color")

	exportMapCmd := &cobra.Command{
		Use:   "export-map [out.pgm]",
		Short: "run the demo headless and export the revealed map as PGM",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportMap,
	}
	exportMapCmd.Flags().Float64Var(&duration, "time", 60.0, "duration in seconds")
	exportMapCmd.Flags().Float64Var(&stepDt, "dt", 0.05, "timestep")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal visualization mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPIXELS\tMETERS\tTRAJECTORY")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%.1f\t%v\n", name, cfg.MapSizePixels, cfg.MapSizeMeters, cfg.ShowTrajectory)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(demoCmd, replayCmd, recordCmd, plotCmd, exportSVGCmd, exportMapCmd, tuiCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file, and flags, with later
// sources winning. Flags only override when explicitly set.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
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

	flags := cmd.Flags()
	if flags.Changed("pixels") {
		cfg.MapSizePixels = pixels
	}
	if flags.Changed("meters") {
		cfg.MapSizeMeters = meters
	}
	if flags.Changed("title") {
		cfg.Title = title
	}
	if flags.Changed("fps") {
		cfg.FrameRate = frameRate
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("trajectory") {
		cfg.ShowTrajectory = showTraj
	}
	if flags.Changed("zero-angle") {
		z := zeroAngle
		cfg.ZeroAngle = &z
	}

	return cfg, nil
}

func vizOptions(cfg *config.Config) []roboviz.Option {
	opts := []roboviz.Option{roboviz.WithFrameRate(cfg.FrameRate)}
	if cfg.ShowTrajectory {
		opts = append(opts, roboviz.WithTrajectory())
	}
	if cfg.ZeroAngle != nil {
		opts = append(opts, roboviz.WithZeroAngle(*cfg.ZeroAngle))
	}
	return opts
}

func newRover(cfg *config.Config) *demo.Rover {
	fp := demo.NewFloorplan(cfg.MapSizePixels, cfg.Demo.Obstacles, cfg.Seed)
	params := demo.Params{
		SpeedMPS:      cfg.Demo.SpeedMPS,
		TurnRateDeg:   cfg.Demo.TurnRateDeg,
		RevealRadiusM: cfg.Demo.RevealRadiusM,
	}
	return demo.NewRover(fp, cfg.MapSizeMeters, params, cfg.Seed)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	rover := newRover(cfg)
	viz, err := roboviz.NewMapVisualizer(cfg.MapSizePixels, cfg.MapSizeMeters, cfg.Title, vizOptions(cfg)...)
	if err != nil {
		return err
	}
	defer viz.Close()

	dt := 1.0 / float64(cfg.FrameRate)
	for {
		fr := rover.Step(dt)
		if err := viz.Display(fr.X, fr.Y, fr.ThetaDeg, rover.Map()); err != nil {
			if errors.Is(err, roboviz.ErrWindowClosed) || errors.Is(err, roboviz.ErrInterrupted) {
				return nil
			}
			return err
		}
	}
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	frames, err := trace.ReadFile(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("trace has no frames")
	}

	viz, err := roboviz.New(cfg.MapSizePixels, cfg.MapSizeMeters, cfg.Title, vizOptions(cfg)...)
	if err != nil {
		return err
	}
	defer viz.Close()

	prev := frames[0].T
	for _, fr := range frames {
		if wait := fr.T - prev; wait > 0 {
			if wait > 0.1 {
				wait = 0.1
			}
			time.Sleep(time.Duration(wait * float64(time.Second)))
		}
		prev = fr.T

		if err := viz.Display(fr.X, fr.Y, fr.ThetaDeg); err != nil {
			if errors.Is(err, roboviz.ErrWindowClosed) || errors.Is(err, roboviz.ErrInterrupted) {
				return nil
			}
			return err
		}
	}

	fmt.Printf("replayed %d frames\n", len(frames))
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	rover := newRover(cfg)
	w, err := trace.Create(args[0])
	if err != nil {
		return err
	}

	steps := 0
	for t := 0.0; t < duration; t += stepDt {
		if err := w.Append(rover.Step(stepDt)); err != nil {
			w.Close()
			return err
		}
		steps++
	}
	if err := w.Close(); err != nil {
		return err
	}

	fmt.Printf("recorded %d frames to %s\n", steps, args[0])
	fmt.Printf("explored: %.0f%%\n", rover.Coverage()*100)
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	frames, err := trace.ReadFile(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("trace: %s\n", args[0])
	fmt.Printf("frames: %d\n", len(frames))
	fmt.Printf("duration: %.1fs\n\n", frames[len(frames)-1].T-frames[0].T)

	series := []struct {
		caption string
		value   func(trace.Frame) float64
	}{
		{"x (m)", func(fr trace.Frame) float64 { return fr.X }},
		{"y (m)", func(fr trace.Frame) float64 { return fr.Y }},
		{"theta (deg)", func(fr trace.Frame) float64 { return fr.ThetaDeg }},
	}

	for _, s := range series {
		data := make([]float64, len(frames))
		for i, fr := range frames {
			data[i] = s.value(fr)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	frames, err := trace.ReadFile(args[0])
	if err != nil {
		return err
	}

	svg := export.TrajectorySVG(frames, svgWidth, svgHeight, svgColor)
	if svg == "" {
		return fmt.Errorf("trace too short to export")
	}
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d frames)\n", outPath, len(frames))
	return nil
}

func runExportMap(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	rover := newRover(cfg)
	for t := 0.0; t < duration; t += stepDt {
		rover.Step(stepDt)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	if err := export.WritePGM(f, cfg.MapSizePixels, rover.Map()); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%.0f%% explored)\n", args[0], rover.Coverage()*100)
	return nil
}
