package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/curvesketch/internal/anim"
	"github.com/san-kum/curvesketch/internal/config"
	"github.com/san-kum/curvesketch/internal/curve"
	"github.com/san-kum/curvesketch/internal/easing"
	"github.com/san-kum/curvesketch/internal/ebitenhost"
	"github.com/san-kum/curvesketch/internal/export"
	"github.com/san-kum/curvesketch/internal/gui"
	"github.com/san-kum/curvesketch/internal/storage"
	"github.com/san-kum/curvesketch/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	dataDir    string
	configFile string
	preset     string
	// Curve overrides
	points  int
	coefA   float64
	coefB   float64
	coefC   float64
	padding float64
	// Animation overrides
	speed float64
	ease  string
	// Canvas overrides
	canvasW float64
	canvasH float64
	// Command options
	backend   string
	format    string
	svgOut    string
	gifOut    string
	frame     uint64
	gifEvery  uint64
	gifDelay  int
	gifScale  float64
	runName   string
	plotWidth int
)

// main registers the commands and flags, opens the default window when no
// subcommand is given, and exits with status 1 on error.
func main() {
	log.SetFlags(0)
	log.SetPrefix("curvesketch: ")

	rootCmd := &cobra.Command{
		Use:           "curvesketch",
		Short:         "progressively draw a quadratic curve",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".curvesketch", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&points, "points", config.DefaultPoints, "number of curve samples")
	pf.Float64Var(&coefA, "a", curve.Reference.A, "quadratic coefficient")
	pf.Float64Var(&coefB, "b", curve.Reference.B, "linear coefficient")
	pf.Float64Var(&coefC, "c", curve.Reference.C, "constant term")
	pf.Float64Var(&padding, "padding", config.DefaultPadding, "inset of the curve region from the canvas edge")
	pf.Float64Var(&speed, "speed", config.DefaultSpeed, "points revealed per frame")
	pf.StringVar(&ease, "ease", easing.Linear, "reveal easing ("+strings.Join(easing.Names(), ", ")+")")
	pf.Float64Var(&canvasW, "width", config.DefaultWidth, "canvas width")
	pf.Float64Var(&canvasH, "height", config.DefaultHeight, "canvas height")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "animate in a desktop window",
		RunE:  runWindow,
	}
	windowCmd.Flags().StringVar(&backend, "backend", "raylib", "window backend (raylib, ebiten)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "animate in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot curve y-values",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotCurve,
	}
	plotCmd.Flags().IntVar(&plotWidth, "cols", 80, "plot width")

	pointsCmd := &cobra.Command{
		Use:   "points",
		Short: "print the sampled curve",
		RunE:  printPoints,
	}
	pointsCmd.Flags().StringVar(&format, "format", "csv", "output format (csv, json)")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "export the canvas after a given frame as SVG",
		RunE:  exportSVG,
	}
	svgCmd.Flags().Uint64Var(&frame, "frame", 400, "last frame to composite")
	svgCmd.Flags().StringVarP(&svgOut, "out", "o", "", "output file (default stdout)")

	gifCmd := &cobra.Command{
		Use:   "gif",
		Short: "export the reveal as an animated GIF",
		RunE:  exportGIF,
	}
	defaults := export.DefaultGIFOptions()
	gifCmd.Flags().Uint64Var(&gifEvery, "every", defaults.Every, "frames per GIF frame")
	gifCmd.Flags().IntVar(&gifDelay, "delay", defaults.Delay, "GIF frame delay (1/100 s)")
	gifCmd.Flags().Float64Var(&gifScale, "scale", defaults.Scale, "output scale")
	gifCmd.Flags().StringVarP(&gifOut, "out", "o", "curvesketch.gif", "output file")

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "generate and store a curve",
		RunE:  saveRun,
	}
	saveCmd.Flags().StringVar(&runName, "name", "sketch", "run name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored curves",
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(os.Stdout)
			defer enc.Close()
			return enc.Encode(cfg)
		},
	}

	rootCmd.AddCommand(windowCmd, tuiCmd, plotCmd, pointsCmd, svgCmd, gifCmd, saveCmd, listCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, preset, config file and explicitly set flags,
// in that order, then validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Resolve(preset, configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("points") {
		cfg.Curve.Points = points
	}
	if flags.Changed("a") {
		cfg.Curve.A = coefA
	}
	if flags.Changed("b") {
		cfg.Curve.B = coefB
	}
	if flags.Changed("c") {
		cfg.Curve.C = coefC
	}
	if flags.Changed("padding") {
		cfg.Curve.Padding = padding
	}
	if flags.Changed("speed") {
		cfg.Animation.Speed = speed
	}
	if flags.Changed("ease") {
		cfg.Animation.Ease = ease
	}
	if flags.Changed("width") {
		cfg.Canvas.Width = canvasW
	}
	if flags.Changed("height") {
		cfg.Canvas.Height = canvasH
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	switch backend {
	case "raylib":
		return gui.Run(cfg)
	case "ebiten":
		return ebitenhost.Run(cfg)
	default:
		return fmt.Errorf("unknown backend: %s (available: raylib, ebiten)", backend)
	}
}

func newDriver(cmd *cobra.Command) (*anim.Driver, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	d, err := anim.FromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	return d, cfg, nil
}

func plotCurve(cmd *cobra.Command, args []string) error {
	var (
		c       *curve.Curve
		caption string
	)

	if len(args) == 1 {
		st := storage.New(dataDir)
		meta, err := st.Load(args[0])
		if err != nil {
			return err
		}
		if c, err = st.LoadCurve(args[0]); err != nil {
			return err
		}
		fmt.Printf("run: %s\n", meta.ID)
		fmt.Printf("samples: %d\n\n", meta.Points)
		caption = meta.Quadratic.String()
	} else {
		d, _, err := newDriver(cmd)
		if err != nil {
			return err
		}
		c = d.Curve()
		caption = c.Quadratic().String()
	}

	graph := asciigraph.Plot(c.Ys(),
		asciigraph.Height(15),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

func printPoints(cmd *cobra.Command, args []string) error {
	d, _, err := newDriver(cmd)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		return export.WriteCSV(os.Stdout, d.Curve())
	case "json":
		return export.WriteJSON(os.Stdout, d.Curve())
	default:
		return fmt.Errorf("unknown format: %s (available: csv, json)", format)
	}
}

// output opens path for writing, or stdout when path is empty.
func output(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func exportSVG(cmd *cobra.Command, args []string) error {
	d, _, err := newDriver(cmd)
	if err != nil {
		return err
	}

	w, err := output(svgOut)
	if err != nil {
		return err
	}
	if err := export.WriteSVGFrame(w, d, frame); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func exportGIF(cmd *cobra.Command, args []string) error {
	d, _, err := newDriver(cmd)
	if err != nil {
		return err
	}

	w, err := output(gifOut)
	if err != nil {
		return err
	}
	opts := export.DefaultGIFOptions()
	opts.Every, opts.Delay, opts.Scale = gifEvery, gifDelay, gifScale
	if err := export.WriteGIF(w, d, opts); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	if gifOut != "" {
		fmt.Fprintf(os.Stderr, "wrote %s\n", gifOut)
	}
	return nil
}

func saveRun(cmd *cobra.Command, args []string) error {
	d, cfg, err := newDriver(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(runName, cfg, d.Curve())
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", d.Curve().Len())
	fmt.Printf("curve: %s\n", d.Curve().Quadratic())
	fmt.Printf("frames to reveal: %.0f\n", d.Duration())
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
	fmt.Fprintln(w, "ID\tTIME\tPOINTS\tCURVE\tSPEED\tEASE")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%g\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Points,
			run.Quadratic,
			run.Speed,
			run.Ease,
		)
	}

	return w.Flush()
}
