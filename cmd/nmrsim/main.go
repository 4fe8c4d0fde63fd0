package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/nmrsim/internal/config"
	"github.com/san-kum/nmrsim/internal/export"
	"github.com/san-kum/nmrsim/internal/nmr"
	"github.com/san-kum/nmrsim/internal/tui"
	"github.com/san-kum/nmrsim/internal/viz"
)

var (
	relaxivity float64
	radius     float64
	radiusUnit string
	porosities []float64
	timeUnit   string
	t2Values   string
	samples    int
	configFile string
	preset     string
	// sweep mode
	radii    []float64
	porosity float64
	// plot geometry
	plotWidth  int
	plotHeight int
	// export target
	outFile string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nmrsim",
		Short: "NMR T2 pore relaxation calculator and visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to interactive mode when no command given
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addInputFlags(rootCmd)

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "derive sphere geometry and T2",
		RunE:  runCalc,
	}

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "print T2 vs Mt tables per porosity scenario",
		RunE:  runTable,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "cross-plot all scenario decay curves",
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 15, "plot height")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "model one porosity across several pore sizes",
		RunE:  runSweep,
	}
	// sweep replaces the scenario flags with its own radius list and a
	// single shared porosity, so it gets the grid flags only
	sweepCmd.Flags().Float64SliceVar(&radii, "radius", []float64{1.0, 0.5, 0.25}, "pore radii (µm)")
	sweepCmd.Flags().Float64Var(&porosity, "porosity", 50, "shared porosity (%)")
	sweepCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	sweepCmd.Flags().IntVar(&plotHeight, "height", 15, "plot height")
	addGridFlags(sweepCmd)

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export scenario tables as CSV",
		RunE:  runExportCSV,
	}
	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export results as JSON",
		RunE:  runExportJSON,
	}
	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "export the cross-plot as SVG",
		RunE:  runExportSVG,
	}
	exportSVGCmd.Flags().IntVar(&plotWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&plotHeight, "height", 400, "image height")
	for _, cmd := range []*cobra.Command{exportCSVCmd, exportJSONCmd, exportSVGCmd} {
		cmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive parameter explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	for _, cmd := range []*cobra.Command{calcCmd, tableCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, tuiCmd} {
		addInputFlags(cmd)
	}

	rootCmd.AddCommand(calcCmd, tableCmd, plotCmd, sweepCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, tuiCmd)

	return rootCmd
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&radius, "radius-um", config.DefaultRadius, "sphere radius")
	cmd.Flags().Float64SliceVar(&porosities, "porosity", []float64{30, 20, 10}, "porosity scenarios (%)")
	addGridFlags(cmd)
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&relaxivity, "relaxivity", config.DefaultRelaxivity, "surface relaxivity (µm/ms)")
	cmd.Flags().StringVar(&radiusUnit, "radius-unit", "um", "radius unit (um or nm)")
	cmd.Flags().StringVar(&timeUnit, "time-unit", "ms", "time unit for custom grids (ms or s)")
	cmd.Flags().StringVar(&t2Values, "t2-values", "", "custom time grid, comma-separated")
	cmd.Flags().IntVar(&samples, "samples", 0, "sample count for generated grids")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig resolves preset, config file, and CLI flags in ascending
// priority, mirroring flag handling elsewhere: a flag only wins when the
// user actually set it.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("relaxivity") {
		cfg.Relaxivity = relaxivity
	}
	if cmd.Flags().Changed("radius-um") {
		cfg.Radius = radius
	}
	if cmd.Flags().Changed("radius-unit") {
		cfg.RadiusUnit = radiusUnit
	}
	if cmd.Flags().Changed("porosity") {
		cfg.Porosities = porosities
	}
	if cmd.Flags().Changed("time-unit") {
		cfg.TimeUnit = timeUnit
	}
	if cmd.Flags().Changed("t2-values") {
		domain, err := nmr.ParseTimeDomain(t2Values)
		if err != nil {
			return nil, err
		}
		values := make([]float64, len(domain))
		for i, t := range domain {
			values[i] = float64(t)
		}
		cfg.TimeDomain = config.TimeDomainConfig{Kind: "custom", Values: values}
	}
	if cmd.Flags().Changed("samples") {
		cfg.TimeDomain.Samples = samples
	}

	return cfg, nil
}

// evaluate runs the full pipeline for the current snapshot.
func evaluate(cfg *config.Config) (nmr.Sphere, nmr.Milliseconds, nmr.ScenarioCurves, error) {
	sphere, err := nmr.SphereGeometry(cfg.RadiusMicrometers())
	if err != nil {
		return nmr.Sphere{}, 0, nil, err
	}
	t2, err := nmr.T2(nmr.MicrometersPerMillisecond(cfg.Relaxivity), sphere.SurfaceToVolume())
	if err != nil {
		return nmr.Sphere{}, 0, nil, err
	}
	domain, err := cfg.Domain(t2)
	if err != nil {
		return nmr.Sphere{}, 0, nil, err
	}
	curves, err := nmr.GenerateScenarios(t2, cfg.Scenarios(), domain)
	if err != nil {
		return nmr.Sphere{}, 0, nil, err
	}
	return sphere, t2, curves, nil
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	sphere, err := nmr.SphereGeometry(cfg.RadiusMicrometers())
	if err != nil {
		return err
	}
	t2, err := nmr.T2(nmr.MicrometersPerMillisecond(cfg.Relaxivity), sphere.SurfaceToVolume())
	if err != nil {
		return err
	}
	return viz.WriteGeometry(os.Stdout, sphere, nmr.MicrometersPerMillisecond(cfg.Relaxivity), t2)
}

func runTable(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	sphere, t2, curves, err := evaluate(cfg)
	if err != nil {
		return err
	}
	if err := viz.WriteGeometry(os.Stdout, sphere, nmr.MicrometersPerMillisecond(cfg.Relaxivity), t2); err != nil {
		return err
	}
	fmt.Println()
	return viz.WriteTables(os.Stdout, curves)
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	_, t2, curves, err := evaluate(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("T2 = %.4f ms, %d scenarios\n\n", float64(t2), len(curves))
	fmt.Println(viz.CrossPlot(curves, plotWidth, plotHeight))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	rs := make([]nmr.Micrometers, len(radii))
	for i, r := range radii {
		if cfg.RadiusUnit == "nm" {
			rs[i] = nmr.FromNanometers(r)
		} else {
			rs[i] = nmr.Micrometers(r)
		}
	}

	// sweep needs a radius-independent grid; uniform grids depend on a
	// single t2, so fall back to the geometric default
	if cfg.TimeDomain.Kind == "uniform" {
		cfg.TimeDomain = config.DefaultConfig().TimeDomain
	}
	domain, err := cfg.Domain(0)
	if err != nil {
		return err
	}

	curves, err := nmr.SweepPoreSizes(nmr.MicrometersPerMillisecond(cfg.Relaxivity), rs, nmr.Percent(porosity), domain)
	if err != nil {
		return err
	}

	if err := viz.WriteSweepTable(os.Stdout, curves); err != nil {
		return err
	}

	labeled := make(nmr.ScenarioCurves, len(curves))
	for i, pc := range curves {
		labeled[i] = nmr.ScenarioCurve{
			Scenario: nmr.Scenario{
				Label:    fmt.Sprintf("r=%.2fµm", float64(pc.Radius)),
				Porosity: nmr.Percent(porosity),
			},
			Curve: pc.Curve,
		}
	}
	fmt.Println()
	fmt.Println(viz.CrossPlot(labeled, plotWidth, plotHeight))
	return nil
}

func openOut() (io.WriteCloser, error) {
	if outFile == "" {
		return os.Stdout, nil
	}
	return os.Create(outFile)
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	_, _, curves, err := evaluate(cfg)
	if err != nil {
		return err
	}
	w, err := openOut()
	if err != nil {
		return err
	}
	if w != os.Stdout {
		defer w.Close()
	}
	return export.WriteCSV(w, curves)
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	sphere, t2, curves, err := evaluate(cfg)
	if err != nil {
		return err
	}
	w, err := openOut()
	if err != nil {
		return err
	}
	if w != os.Stdout {
		defer w.Close()
	}
	return export.WriteJSON(w, export.NewReport(nmr.MicrometersPerMillisecond(cfg.Relaxivity), sphere, t2, curves))
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	_, _, curves, err := evaluate(cfg)
	if err != nil {
		return err
	}
	w, err := openOut()
	if err != nil {
		return err
	}
	if w != os.Stdout {
		defer w.Close()
	}
	return export.WriteSVG(w, curves, plotWidth, plotHeight)
}
