package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/sphiros/internal/compute"
	"github.com/san-kum/sphiros/internal/config"
)

var (
	dataDir   string
	backend   string
	workers   int
	verbose   bool
	inputFile string
	output    string
	preset    string
	save      bool
	// sweep
	sweepRho    float64
	sweepEMin   float64
	sweepEMax   float64
	sweepPoints int
	// bench
	benchSizes []int
	benchReps  int
)

// main registers the commands and exits with status 1 when one fails. A
// backend that cannot be opened is reported the same way.
func main() {
	rootCmd := &cobra.Command{
		Use:           "sphiros",
		Short:         "equation-of-state evaluation over particle arrays",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sphiros", "data directory")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "execution backend (auto, cpu, serial, cuda)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "host worker goroutines (0 = all CPUs)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "evaluate every configured closure model over the particle arrays",
		RunE:  runEvaluation,
	}
	addInputFlags(runCmd)
	runCmd.Flags().StringVarP(&output, "output", "o", "", "save the run under this name")
	runCmd.Flags().BoolVar(&save, "save", false, "save the run even without --output")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "plot pressure against internal energy for each model",
		RunE:  sweepModels,
	}
	addInputFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepRho, "rho", 1.0, "density")
	sweepCmd.Flags().Float64Var(&sweepEMin, "emin", -1.0, "lowest internal energy")
	sweepCmd.Flags().Float64Var(&sweepEMax, "emax", 2.0, "highest internal energy")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 200, "samples per model")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time collection evaluation over growing particle counts",
		RunE:  benchEvaluation,
	}
	addInputFlags(benchCmd)
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", []int{1_000, 10_000, 100_000, 1_000_000}, "particle counts")
	benchCmd.Flags().IntVar(&benchReps, "reps", 10, "evaluations per size")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive closure explorer",
		RunE:  exploreModels,
	}
	addInputFlags(exploreCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot pressure and sound speed of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run fields to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and fields to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s %d material(s), %d particles\n", name, len(p.Materials), p.Particles)
			}
			return nil
		},
	}

	backendsCmd := &cobra.Command{
		Use:   "backends",
		Short: "list execution backends and whether they can run here",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range compute.Backends() {
				rt, err := compute.Open(compute.Options{Backend: name, Workers: workers})
				if err != nil {
					fmt.Printf("  %-7s unavailable (%v)\n", name, err)
					continue
				}
				fmt.Printf("  %-7s %s\n", name, rt.Name())
				rt.Close()
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a config file (default or --preset) to path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if preset != "" {
				if cfg = config.GetPreset(preset); cfg == nil {
					return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
				}
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	initCmd.Flags().StringVar(&preset, "preset", "", "preset to write")

	rootCmd.AddCommand(runCmd, sweepCmd, benchCmd, exploreCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd, backendsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "input YAML file")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// loadConfig resolves the configuration: preset, then input file, then
// persistent flags that were set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case inputFile != "":
		c, err := config.Load(inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	case preset != "":
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		c := *p
		cfg = &c
	default:
		return nil, fmt.Errorf("no configuration: pass --input or --preset")
	}

	if cmd.Flags().Changed("backend") {
		cfg.Backend = backend
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	return cfg, nil
}

func openRuntime(cfg *config.Config) (*compute.Runtime, error) {
	opts := compute.DefaultOptions()
	if cfg.Backend != "" {
		opts.Backend = cfg.Backend
	}
	opts.Workers = cfg.Workers
	if cfg.MinChunk > 0 {
		opts.MinChunk = cfg.MinChunk
	}
	rt, err := compute.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("backend: %w", err)
	}
	return rt, nil
}
