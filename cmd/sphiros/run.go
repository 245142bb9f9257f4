package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sphiros/internal/analysis"
	"github.com/san-kum/sphiros/internal/compute"
	"github.com/san-kum/sphiros/internal/config"
	"github.com/san-kum/sphiros/internal/eos"
	"github.com/san-kum/sphiros/internal/metrics"
	"github.com/san-kum/sphiros/internal/storage"
	"github.com/san-kum/sphiros/internal/viz"
)

// particleViews allocates the four particle arrays and fills the inputs.
func particleViews(rt *compute.Runtime, n int, rho, eint float64) eos.Fields {
	vRho := compute.NewView("rho", n)
	vEint := compute.NewView("eint", n)
	vP := compute.NewView("p", n)
	vSos := compute.NewView("sos", n)

	vRho.Fill(rt, rho)
	vEint.Fill(rt, eint)

	return eos.Fields{Rho: vRho.Data, E: vEint.Data, P: vP.Data, C: vSos.Data}
}

func runEvaluation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	models, err := cfg.Collection()
	if err != nil {
		return err
	}

	rt, err := openRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	if verbose {
		fmt.Printf("Input File: %s\n", inputFile)
		fmt.Printf("Output File: %s\n", output)
		fmt.Printf("Backend: %s\n", rt.Name())
		fmt.Printf("Particles: %d (rho=%g, eint=%g)\n\n", cfg.Particles, cfg.Init.Rho, cfg.Init.Eint)
	}

	f := particleViews(rt, cfg.Particles, cfg.Init.Rho, cfg.Init.Eint)

	fmt.Println(viz.Title.Render(fmt.Sprintf("evaluating %d closure model(s)", len(models))))

	results := make([]storage.ModelResult, 0, len(models))
	start := time.Now()
	err = models.EvaluateEach(rt, f, func(m eos.Model, f eos.Fields) {
		r := storage.ModelResult{ID: m.ID()}
		if len(f.P) > 0 {
			r.P0, r.Sos = f.P[0], f.C[0]
		}
		results = append(results, r)

		fmt.Printf("EOS: %s\n", eos.Describe(m))
		fmt.Printf("  p:   %g\n", r.P0)
		fmt.Printf("  sos: %g\n", r.Sos)
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	last := models[len(models)-1]
	values := metrics.Collect(f, metrics.Defaults(last.PCutoff()))

	fmt.Printf("\ncompleted in %v on %s\n", elapsed, rt.Name())
	if len(models) > 1 {
		fmt.Println(viz.Subtle.Render(fmt.Sprintf("p and sos hold %s#%d's output (models share the arrays)", last.Kind(), last.ID())))
	}
	fmt.Println("\nmetrics:")
	for _, m := range metrics.Defaults(0) {
		fmt.Printf("  %s: %.6g\n", m.Name(), values[m.Name()])
	}

	if output == "" && !save {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Name:    output,
		Backend: rt.Name(),
		Rho:     cfg.Init.Rho,
		Eint:    cfg.Init.Eint,
		Models:  storage.Records(models),
		Results: results,
		Metrics: values,
		Elapsed: elapsed,
	}, f)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func sweepModels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	models, err := cfg.Collection()
	if err != nil {
		return err
	}

	rt, err := openRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	curves, err := analysis.SweepAll(rt, models, sweepRho, sweepEMin, sweepEMax, sweepPoints)
	if err != nil {
		return err
	}

	series := make([][]float64, len(curves))
	colors := []asciigraph.AnsiColor{asciigraph.Cyan, asciigraph.Yellow, asciigraph.Green, asciigraph.Magenta, asciigraph.Red, asciigraph.Blue}
	seriesColors := make([]asciigraph.AnsiColor, len(curves))
	for i, c := range curves {
		series[i] = c.P
		seriesColors[i] = colors[i%len(colors)]
	}

	var all []float64
	for _, s := range series {
		all = append(all, s...)
	}
	if lo, hi := bounds(all); lo == hi {
		fmt.Printf("p is constant at %g over the whole range\n\n", lo)
	} else {
		fmt.Println(plotSweep(series, seriesColors))
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tMONOTONE\tFLOOR UNTIL\tP(EMAX)\tSOS(EMAX)")
	for _, c := range curves {
		floor := "-"
		if e0, ok := c.FloorStart(); !ok {
			floor = "whole range"
		} else if e0 > sweepEMin {
			floor = fmt.Sprintf("%.4g", e0)
		}
		n := len(c.P) - 1
		fmt.Fprintf(w, "%s\t%v\t%s\t%.6g\t%.6g\n", eos.Describe(c.Model), c.Monotone(), floor, c.P[n], c.C[n])
	}
	return w.Flush()
}

func plotSweep(series [][]float64, colors []asciigraph.AnsiColor) string {
	return asciigraph.PlotMany(series,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(fmt.Sprintf("p(e) at rho=%g, e in [%g, %g]", sweepRho, sweepEMin, sweepEMax)),
	)
}

// checkBenchSizes rejects particle counts that cannot be allocated or timed.
func checkBenchSizes(sizes []int) error {
	if len(sizes) == 0 {
		return fmt.Errorf("bench: no sizes given")
	}
	for _, n := range sizes {
		if n <= 0 {
			return fmt.Errorf("bench: size %d: %w", n, config.ErrInvalidParticles)
		}
	}
	return nil
}

func benchEvaluation(cmd *cobra.Command, args []string) error {
	if err := checkBenchSizes(benchSizes); err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	models, err := cfg.Collection()
	if err != nil {
		return err
	}

	rt, err := openRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	reps := benchReps
	if reps < 1 {
		reps = 1
	}

	fmt.Printf("benchmarking %d model(s) on %s\n\n", len(models), rt.Name())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARTICLES\tREPS\tTIME/EVAL\tPARTICLE-MODELS/SEC")

	for _, n := range benchSizes {
		f := particleViews(rt, n, cfg.Init.Rho, cfg.Init.Eint)

		start := time.Now()
		for r := 0; r < reps; r++ {
			if err := models.Evaluate(rt, f); err != nil {
				return err
			}
		}
		perEval := time.Since(start) / time.Duration(reps)

		rate := float64(n*len(models)) / perEval.Seconds()
		fmt.Fprintf(w, "%d\t%d\t%v\t%.3g\n", n, reps, perEval, rate)
	}

	return w.Flush()
}

func exploreModels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	models, err := cfg.Collection()
	if err != nil {
		return err
	}

	rt, err := openRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	return viz.Run(rt, models, cfg.Init.Rho, cfg.Init.Eint)
}
