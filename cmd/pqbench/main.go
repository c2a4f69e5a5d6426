// Command pqbench runs the post-quantum messaging benchmark sweep and writes
// one summary row per configuration to a timestamped CSV.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/quntra/pqbench/pqbench/experiment"
	"github.com/quntra/pqbench/pqbench/plot"
	"github.com/quntra/pqbench/pqbench/results"
)

func main() {
	var (
		reps    = flag.Int("reps", experiment.DefaultRepetitions, "repetitions per configuration")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "workload random seed")
		outDir  = flag.String("out", "results", "output directory")
		archive = flag.Bool("archive", false, "also write an lz4 archive of raw samples")
		doPlot  = flag.Bool("plot", false, "invoke the Python plotting script afterwards")
		script  = flag.String("plot-script", "analysis/gerar_graficos.py", "plotting script path")
		venv    = flag.String("venv", "venv", "virtualenv directory for plotting")
		quiet   = flag.Bool("quiet", false, "suppress per-configuration progress output")
	)
	flag.Parse()

	log.Println("=== Post-quantum messaging crypto benchmark ===")

	if err := results.EnsureDir(*outDir); err != nil {
		log.Fatalf("%v", err)
	}

	cfg := experiment.DefaultConfig()
	cfg.Repetitions = *reps
	cfg.Seed = *seed
	cfg.Quiet = *quiet

	csvPath := results.TimestampedPath(*outDir, time.Now())

	if *archive {
		a, err := results.NewArchive(csvPath + ".raw.jsonl.lz4")
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer func() {
			if err := a.Close(); err != nil {
				log.Printf("%v", err)
			}
		}()
		cfg.Archive = a
	}

	rows, err := experiment.NewRunner(cfg).Run()
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := results.WriteCSV(csvPath, rows); err != nil {
		log.Fatalf("%v", err)
	}

	log.Println("=== Sweep complete ===")
	log.Printf("Results saved to: %s", csvPath)
	log.Println("Analysis sequence applied:")
	log.Println("  1. Outlier detection (IQR method, 1.5x and 3.0x fences)")
	log.Println("  2. Extreme outlier removal when present")
	log.Println("  3. Normality check (skewness and kurtosis)")
	log.Println("  4. Parametric or robust statistics per metric")

	if *doPlot {
		p := &plot.Runner{Script: *script, VenvDir: *venv}
		if err := p.Generate(); err != nil {
			log.Printf("%v", err)
		}
	}
}
