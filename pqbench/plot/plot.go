// Package plot invokes the external Python plotting process over a persisted
// results file. Execution strategies are tried in order — the project
// virtualenv first, then the system interpreter — and each reports its own
// outcome; the first success wins.
package plot

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
)

var (
	ErrScriptMissing       = errors.New("plot: plotting script not found")
	ErrAllStrategiesFailed = errors.New("plot: all plotting strategies failed")
)

// Strategy is one way of running the plotting script.
type Strategy struct {
	Name   string
	Python string // interpreter path
}

// Runner generates plots from a results directory.
type Runner struct {
	Script  string // plotting script path
	VenvDir string // virtualenv root, may be empty or missing
	WorkDir string // working directory for the script
}

// Strategies returns the execution strategies in preference order. The
// virtualenv strategy is only offered when its interpreter exists.
func (r *Runner) Strategies() []Strategy {
	var out []Strategy
	if r.VenvDir != "" {
		python := filepath.Join(r.VenvDir, "bin", "python")
		if _, err := os.Stat(python); err == nil {
			out = append(out, Strategy{Name: "virtualenv", Python: python})
		}
	}
	out = append(out, Strategy{Name: "system python3", Python: "python3"})
	return out
}

// Generate runs the plotting script with the first strategy that succeeds.
func (r *Runner) Generate() error {
	if _, err := os.Stat(r.Script); err != nil {
		return fmt.Errorf("%w: %s", ErrScriptMissing, r.Script)
	}

	var errs []error
	for _, s := range r.Strategies() {
		log.Printf("  Plotting with %s...", s.Name)
		cmd := exec.Command(s.Python, r.Script)
		cmd.Dir = r.WorkDir
		out, err := cmd.CombinedOutput()
		if err == nil {
			if len(out) > 0 {
				log.Printf("  Plot output:\n%s", out)
			}
			log.Printf("  Plots generated with %s", s.Name)
			return nil
		}
		log.Printf("  %s failed: %v\n%s", s.Name, err, out)
		errs = append(errs, fmt.Errorf("%s: %w", s.Name, err))
	}
	return fmt.Errorf("%w: %v", ErrAllStrategiesFailed, errors.Join(errs...))
}
