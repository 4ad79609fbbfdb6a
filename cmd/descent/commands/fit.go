// Package commands provides the fit subcommands of the descent CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sw965/descent"
	"github.com/sw965/descent/dataset"
)

var (
	fitOpts    options
	fitLogPath string
	fitData    string
	fitDegree  int
)

func loadSet(fallback func() dataset.Set) (dataset.Set, error) {
	if fitData == "" {
		return fallback(), nil
	}
	return dataset.LoadSetJSON(fitData)
}

func loadPlaneSet() (dataset.PlaneSet, error) {
	if fitData == "" {
		return dataset.Plane(), nil
	}
	return dataset.LoadPlaneSetJSON(fitData)
}

// runJobs opens the log and fits every job in order, stopping at the first
// failure.
func runJobs(cmd *cobra.Command, jobs ...job) error {
	opts := fitOpts
	opts.alphaSet = cmd.Flags().Changed("alpha")

	logger, closeLog, err := newLogger(fitLogPath)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closeLog()

	for _, j := range jobs {
		if _, err := runJob(j, opts, logger); err != nil {
			return err
		}
	}
	return nil
}

// LinearCmd fits y = w*x + b.
var LinearCmd = &cobra.Command{
	Use:   "linear",
	Short: "Fit a line y = w*x + b",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSet(dataset.Linear)
		if err != nil {
			return err
		}
		return runJobs(cmd, newLinearJob(s))
	},
}

// QuadraticCmd fits y = a*x^2 + b*x + c.
var QuadraticCmd = &cobra.Command{
	Use:   "quadratic",
	Short: "Fit a parabola y = a*x^2 + b*x + c",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSet(dataset.Quadratic)
		if err != nil {
			return err
		}
		return runJobs(cmd, newQuadraticJob(s))
	},
}

// PolynomialCmd fits a polynomial of the given degree.
var PolynomialCmd = &cobra.Command{
	Use:   "polynomial",
	Short: "Fit a polynomial y = sum theta[j]*x^j",
	Long: `Fit a polynomial of --degree to the data.

Without --data the model is fitted to sin(x) sampled on [-3, 3].
All coefficients start at 0.01.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSet(dataset.Sine)
		if err != nil {
			return err
		}
		j, err := newPolynomialJob(s, fitDegree)
		if err != nil {
			return err
		}
		return runJobs(cmd, j)
	},
}

// PlaneCmd fits y = w1*x1 + w2*x2 + b.
var PlaneCmd = &cobra.Command{
	Use:   "plane",
	Short: "Fit a plane y = w1*x1 + w2*x2 + b",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadPlaneSet()
		if err != nil {
			return err
		}
		return runJobs(cmd, newPlaneJob(s))
	},
}

// AllCmd runs every model on its built-in sample.
var AllCmd = &cobra.Command{
	Use:   "all",
	Short: "Fit every model to its sample dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		poly, err := newPolynomialJob(dataset.Sine(), fitDegree)
		if err != nil {
			return err
		}
		return runJobs(cmd,
			newLinearJob(dataset.Linear()),
			newQuadraticJob(dataset.Quadratic()),
			poly,
			newPlaneJob(dataset.Plane()),
		)
	},
}

func bindFitFlags(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&fitOpts.alpha, "alpha", "a", 0.0, "Learning rate (default depends on the model)")
	cmd.Flags().IntVarP(&fitOpts.revs, "revs", "r", 1000, "Number of revisions")
	cmd.Flags().Float64Var(&fitOpts.eps, "eps", descent.DefaultEps, "Finite difference step")
	cmd.Flags().IntVarP(&fitOpts.parallel, "parallel", "p", 1, "Goroutines used for the gradient")
	cmd.Flags().IntVar(&fitOpts.spsa, "spsa", 0, "Estimate gradients by SPSA with N trials per revision (0 uses central differences)")
	cmd.Flags().Uint64Var(&fitOpts.seed, "seed", 1, "Seed of the SPSA perturbations")
	cmd.Flags().IntVar(&fitOpts.trace, "trace", 0, "Log the loss every N revisions (0 disables)")
	cmd.Flags().StringVar(&fitOpts.plotDir, "plot-dir", ".", "Directory for the PNG plots")
	cmd.Flags().BoolVar(&fitOpts.noPlot, "no-plot", false, "Skip plotting")
	cmd.Flags().StringVar(&fitLogPath, "log", "gradientdescent.log", "Log file (empty logs to stdout only)")
}

func init() {
	for _, cmd := range []*cobra.Command{LinearCmd, QuadraticCmd, PolynomialCmd, PlaneCmd, AllCmd} {
		bindFitFlags(cmd)
	}

	for _, cmd := range []*cobra.Command{LinearCmd, QuadraticCmd, PolynomialCmd, PlaneCmd} {
		cmd.Flags().StringVarP(&fitData, "data", "d", "", "JSON dataset file {\"xs\": [...], \"ys\": [...]}")
	}

	PolynomialCmd.Flags().IntVar(&fitDegree, "degree", 3, "Polynomial degree")
	AllCmd.Flags().IntVar(&fitDegree, "degree", 3, "Polynomial degree")
}
