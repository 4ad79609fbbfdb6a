// Command descent fits the sample models by numerical gradient descent,
// logs the fitted parameters and plots the fits.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sw965/descent/cmd/descent/commands"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "descent",
	Short: "Fit models by gradient descent on numerical gradients",
	Long: `descent fits model parameters to data by gradient descent.

Gradients are estimated with central finite differences; every run performs
exactly --revs revisions with a fixed learning rate.`,
	Version:      version,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(commands.LinearCmd)
	rootCmd.AddCommand(commands.QuadraticCmd)
	rootCmd.AddCommand(commands.PolynomialCmd)
	rootCmd.AddCommand(commands.PlaneCmd)
	rootCmd.AddCommand(commands.AllCmd)
}
