// Package main is the entry point for the life simulation CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lifesim",
	Short: "Turn-based life simulation",
	Long:  `Lifesim runs a turn-based life simulation: one event per year, from birth to death, across as many lives as you care to live.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(memorialsCmd)
}
