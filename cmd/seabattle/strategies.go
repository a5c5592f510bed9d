package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seabattle/internal/engine"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the available strategies",
	Long:  `Shows the placement and shooting strategies the engine knows.`,
	Args:  cobra.NoArgs,
	Run:   runStrategies,
}

func runStrategies(_ *cobra.Command, _ []string) {
	list := engine.Strategies()

	// Calculate column widths
	maxKindLen := 4 // "Kind" header
	for _, s := range list {
		if len(s.Kind) > maxKindLen {
			maxKindLen = len(s.Kind)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxKindLen, "Kind", "Description")
	fmt.Printf("  %-*s  %s\n", maxKindLen, "----", "-----------")
	for _, s := range list {
		marker := ""
		if string(s.Kind) == cfg.Strategy {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxKindLen, s.Kind, s.Description, marker)
	}
}
