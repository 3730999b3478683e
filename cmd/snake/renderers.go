package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

var renderersCmd = &cobra.Command{
	Use:   "renderers",
	Short: "List all available views",
	Long:  `Shows the renderers that can be passed to --renderer or set in display.renderer.`,
	Args:  cobra.NoArgs,
	Run:   runRenderers,
}

func runRenderers(_ *cobra.Command, _ []string) {
	renderers := registry.List()

	if len(renderers) == 0 {
		fmt.Println("No renderers available.")
		return
	}

	fmt.Println("Available renderers:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, r := range renderers {
		maxIDLen = max(maxIDLen, len(r.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, r := range renderers {
		fmt.Printf("  %-*s  %s\n", maxIDLen, r.ID, r.Title)
	}

	fmt.Println()
	fmt.Println("Run 'snake play --renderer <id>' to use one.")
}
