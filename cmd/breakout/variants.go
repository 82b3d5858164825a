package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List all variants",
	Long:  `Shows every variant preset with a short description.`,
	Run:   runVariants,
}

func runVariants(cmd *cobra.Command, args []string) {
	variants := config.Variants()

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")

	for _, v := range variants {
		marker := ""
		if v.ID == config.DefaultVariant {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, v.ID, v.Description, marker)
	}

	fmt.Println()
	fmt.Println("Run 'breakout play <id>' to play a variant.")
}
