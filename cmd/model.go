package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/emfajardo/gogrillage/internal/model"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Describe the fixed grillage model",
	Long: `Print the fixed bridge grillage description: node and element
counts, span and girder spacing, and each girder's element and node chains.`,
	RunE: runModel,
}

func init() {
	rootCmd.AddCommand(modelCmd)
}

func runModel(cmd *cobra.Command, args []string) error {
	registry := model.NewRegistry()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BRIDGE GRILLAGE MODEL")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("DIMENSIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span:\t%.1f m\n", model.Span)
	fmt.Fprintf(w, "  Girder spacing:\t%.1f m\n", model.GirderSpacing)
	fmt.Fprintf(w, "  Nodes:\t%d\n", model.NodeCount)
	fmt.Fprintf(w, "  Elements:\t%d\n", model.ElementCount)
	fmt.Fprintf(w, "  Girders:\t%d × %d segments\n", model.GirderCount, model.GirderSegments)
	w.Flush()
	fmt.Println()

	fmt.Println("GIRDERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for g := 1; g <= model.GirderCount; g++ {
		girder, err := registry.Girder(g)
		if err != nil {
			return err
		}
		central := ""
		if g == (model.GirderCount+1)/2 {
			central = " (central)"
		}
		fmt.Printf("  Girder %d%s - %s\n", g, central, cfg.ColorFor(g, girder.Color))
		fmt.Printf("    Elements: %v\n", girder.Elements)
		fmt.Printf("    Nodes:    %v\n", girder.Nodes)
	}
	fmt.Println()

	return nil
}
