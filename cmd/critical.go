package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/emfajardo/gogrillage/internal/diagram"
	"github.com/emfajardo/gogrillage/internal/girder"
)

var (
	criticalCSVDir string
	criticalTop    int
)

var criticalCmd = &cobra.Command{
	Use:   "critical",
	Short: "Scan all elements for critical force values",
	Long: `Scan every element of the grillage for the largest-magnitude value
of each force component (Vy_i, Vy_j, Mz_i, Mz_j) and rank the elements
carrying the highest absolute moments and shears.

Examples:
  gogrillage critical
  gogrillage critical --top 10 --csv output`,
	RunE: runCritical,
}

func init() {
	rootCmd.AddCommand(criticalCmd)

	criticalCmd.Flags().StringVar(&criticalCSVDir, "csv", "", "Export reports as CSV files into this directory")
	criticalCmd.Flags().IntVar(&criticalTop, "top", 5, "Number of ranked elements to report")
}

func runCritical(cmd *cobra.Command, args []string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}

	extremes, err := girder.CriticalElements(p.registry, p.accessor)
	if err != nil {
		return err
	}
	peaks, err := girder.Peaks(p.registry, p.accessor)
	if err != nil {
		return err
	}
	topMoments := girder.TopByMoment(peaks, criticalTop)
	topShears := girder.TopByShear(peaks, criticalTop)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CRITICAL ELEMENTS - ALL 85 ELEMENTS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("PER-COMPONENT EXTREMES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Component\tElement\tValue\n")
	fmt.Fprintf(w, "  ─────────\t───────\t─────\n")
	for _, e := range extremes {
		fmt.Fprintf(w, "  %s\t%d\t%.2f\n", e.Component, e.Element, e.Value)
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("TOP %d MOMENTS:\n", len(topMoments))
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Element\t|Mz| (kN·m)\n")
	for _, pk := range topMoments {
		fmt.Fprintf(w, "  %d\t%.2f\n", pk.Element, pk.Moment)
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("TOP %d SHEAR FORCES:\n", len(topShears))
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Element\t|Vy| (kN)\n")
	for _, pk := range topShears {
		fmt.Fprintf(w, "  %d\t%.2f\n", pk.Element, pk.Shear)
	}
	w.Flush()
	fmt.Println()

	if criticalCSVDir != "" {
		exports := []struct {
			name  string
			write func(string) error
		}{
			{"critical_elements.csv", func(f string) error { return diagram.WriteCriticalCSV(extremes, f) }},
			{"critical_moments.csv", func(f string) error { return diagram.WritePeaksCSV(topMoments, f) }},
			{"critical_shears.csv", func(f string) error { return diagram.WritePeaksCSV(topShears, f) }},
		}
		for _, e := range exports {
			path := filepath.Join(criticalCSVDir, e.name)
			if err := e.write(path); err != nil {
				fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
				continue
			}
			fmt.Printf("  Exported: %s\n", path)
		}
		fmt.Println()
	}

	return nil
}
