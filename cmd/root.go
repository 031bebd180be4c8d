package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emfajardo/gogrillage/internal/config"
	"github.com/emfajardo/gogrillage/internal/version"
)

var (
	configPath string
	forcesPath string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gogrillage",
	Short: "Bridge Grillage Force Diagram Tool",
	Long: `gogrillage - Grillage Shear and Moment Diagram Generator

A CLI tool that turns per-element force records for a five-girder bridge
grillage into shear force and bending moment diagrams.

This tool helps bridge engineers:
  - Extract longitudinal force profiles along each girder
  - Locate critical shear and moment values and their positions
  - Export 2D SFD/BMD charts and CSV reports
  - Build extruded 3D diagram geometry for external renderers`,
	PersistentPreRunE: loadConfig,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gogrillage v%-44s║\n", version.Version)
		fmt.Println("  ║   Grillage Shear and Moment Diagram Generator             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Turns per-element force records for a five-girder bridge")
		fmt.Println("  grillage into shear force and bending moment diagrams.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Per-girder SFD/BMD profiles with critical values")
		fmt.Println("    • Hatched 2D diagram export (PNG/SVG/PDF) and terminal charts")
		fmt.Println("    • Extruded 3D diagram geometry with frame wireframe")
		fmt.Println("    • Critical-element scan and CSV reports")
		fmt.Println()
		fmt.Println("  Use 'gogrillage --help' to see available commands.")
		fmt.Println()
	},
}

// loadConfig resolves the run configuration before any command runs: built-in
// defaults, optionally overridden by a YAML file.
func loadConfig(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		cfg = config.Default()
		return nil
	}
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML run configuration")
	rootCmd.PersistentFlags().StringVarP(&forcesPath, "forces", "f", "data/forces.csv", "Path to the element force table (CSV)")
}
