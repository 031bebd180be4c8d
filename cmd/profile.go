package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/emfajardo/gogrillage/internal/diagram"
	"github.com/emfajardo/gogrillage/internal/geometry"
	"github.com/emfajardo/gogrillage/internal/girder"
)

var (
	profileGirder int
	profileKind   string
	profilePNG    string
	profileCSV    string
	profileASCII  bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Extract a girder's force profile and critical values",
	Long: `Walk one girder's element chain and extract its shear force and
bending moment profiles along the span, then report the critical values
and where they occur.

Optionally export the selected diagram as a hatched 2D chart (PNG/SVG/PDF),
dump the full profile to CSV, or draw it in the terminal.

Examples:
  # Central girder moment profile with terminal chart
  gogrillage profile --girder 3 --kind moment --ascii

  # Export the shear diagram and the raw profile
  gogrillage profile --girder 3 --kind shear --png output/sfd.png --csv output/profile.csv`,
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.Flags().IntVarP(&profileGirder, "girder", "g", 3, "Girder index (1-5, 3 is central)")
	profileCmd.Flags().StringVarP(&profileKind, "kind", "k", "moment", "Force kind: shear or moment")
	profileCmd.Flags().StringVar(&profilePNG, "png", "", "Export diagram image to this file")
	profileCmd.Flags().StringVar(&profileCSV, "csv", "", "Export profile rows to this file")
	profileCmd.Flags().BoolVar(&profileASCII, "ascii", false, "Draw the diagram in the terminal")
}

func runProfile(cmd *cobra.Command, args []string) error {
	kind, err := geometry.ParseKind(profileKind)
	if err != nil {
		return err
	}

	p, err := newPipeline()
	if err != nil {
		return err
	}

	profile, err := p.extractor.Extract(profileGirder)
	if err != nil {
		return err
	}
	g, err := p.registry.Girder(profileGirder)
	if err != nil {
		return err
	}

	shear, err := girder.Critical(profile.Shear)
	if err != nil {
		return err
	}
	moment, err := girder.Critical(profile.Moment)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     GIRDER %d FORCE PROFILE\n", profileGirder)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("GIRDER:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Index:\t%d\n", g.Index)
	fmt.Fprintf(w, "  Color:\t%s\n", cfg.ColorFor(g.Index, g.Color))
	fmt.Fprintf(w, "  Elements:\t%v\n", g.Elements)
	fmt.Fprintf(w, "  Samples:\t%d shear, %d moment\n", len(profile.Shear), len(profile.Moment))
	w.Flush()
	fmt.Println()

	fmt.Println("CRITICAL VALUES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  \tValue\tPosition (m)\n")
	fmt.Fprintf(w, "  \t─────\t────────────\n")
	fmt.Fprintf(w, "  Max Shear (kN):\t%.2f\t%.2f\n", shear.Max, shear.MaxPosition)
	fmt.Fprintf(w, "  Min Shear (kN):\t%.2f\t%.2f\n", shear.Min, shear.MinPosition)
	fmt.Fprintf(w, "  Max Moment (kN·m):\t%.2f\t%.2f\n", moment.Max, moment.MaxPosition)
	fmt.Fprintf(w, "  Min Moment (kN·m):\t%.2f\t%.2f\n", moment.Min, moment.MinPosition)
	w.Flush()
	fmt.Println()

	series := profile.Shear
	unit := "kN"
	critical := shear
	if kind == geometry.Moment {
		series = profile.Moment
		unit = "kN·m"
		critical = moment
	}

	governing := critical.Max
	position := critical.MaxPosition
	if -critical.Min > critical.Max {
		governing = critical.Min
		position = critical.MinPosition
	}
	fmt.Println(diagram.DrawSummaryBox(
		fmt.Sprintf("GIRDER %d GOVERNING %s", profileGirder, kindLabel(kind)),
		[]string{fmt.Sprintf("%.2f %s at x = %.2f m", governing, unit, position)},
	))

	if profileASCII {
		fmt.Println(diagram.DrawASCIIProfile(series, kind, profileGirder))
	}

	// Export failures abort only their own artifact; the report above and
	// any other export still stand.
	if profilePNG != "" {
		if err := diagram.ExportProfileDiagram(series, kind, profileGirder, cfg.HatchDensity, profilePNG); err != nil {
			fmt.Fprintf(os.Stderr, "diagram export failed: %v\n", err)
		} else {
			fmt.Printf("  Diagram saved: %s\n", profilePNG)
		}
	}
	if profileCSV != "" {
		if err := diagram.WriteProfileCSV(profile, profileCSV); err != nil {
			fmt.Fprintf(os.Stderr, "profile export failed: %v\n", err)
		} else {
			fmt.Printf("  Profile saved: %s\n", profileCSV)
		}
	}
	fmt.Println()

	return nil
}

func kindLabel(kind geometry.ForceKind) string {
	if kind == geometry.Moment {
		return "MOMENT"
	}
	return "SHEAR"
}
