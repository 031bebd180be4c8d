package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emfajardo/gogrillage/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gogrillage",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gogrillage v%s\n", version.Version)
		fmt.Println("Grillage Shear and Moment Diagram Generator")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
