package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldcalc/pipeheat/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pipeheat",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pipeheat v%s\n", version.Version)
		fmt.Println("Pipeline Heat Loss & Line Heater Sizing Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
