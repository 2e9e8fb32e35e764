// namecap prints a name valuation card in the terminal.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "namecap <이름>",
	Short: "이름값 계산기",
	Long: `Evaluate a Korean name (2-4 Hangul syllables): market cap, grade,
one-line comment and famous people with the same name.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCard,
}

func init() {
	rootCmd.Flags().Bool("no-animate", false, "print the final market cap without the count-up")
	rootCmd.Flags().Bool("json", false, "print the valuation as JSON")
	rootCmd.Flags().Duration("duration", defaultDuration, "count-up duration")

	rootCmd.AddCommand(gradesCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
