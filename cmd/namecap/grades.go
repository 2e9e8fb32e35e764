package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"namevalue/internal/domain/entity"
)

var gradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "List grades from S to D",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()

		for _, style := range entity.GradeStyles() {
			fmt.Fprintf(out, "%s  %s\n", color.New(gradeAttribute(style.Grade), color.Bold).Sprint(style.Label), style.Description)
		}
	},
}
