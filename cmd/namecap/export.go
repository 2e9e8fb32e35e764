package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"namevalue/internal/domain/service/valuation"
	"namevalue/internal/infrastructure/snapshot"
)

var exportCmd = &cobra.Command{
	Use:   "export <이름>",
	Short: "Save the result card as PNG",
	Long:  `Render the result card in headless Chrome and save it as <이름>_이름값.png (or --output).`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		chromePath, _ := cmd.Flags().GetString("chrome")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		ctx := cmd.Context()

		browser, err := snapshot.NewBrowser(ctx, snapshot.Options{
			ExecPath:    chromePath,
			MaxParallel: 1,
			Headless:    true,
		})
		if err != nil {
			return fmt.Errorf("failed to start chrome: %w", err)
		}
		defer browser.Close()

		svc := valuation.NewService(browser).WithCardTTL(0).WithExportTimeout(timeout)

		name, _, err := svc.Evaluate(ctx, args[0])
		if err != nil {
			if failure.IsInvalidArgumentError(err) {
				return errors.New(failure.Description(err))
			}

			return fmt.Errorf("svc.Evaluate: %w", err)
		}

		png, err := svc.ExportCard(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to export card: %w", err)
		}

		if output == "" {
			output = valuation.DownloadFilename(name.String())
		}

		if err := os.WriteFile(output, png, 0o644); err != nil { //nolint:gosec,mnd
			return fmt.Errorf("failed to write %s: %w", output, err)
		}

		color.Green("✓ %s (%d bytes)", output, len(png))

		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output file")
	exportCmd.Flags().String("chrome", "", "path to chrome/chromium")
	exportCmd.Flags().Duration("timeout", 15*time.Second, "render timeout")
}
