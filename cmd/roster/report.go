package main

import (
	"fmt"
	"os"
	"route-roster-service/internal/app"
	"route-roster-service/internal/domain"
	"route-roster-service/internal/report"
	"route-roster-service/internal/services"

	"github.com/spf13/cobra"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the inspection log as a PDF",
	RunE:  writeReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "bitacora.pdf", "output file")
	rootCmd.AddCommand(reportCmd)
}

func writeReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	items, err := services.ListChecklist(ctx, svc.Inspections, domain.OrderByElement)
	if err != nil {
		return err
	}
	unit, err := services.GetUnitInfo(ctx, svc.Inspections)
	if err != nil {
		return err
	}

	f, err := os.Create(reportOut)
	if err != nil {
		return fmt.Errorf("create %q: %w", reportOut, err)
	}
	pages, err := report.InspectionReport{Unit: unit, Items: items, Location: svc.Location}.Render(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %q: %w", reportOut, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d pages, %d items)\n", reportOut, pages, len(items))
	return nil
}
