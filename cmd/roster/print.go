package main

import (
	"fmt"
	"route-roster-service/internal/app"
	"route-roster-service/internal/domain"
	"route-roster-service/internal/termview"
	"time"

	"github.com/spf13/cobra"
)

var (
	printVehicle string
	printToday   string
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the roster of a vehicle around today",
	RunE:  printRoster,
}

func init() {
	printCmd.Flags().StringVar(&printVehicle, "vehicle", "", "vehicle id")
	printCmd.Flags().StringVar(&printToday, "today", "", "reference day YYYY-MM-DD (default: current day in the configured zone)")
	_ = printCmd.MarkFlagRequired("vehicle")
	rootCmd.AddCommand(printCmd)
}

func printRoster(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := app.NewRosterService(cfg, nil)
	if err != nil {
		return err
	}

	today := domain.DateOf(time.Now().In(cfg.Roster.Location()))
	if printToday != "" {
		if today, err = domain.ParseDate(printToday); err != nil {
			return fmt.Errorf("--today: %w", err)
		}
	}

	roster, err := svc.Build(cmd.Context(), printVehicle, svc.WindowAround(today))
	if err != nil {
		return err
	}

	view := termview.RosterView{Locale: svc.Locale, Colors: cfg.Routes.Colors, Today: today}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), view.Render(roster))
	return err
}
