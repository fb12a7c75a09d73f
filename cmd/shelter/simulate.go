package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/osse101/ShelterSim_Go/internal/autopilot"
	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/shelter"
)

func newSimulateCmd() *cobra.Command {
	var (
		days    int
		csvPath string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Let a greedy caretaker run the shelter for a number of days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return fmt.Errorf("--days must be at least 1, got %d", days)
			}
			ctx, cfg, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}

			g, err := shelter.NewGame(ctx, cfg)
			if err != nil {
				return err
			}
			reports, err := autopilot.NewCaretaker(g).Run(ctx, days)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := printReports(out, reports); err != nil {
				return err
			}
			printTotals(out, g)

			if csvPath != "" {
				if err := writeHistoryCSV(csvPath, g.DayState().History); err != nil {
					return err
				}
				fmt.Fprintf(out, "Day history written to %s\n", csvPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of days to simulate")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write the day history as CSV to this file")
	return cmd
}

func printReports(w io.Writer, reports []autopilot.DayReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tGRADE\tACTIONS\tHELPED\tRESCUES\tADOPTIONS\tEARNED\tEFFICIENCY")
	for _, r := range reports {
		h := r.Summary.History
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%.2f\n",
			r.Day, r.Summary.Grade, h.ActionsPerformed, h.AnimalsHelped,
			r.Rescues, r.Adoptions, h.MoneyEarned, r.Summary.Efficiency)
	}
	return tw.Flush()
}

func printTotals(w io.Writer, g *shelter.Game) {
	p := g.Player()
	e := g.EconomyState()
	w2 := g.WeeklyStats()
	fmt.Fprintf(w, "\nLevel %d, %d adoptions, reputation %d, budget %d (earned %d, spent %d)\n",
		p.Level, p.TotalAdoptions, p.Reputation, e.Budget, e.TotalMoneyEarned, e.TotalMoneySpent)
	fmt.Fprintf(w, "Last %d days: %.1f actions per day (std dev %.2f)\n",
		w2.Days, w2.AverageActions, w2.ActionsStdDev)
}

func writeHistoryCSV(path string, history []domain.DayHistory) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&history, f); err != nil {
		return fmt.Errorf("failed to write day history: %w", err)
	}
	return nil
}
