package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/osse101/ShelterSim_Go/internal/scenario"
	"github.com/osse101/ShelterSim_Go/internal/scenario/providers"
)

var errScenarioFailed = errors.New("scenario failed")

func newScenarioCmd() *cobra.Command {
	var (
		list    bool
		asJSON  bool
		all     bool
		workers int
	)

	cmd := &cobra.Command{
		Use:   "scenario [id | file.yaml]",
		Short: "Run a scripted session and check its assertions",
		Long: "Runs one of the built-in scenarios by id, or a scenario file. " +
			"Use --list to see the built-in scenarios and --all to run every one of them.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}

			provider, err := providers.NewShelterProvider()
			if err != nil {
				return err
			}
			registry := scenario.NewRegistry()
			registry.Register(provider)
			engine := scenario.NewEngine(registry)

			out := cmd.OutOrStdout()
			if all {
				return runAllScenarios(ctx, out, engine, workers)
			}
			if list || len(args) == 0 {
				for _, s := range registry.GetScenarioSummaries() {
					fmt.Fprintf(out, "%-20s %2d steps  %s\n", s.ID, s.StepCount, s.Description)
				}
				return nil
			}

			var result *scenario.ExecutionResult
			if isScenarioFile(args[0]) {
				s, err := scenario.LoadFile(args[0])
				if err != nil {
					return err
				}
				result, err = engine.ExecuteCustom(ctx, *s, nil)
				if err != nil {
					return err
				}
			} else {
				result, err = engine.Execute(ctx, args[0], nil)
				if err != nil {
					return err
				}
			}

			if asJSON {
				data, err := result.ToPrettyJSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			} else {
				printResult(out, result)
			}

			if !result.Success {
				return fmt.Errorf("%w: %s", errScenarioFailed, result.ScenarioID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List the built-in scenarios")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full result as JSON")
	cmd.Flags().BoolVar(&all, "all", false, "Run every built-in scenario")
	cmd.Flags().IntVar(&workers, "workers", 4, "Scenarios run in parallel with --all")
	return cmd
}

func runAllScenarios(ctx context.Context, out io.Writer, engine *scenario.Engine, workers int) error {
	results, err := engine.ExecuteAll(ctx, workers)
	if err != nil {
		return err
	}

	failed := 0
	for _, result := range results {
		if result == nil {
			continue
		}
		printResult(out, result)
		if !result.Success {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errScenarioFailed, failed, len(results))
	}
	return nil
}

func isScenarioFile(arg string) bool {
	switch filepath.Ext(arg) {
	case ".yaml", ".yml":
		return true
	}
	_, err := os.Stat(arg)
	return err == nil
}

func printResult(w io.Writer, result *scenario.ExecutionResult) {
	tally := result.Tally()
	status := "PASS"
	if !result.Success {
		status = "FAIL"
	}
	fmt.Fprintf(w, "%s %s: %d/%d steps, %d/%d assertions, ended on day %d\n",
		status, result.ScenarioID,
		tally.PassedSteps, tally.Steps,
		tally.PassedAssertions, tally.Assertions,
		result.FinalDay)

	for _, f := range result.Failures() {
		fmt.Fprintf(w, "  %s\n", f)
	}
}
