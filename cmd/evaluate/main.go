package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zatekoja/cpapmaskselector/internal/application/catalog"
	"github.com/zatekoja/cpapmaskselector/internal/application/engine"
	"github.com/zatekoja/cpapmaskselector/internal/evaluation"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		goldenPath string
		sweep      bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Run golden scenarios and safety guardrails against the engine",
		Long: `evaluate runs every golden scenario through the recommendation engine with
the builtin catalog, checks expectations and safety guardrails, and exits
non-zero on any failure. --sweep additionally checks the guardrails over every
combination of answers.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := evaluation.LoadGoldenScenarios(goldenPath)
			if err != nil {
				return err
			}
			if err := evaluation.ValidateGoldenScenarios(scenarios); err != nil {
				return err
			}

			entries := catalog.Builtin()
			c, err := catalog.New(entries)
			if err != nil {
				return err
			}
			runner := evaluation.NewRunner(engine.New(c), evaluation.NewGuardrails(entries))

			summary := runner.Run(scenarios)
			var sweepResult *evaluation.SweepResult
			if sweep {
				sweepResult = runner.Sweep()
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(struct {
					Summary *evaluation.EvalSummary `json:"summary"`
					Sweep   *evaluation.SweepResult `json:"sweep,omitempty"`
				}{summary, sweepResult}); err != nil {
					return err
				}
			} else {
				printSummary(cmd, summary, sweepResult)
			}

			failed := summary.TotalScenarios - summary.Passed
			if sweepResult != nil {
				for _, n := range sweepResult.Violations {
					failed += n
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d evaluation failures", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&goldenPath, "golden", "config/golden_scenarios.json", "Golden scenarios file")
	cmd.Flags().BoolVar(&sweep, "sweep", false, "Check guardrails over the whole answer space")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")

	return cmd
}

func printSummary(cmd *cobra.Command, summary *evaluation.EvalSummary, sweep *evaluation.SweepResult) {
	out := cmd.OutOrStdout()
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	for _, r := range summary.Results {
		if r.Passed() {
			green.Fprintf(out, "✓ %s", r.ScenarioID)
			fmt.Fprintf(out, " (%s)\n", r.Latency)
			continue
		}
		red.Fprintf(out, "✗ %s\n", r.ScenarioID)
		if r.Err != nil {
			fmt.Fprintf(out, "    error: %v\n", r.Err)
		}
		for _, m := range r.Mismatches {
			fmt.Fprintf(out, "    %s\n", m)
		}
		for _, v := range r.Violations {
			fmt.Fprintf(out, "    guardrail %s\n", v)
		}
	}

	fmt.Fprintf(out, "\n%d/%d scenarios passed (pass rate %.0f%%, category accuracy %.0f%%, avg latency %s)\n",
		summary.Passed, summary.TotalScenarios, summary.PassRate*100, summary.CategoryAccuracy*100, summary.AvgLatency)

	if sweep == nil {
		return
	}
	fmt.Fprintf(out, "Sweep: %d answer combinations checked, %d errors\n", sweep.Checked, sweep.Errors)
	rules := make([]string, 0, len(sweep.Violations))
	for rule := range sweep.Violations {
		rules = append(rules, rule)
	}
	sort.Strings(rules)
	for _, rule := range rules {
		red.Fprintf(out, "  %s: %d violations, e.g. %+v\n", rule, sweep.Violations[rule], sweep.Examples[rule])
	}
}
