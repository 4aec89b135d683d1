package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/labs-events/internal/resultrate"
)

var (
	flagRateStrategy   string
	flagRateWins       float64
	flagRateLosses     float64
	flagRateTies       float64
	flagRatePercentage bool
)

// newRateCmd creates the rate subcommand, a command-line front end to
// the result-rate formula table the dashboard uses.
func newRateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Compute a result rate from a win/loss/tie record",
		Long: `Compute a result rate from a win/loss/tie record under one of the
fixed tie-handling strategies: ` + strategyList() + `.`,
		RunE: runRate,
	}

	cmd.Flags().StringVar(&flagRateStrategy, "strategy", string(resultrate.DefaultStrategy), "Tie-handling strategy")
	cmd.Flags().Float64Var(&flagRateWins, "wins", 0, "Number of wins")
	cmd.Flags().Float64Var(&flagRateLosses, "losses", 0, "Number of losses")
	cmd.Flags().Float64Var(&flagRateTies, "ties", 0, "Number of ties")
	cmd.Flags().BoolVar(&flagRatePercentage, "percentage", false, "Report the rate as a percentage in [0, 100]")

	return cmd
}

func runRate(cmd *cobra.Command, args []string) error {
	strategy := resultrate.Strategy(flagRateStrategy)

	rate, err := resultrate.Calculate(strategy, flagRateWins, flagRateLosses, flagRateTies, flagRatePercentage)
	if err != nil {
		return fmt.Errorf("%w (known strategies: %s)", err, strategyList())
	}

	// Calculate succeeded, so the strategy is known
	label, _ := resultrate.Label(strategy)

	if flagRatePercentage {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %.1f%%\n", label, rate)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %g\n", label, rate)
	}
	return nil
}

func strategyList() string {
	names := make([]string, 0, len(resultrate.Strategies))
	for _, s := range resultrate.Strategies {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
