package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/realestate-game/game/config"
	"github.com/wricardo/realestate-game/game/engine"
	"github.com/wricardo/realestate-game/game/scenario"
)

var errUsage = errors.New("usage error")

func (a *app) configManager() (*config.Manager, error) {
	return config.NewManager(a.configDir, config.WithLogger(a.logger))
}

// play runs a scenario file and prints its report
func (a *app) play(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("%w: play expects exactly one scenario file", errUsage)
	}

	sc, err := scenario.Load(cmd.Args().First())
	if err != nil {
		return err
	}

	var source scenario.ConfigSource
	if manager, err := a.configManager(); err != nil {
		a.logger.Warn().Err(err).Msg("config directory unavailable, using built-in board")
	} else {
		source = manager
	}

	report, err := scenario.NewRunner(source, a.logger).Run(ctx, sc)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printReport(a.out, report)
	return nil
}

// listConfigs prints every valid board in the config directory
func (a *app) listConfigs(ctx context.Context, cmd *cli.Command) error {
	manager, err := a.configManager()
	if err != nil {
		return err
	}

	configs, err := manager.ListConfigs()
	if err != nil {
		return err
	}
	if len(configs) == 0 {
		fmt.Fprintf(a.out, "No board configurations found in %s\n", manager.ConfigDir())
		return nil
	}

	def := manager.GetDefault()
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSPACES\tGO PAYOUT\tDESCRIPTION")
	for _, info := range configs {
		name := info.Name
		if def != nil && def.Name == info.Name {
			name += " (default)"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", info.ConfigID, name, info.BoardSize, info.GoPayout, info.Description)
	}
	return w.Flush()
}

func printReport(out io.Writer, report *scenario.Report) {
	fmt.Fprintf(out, "Scenario: %s (board %s, game %s)\n", report.Scenario, report.Board, report.GameID)
	for _, result := range report.Actions {
		fmt.Fprintf(out, "  #%-3d %s\n", result.Index, describe(result))
	}

	if report.Stopped {
		fmt.Fprintln(out, "Stopped early: a winner was found")
	}

	fmt.Fprintln(out, "Standings:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, s := range report.Standings {
		status := ""
		if s.Bankrupt {
			status = "bankrupt"
		}
		fmt.Fprintf(w, "  %d.\t%s\tbalance %d\tnet worth %d\tspaces %v\t%s\n",
			s.Rank, s.Name, s.Balance, s.NetWorth, s.OwnedSpaces, status)
	}
	w.Flush()

	if report.GameOver {
		fmt.Fprintf(out, "Winner: %s\n", report.Winner)
	} else {
		fmt.Fprintln(out, "No winner yet")
	}
}

// describe renders one action result as a single line
func describe(result scenario.ActionResult) string {
	switch result.Kind {
	case scenario.ActionMove:
		turn := result.Turn
		var b strings.Builder
		fmt.Fprintf(&b, "%s moves %d: %d -> %d", turn.Player, turn.Steps, turn.From, turn.To)
		if turn.PassedGo {
			fmt.Fprintf(&b, ", passes GO (+%d)", turn.GoPayout)
		}
		switch turn.Outcome {
		case engine.OutcomeRentPaid:
			fmt.Fprintf(&b, ", pays %d rent to %s", turn.RentPaid, turn.Owner)
		case engine.OutcomeBankrupt:
			fmt.Fprintf(&b, ", owes %d to %s, pays %d and goes bankrupt", turn.RentOwed, turn.Owner, turn.RentPaid)
			if len(turn.Liquidated) > 0 {
				fmt.Fprintf(&b, " (spaces %v return to the bank)", turn.Liquidated)
			}
		default:
			fmt.Fprintf(&b, " (%s)", turn.Outcome)
		}
		fmt.Fprintf(&b, ", balance %d", turn.BalanceAfter)
		return b.String()

	case scenario.ActionBuy:
		if result.Purchased {
			return fmt.Sprintf("%s buys space %d for %d", result.Player, result.Space, result.Price)
		}
		return fmt.Sprintf("%s cannot buy space %d", result.Player, result.Space)

	default:
		if result.GameOver {
			return fmt.Sprintf("check: %s wins", result.Winner)
		}
		return "check: game continues"
	}
}
