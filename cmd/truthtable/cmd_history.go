package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"nickandperla.net/truthtable/pkg/truthtable"
)

var historyLimit int

// lastCmd reprints the most recent table from the store
var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the most recently computed table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showLast(newRenderer(cmd.OutOrStdout(), cfg.Display))
	},
}

// historyCmd lists stored inputs
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously computed inputs, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showHistory(newRenderer(cmd.OutOrStdout(), cfg.Display), historyLimit)
	},
}

// clearCmd empties the store
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every stored table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := calc.ClearHistory(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of entries to show (0 = all)")
}

func showLast(r *renderer) error {
	e, err := calc.Last()
	if errors.Is(err, truthtable.ErrNoStore) {
		return fmt.Errorf("no table store configured (use --store sqlite or memory)")
	}
	if err != nil {
		return err
	}
	if e == nil {
		fmt.Fprintln(r.out, "No table computed yet.")
		return nil
	}
	fmt.Fprintf(r.out, "#%d  %s  %s\n", e.Version, e.Ts, e.Input)
	fmt.Fprintln(r.out, r.grid(e.Table))
	return nil
}

func showHistory(r *renderer, limit int) error {
	entries, err := calc.History(limit)
	if errors.Is(err, truthtable.ErrNoStore) {
		return fmt.Errorf("no table store configured (use --store sqlite or memory)")
	}
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "No history.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(r.out, "#%-4d %s  %s  (%d rows)\n", e.Version, e.Ts, e.Input, len(e.Table.Rows))
	}
	return nil
}
