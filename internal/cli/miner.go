package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show miner stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Miner

			if err := client.Get("/api/v1/miner", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMineCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Perform a mining action",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}

			out := NewOutput(cfg.Output)

			for i := 0; i < count; i++ {
				var result MineResult

				if err := client.Post("/api/v1/miner/mine", nil, &result); err != nil {
					return err
				}

				out.Print(result)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of mining actions")

	return cmd
}

func newAutoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "auto [on|off]",
		Short:     "Enable or disable auto-mining",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var enabled bool
			switch args[0] {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				return fmt.Errorf("argument must be 'on' or 'off'")
			}

			req := map[string]bool{"enabled": enabled}
			var result Miner

			if err := client.Post("/api/v1/miner/auto-mining", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	return cmd
}
