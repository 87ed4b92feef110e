package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUpgradesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgrades",
		Short: "Upgrade shop commands",
	}

	cmd.AddCommand(newUpgradesListCmd())
	cmd.AddCommand(newUpgradesBuyCmd())

	return cmd
}

func newUpgradesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available upgrades",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Upgrade

			if err := client.Get("/api/v1/upgrades", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newUpgradesBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <upgrade-id>",
		Short: "Purchase an upgrade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			upgradeID := args[0]

			var result PurchaseResult

			path := fmt.Sprintf("/api/v1/upgrades/%s/purchase", upgradeID)
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
