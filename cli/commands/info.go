package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <token address>",
	Short: "Show symbol, name and total supply of a token contract",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := newClient().GetTokenInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		supply := "0"
		if resp.TotalSupply != nil {
			supply = resp.TotalSupply.String()
		}
		return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
			{"Symbol", "Name", "Total supply"},
			{resp.Symbol, resp.Name, supply},
		}).Render()
	},
}
