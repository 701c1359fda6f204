package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "Show the token balance of one address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := newClient().GetBalance(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
			{"Address", "Balance"},
			{args[0], resp.Balance},
		}).Render()
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch <address>...",
	Short: "Show token balances of several addresses",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := newClient().GetBalanceBatch(cmd.Context(), args)
		if err != nil {
			return err
		}
		return pterm.DefaultTable.WithHasHeader().WithData(batchTable(args, resp.Balances)).Render()
	},
}

func batchTable(addresses []string, balances []float64) pterm.TableData {
	data := pterm.TableData{{"Address", "Balance"}}
	for i, addr := range addresses {
		if i >= len(balances) {
			break
		}
		data = append(data, []string{addr, fmt.Sprint(balances[i])})
	}
	return data
}
