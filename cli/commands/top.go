package commands

import (
	"fmt"

	"tokenservice/internal/types"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var topN int

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the top holders by balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		spinner, _ := pterm.DefaultSpinner.Start("Ranking holders...")
		resp, err := newClient().GetTop(cmd.Context(), topN)
		if err != nil {
			spinner.Fail(err.Error())
			return err
		}
		spinner.Success(fmt.Sprintf("%d holders", len(resp.TopBalances)))
		return pterm.DefaultTable.WithHasHeader().WithData(topTable(resp.TopBalances)).Render()
	},
}

var topTxCmd = &cobra.Command{
	Use:   "top-tx",
	Short: "Show the top holders with their last transaction time",
	RunE: func(cmd *cobra.Command, args []string) error {
		spinner, _ := pterm.DefaultSpinner.Start("Ranking holders...")
		resp, err := newClient().GetTopWithTransactions(cmd.Context(), topN)
		if err != nil {
			spinner.Fail(err.Error())
			return err
		}
		spinner.Success(fmt.Sprintf("%d holders", len(resp.TopWithTransactions)))
		return pterm.DefaultTable.WithHasHeader().WithData(topTxTable(resp.TopWithTransactions)).Render()
	},
}

func init() {
	topCmd.Flags().IntVarP(&topN, "n", "n", 0, "number of holders (server default when 0)")
	topTxCmd.Flags().IntVarP(&topN, "n", "n", 0, "number of holders (server default when 0)")
}

func topTable(rows []types.HolderBalance) pterm.TableData {
	data := pterm.TableData{{"#", "Address", "Balance"}}
	for i, row := range rows {
		data = append(data, []string{fmt.Sprint(i + 1), row.Address, fmt.Sprint(row.Balance)})
	}
	return data
}

func topTxTable(rows []types.HolderActivity) pterm.TableData {
	data := pterm.TableData{{"#", "Address", "Balance", "Last transaction"}}
	for i, row := range rows {
		last := "-"
		if row.LastTransactionDate != nil {
			last = *row.LastTransactionDate
		}
		data = append(data, []string{fmt.Sprint(i + 1), row.Address, fmt.Sprint(row.Balance), last})
	}
	return data
}
