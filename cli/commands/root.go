package commands

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	timeout   time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "tokencli",
	Short: "Query ERC20 balances and top holders through tokenservice",
	Long: `tokencli talks to a running tokenservice instance and prints balances,
top holders and token metadata as tables.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8888", "tokenservice base url")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "request timeout")

	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(topTxCmd)
	rootCmd.AddCommand(infoCmd)
}

func newClient() *apiClient {
	return newAPIClient(serverURL, timeout)
}
