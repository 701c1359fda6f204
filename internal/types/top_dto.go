package types

// TopReq N 为字符串，便于返回自定义的参数错误
type TopReq struct {
	N string `form:"N,optional"`
}

type HolderBalance struct {
	Address string  `json:"address"`
	Balance float64 `json:"balance"`
}

type TopResp struct {
	TopBalances []HolderBalance `json:"top_balances"`
}

type HolderActivity struct {
	Address string  `json:"address"`
	Balance float64 `json:"balance"`
	// LastTransactionDate is the explorer timeStamp (unix seconds), null when unknown.
	LastTransactionDate *string `json:"last_transaction_date"`
}

type TopWithTransactionsResp struct {
	TopWithTransactions []HolderActivity `json:"top_with_transactions"`
}
