package types

// BalanceReq 单地址余额查询
type BalanceReq struct {
	Address string `form:"address,optional"`
}

// BalanceResp carries the balance as an exact decimal string.
type BalanceResp struct {
	Balance string `json:"balance"`
}

// BalanceBatchReq 批量余额查询
type BalanceBatchReq struct {
	Addresses []string `json:"addresses,optional"`
}

// BalanceBatchResp lists balances in request order.
type BalanceBatchResp struct {
	Balances []float64 `json:"balances"`
}
