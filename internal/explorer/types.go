package explorer

import "encoding/json"

const (
	statusOK = "1"

	// NoTransactionsMessage is returned with status "0" when the address
	// has no history. It is not an error.
	NoTransactionsMessage = "No transactions found"
)

// TxListQuery selects the transactions of one address.
type TxListQuery struct {
	Address    string `url:"address"`
	StartBlock uint64 `url:"startblock"`
	EndBlock   uint64 `url:"endblock,omitempty"`
	Page       int    `url:"page,omitempty"`
	Offset     int    `url:"offset,omitempty"`
	Sort       string `url:"sort,omitempty"` // asc / desc
}

type txListParams struct {
	Module string `url:"module"`
	Action string `url:"action"`
	TxListQuery
	ApiKey string `url:"apikey,omitempty"`
}

// Transaction 区块浏览器 txlist 返回的交易记录，数值字段均为字符串
type Transaction struct {
	BlockNumber     string `json:"blockNumber"`
	TimeStamp       string `json:"timeStamp"`
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	ContractAddress string `json:"contractAddress"`
	IsError         string `json:"isError"`
}

// envelope is the Etherscan-family response wrapper. Result is a list on
// success and a plain string describing the failure otherwise.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}
