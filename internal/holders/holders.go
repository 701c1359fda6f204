package holders

import (
	"math/big"
	"sort"

	"tokenservice/internal/explorer"

	"github.com/ethereum/go-ethereum/common"
)

// Balance pairs a holder with its raw base-unit balance.
type Balance struct {
	Address string
	Amount  *big.Int
}

// CollectAddresses 从交易列表中提取去重后的地址（from/to），保持首次出现的顺序。
// 地址统一转换为 EIP-55 校验格式后再去重。
func CollectAddresses(txs []explorer.Transaction) []string {
	seen := make(map[common.Address]struct{}, len(txs))
	addresses := make([]string, 0, len(txs))

	add := func(raw string) {
		if !common.IsHexAddress(raw) {
			return
		}
		addr := common.HexToAddress(raw)
		if _, ok := seen[addr]; ok {
			return
		}
		seen[addr] = struct{}{}
		addresses = append(addresses, addr.Hex())
	}

	for _, tx := range txs {
		add(tx.From)
		add(tx.To)
	}
	return addresses
}

// Rank sorts balances descending and keeps the first n. Ties keep input order.
func Rank(balances []Balance, n int) []Balance {
	if n <= 0 {
		return []Balance{}
	}

	ranked := make([]Balance, len(balances))
	copy(ranked, balances)
	sort.SliceStable(ranked, func(i, j int) bool {
		return amount(ranked[i]).Cmp(amount(ranked[j])) > 0
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func amount(b Balance) *big.Int {
	if b.Amount == nil {
		return new(big.Int)
	}
	return b.Amount
}
