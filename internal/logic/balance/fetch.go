package balance

import (
	"context"
	"fmt"
	"math/big"

	"tokenservice/internal/pkg/erc20"

	"github.com/ethereum/go-ethereum/common"
	"github.com/zeromicro/go-zero/core/mr"
)

type balanceTask struct {
	index   int
	address common.Address
}

type balanceResult struct {
	index  int
	amount *big.Int
}

// fetchBalances issues one balanceOf per address with at most workers calls
// in flight. Results keep the order of addresses. The first failure cancels
// the remaining calls and is returned.
func fetchBalances(ctx context.Context, token *erc20.Token, addresses []common.Address, workers int) ([]*big.Int, error) {
	if len(addresses) == 0 {
		return []*big.Int{}, nil
	}

	return mr.MapReduce(func(source chan<- balanceTask) {
		for i, addr := range addresses {
			source <- balanceTask{index: i, address: addr}
		}
	}, func(task balanceTask, writer mr.Writer[balanceResult], cancel func(error)) {
		amount, err := token.BalanceOf(ctx, task.address)
		if err != nil {
			cancel(fmt.Errorf("balanceOf %s: %w", task.address.Hex(), err))
			return
		}
		writer.Write(balanceResult{index: task.index, amount: amount})
	}, func(pipe <-chan balanceResult, writer mr.Writer[[]*big.Int], cancel func(error)) {
		amounts := make([]*big.Int, len(addresses))
		for r := range pipe {
			amounts[r.index] = r.amount
		}
		writer.Write(amounts)
	}, mr.WithContext(ctx), mr.WithWorkers(workers))
}
