package balance

import (
	"context"
	"fmt"

	"tokenservice/internal/constant"
	"tokenservice/internal/explorer"
	"tokenservice/internal/holders"
	"tokenservice/internal/svc"

	"github.com/ethereum/go-ethereum/common"
)

// discoverAddresses 通过代币合约的历史交易收集候选持有人地址
func discoverAddresses(ctx context.Context, svcCtx *svc.ServiceContext) ([]common.Address, error) {
	head, err := svcCtx.Chain.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get block number: %w", err)
	}

	txs, err := svcCtx.Explorer.TxList(ctx, explorer.TxListQuery{
		Address:    svcCtx.Token.Address().Hex(),
		StartBlock: constant.StartBlock,
		EndBlock:   head,
		Sort:       constant.SortAsc,
	})
	if err != nil {
		return nil, err
	}

	collected := holders.CollectAddresses(txs)
	addresses := make([]common.Address, 0, len(collected))
	for _, a := range collected {
		addresses = append(addresses, common.HexToAddress(a))
	}
	return addresses, nil
}

// parseAddresses validates raw hex addresses and returns them in order.
func parseAddresses(raw []string) ([]common.Address, bool) {
	addresses := make([]common.Address, 0, len(raw))
	for _, r := range raw {
		if !common.IsHexAddress(r) {
			return nil, false
		}
		addresses = append(addresses, common.HexToAddress(r))
	}
	return addresses, true
}
