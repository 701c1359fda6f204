package balance

import (
	"context"
	"strings"

	"tokenservice/internal/errorx"
	"tokenservice/internal/pkg/units"
	"tokenservice/internal/svc"
	"tokenservice/internal/types"

	"github.com/ethereum/go-ethereum/common"
	"github.com/zeromicro/go-zero/core/logx"
)

type BalanceLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewBalanceLogic(ctx context.Context, svcCtx *svc.ServiceContext) *BalanceLogic {
	return &BalanceLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// GetBalance 查询单个地址的代币余额
func (l *BalanceLogic) GetBalance(req *types.BalanceReq) (*types.BalanceResp, error) {
	address := strings.TrimSpace(req.Address)
	if address == "" {
		return nil, errorx.ErrAddressRequired
	}
	if !common.IsHexAddress(address) {
		l.Errorf("非法地址: %s", address)
		return nil, errorx.ErrInvalidAddress
	}

	amount, err := l.svcCtx.Token.BalanceOf(l.ctx, common.HexToAddress(address))
	if err != nil {
		l.Errorf("查询余额失败 for address %s: %v", address, err)
		return nil, errorx.ErrGetBalance
	}

	return &types.BalanceResp{
		Balance: units.FormatUnits(amount, l.svcCtx.Decimals),
	}, nil
}

// GetBalanceBatch 批量查询余额，结果顺序与请求一致；任一地址失败则整体失败
func (l *BalanceLogic) GetBalanceBatch(req *types.BalanceBatchReq) (*types.BalanceBatchResp, error) {
	if len(req.Addresses) == 0 {
		return nil, errorx.ErrEmptyAddressList
	}

	addresses, ok := parseAddresses(req.Addresses)
	if !ok {
		l.Errorf("批量请求包含非法地址: %v", req.Addresses)
		return nil, errorx.ErrInvalidAddress
	}

	amounts, err := fetchBalances(l.ctx, l.svcCtx.Token, addresses, l.svcCtx.Config.Top.Concurrency)
	if err != nil {
		l.Errorf("批量查询余额失败: %v", err)
		return nil, errorx.ErrGetBalances
	}

	balances := make([]float64, 0, len(amounts))
	for _, amount := range amounts {
		balances = append(balances, units.ToFloat(amount, l.svcCtx.Decimals))
	}
	return &types.BalanceBatchResp{Balances: balances}, nil
}
