package balance

import (
	"context"
	"strconv"
	"strings"
	"time"

	"tokenservice/internal/errorx"
	"tokenservice/internal/holders"
	"tokenservice/internal/pkg/units"
	"tokenservice/internal/svc"
	"tokenservice/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type TopLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewTopLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TopLogic {
	return &TopLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// GetTop 按余额降序返回前 N 个持有人
func (l *TopLogic) GetTop(req *types.TopReq) (*types.TopResp, error) {
	n, err := l.parseN(req.N)
	if err != nil {
		return nil, err
	}

	ranked, err := l.rankHolders(n)
	if err != nil {
		return nil, err
	}

	resp := &types.TopResp{TopBalances: make([]types.HolderBalance, 0, len(ranked))}
	for _, h := range ranked {
		resp.TopBalances = append(resp.TopBalances, types.HolderBalance{
			Address: h.Address,
			Balance: units.ToFloat(h.Amount, l.svcCtx.Decimals),
		})
	}
	return resp, nil
}

// GetTopWithTransactions 在 GetTop 的基础上附带每个地址最后一笔交易的时间
func (l *TopLogic) GetTopWithTransactions(req *types.TopReq) (*types.TopWithTransactionsResp, error) {
	n, err := l.parseN(req.N)
	if err != nil {
		return nil, err
	}

	ranked, err := l.rankHolders(n)
	if err != nil {
		return nil, err
	}

	resp := &types.TopWithTransactionsResp{
		TopWithTransactions: make([]types.HolderActivity, 0, len(ranked)),
	}
	for _, h := range ranked {
		// a failed lookup leaves the date empty instead of failing the request
		ts, err := l.svcCtx.Explorer.LastTransactionTime(l.ctx, h.Address)
		if err != nil {
			l.Errorf("查询最后交易时间失败 for address %s: %v", h.Address, err)
			ts = nil
		}
		resp.TopWithTransactions = append(resp.TopWithTransactions, types.HolderActivity{
			Address:             h.Address,
			Balance:             units.ToFloat(h.Amount, l.svcCtx.Decimals),
			LastTransactionDate: ts,
		})
	}
	return resp, nil
}

func (l *TopLogic) parseN(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return l.svcCtx.Config.Top.DefaultN, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		l.Errorf("非法参数 N=%q", raw)
		return 0, errorx.ErrInvalidN
	}
	return n, nil
}

func (l *TopLogic) rankHolders(n int) ([]holders.Balance, error) {
	addresses, err := discoverAddresses(l.ctx, l.svcCtx)
	if err != nil {
		l.Errorf("获取地址列表失败: %v", err)
		return nil, errorx.ErrNoAddresses
	}
	if len(addresses) == 0 {
		l.Infof("代币 %s 没有找到任何交易", l.svcCtx.Token.Address().Hex())
		return nil, errorx.ErrNoAddresses
	}

	start := time.Now()
	amounts, err := fetchBalances(l.ctx, l.svcCtx.Token, addresses, l.svcCtx.Config.Top.Concurrency)
	if err != nil {
		l.Errorf("查询持有人余额失败: %v", err)
		return nil, errorx.ErrGetTop
	}
	l.Infof("查询 %d 个地址余额耗时 %s", len(addresses), time.Since(start))

	balances := make([]holders.Balance, 0, len(addresses))
	for i, addr := range addresses {
		balances = append(balances, holders.Balance{Address: addr.Hex(), Amount: amounts[i]})
	}
	return holders.Rank(balances, n), nil
}
