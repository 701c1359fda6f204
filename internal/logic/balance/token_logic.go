package balance

import (
	"context"
	"strings"

	"tokenservice/internal/errorx"
	"tokenservice/internal/svc"
	"tokenservice/internal/types"

	"github.com/ethereum/go-ethereum/common"
	"github.com/zeromicro/go-zero/core/logx"
)

type TokenLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TokenLogic {
	return &TokenLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// GetTokenInfo reads symbol, name and totalSupply of the contract at req.Address.
func (l *TokenLogic) GetTokenInfo(req *types.TokenInfoReq) (*types.TokenInfoResp, error) {
	address := strings.TrimSpace(req.Address)
	if address == "" {
		return nil, errorx.ErrTokenAddressRequired
	}
	if !common.IsHexAddress(address) {
		l.Errorf("非法代币地址: %s", address)
		return nil, errorx.ErrInvalidAddress
	}

	info, err := l.svcCtx.Token.At(common.HexToAddress(address)).Info(l.ctx)
	if err != nil {
		l.Errorf("查询代币信息失败 for token %s: %v", address, err)
		return nil, errorx.ErrGetTokenInfo
	}

	return &types.TokenInfoResp{
		Symbol:      info.Symbol,
		Name:        info.Name,
		TotalSupply: info.TotalSupply,
	}, nil
}
