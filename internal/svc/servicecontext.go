package svc

import (
	"context"
	"time"

	"tokenservice/internal/config"
	"tokenservice/internal/explorer"
	"tokenservice/internal/pkg/erc20"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/zeromicro/go-zero/core/logx"
)

// ChainClient is the part of the JSON-RPC client the service uses.
// *ethclient.Client satisfies it.
type ChainClient interface {
	ethereum.ContractCaller
	BlockNumber(ctx context.Context) (uint64, error)
}

type ServiceContext struct {
	Config   config.Config
	Chain    ChainClient
	Token    *erc20.Token
	Explorer *explorer.Client
	// Decimals converts base units of Token into display amounts.
	Decimals int

	closeFn func()
}

func NewServiceContext(c config.Config) *ServiceContext {
	client, err := ethclient.Dial(c.Chain.RpcUrl)
	logx.Must(err)
	logx.Infof("已连接 %s RPC 节点: %s", c.Chain.Name, c.Chain.RpcUrl)

	ctx := NewServiceContextWithClient(c, client)
	ctx.closeFn = client.Close
	return ctx
}

// NewServiceContextWithClient wires the service around an existing chain client.
func NewServiceContextWithClient(c config.Config, client ChainClient) *ServiceContext {
	token := erc20.NewToken(common.HexToAddress(c.Token.Address), client)

	ctx := &ServiceContext{
		Config: c,
		Chain:  client,
		Token:  token,
		Explorer: explorer.NewClient(explorer.Options{
			ApiUrl:          c.Explorer.ApiUrl,
			ApiKey:          c.Explorer.ApiKey,
			Timeout:         c.Explorer.Timeout,
			RateLimit:       c.Explorer.RateLimit,
			Burst:           c.Explorer.Burst,
			BreakerFailures: c.Explorer.BreakerFailures,
			BreakerTimeout:  c.Explorer.BreakerTimeout,
		}),
		Decimals: c.Token.Decimals,
	}

	if c.Token.ReadDecimals {
		ctx.loadDecimals()
	}
	if len(c.Explorer.ApiKey) == 0 {
		logx.Infof("未配置区块浏览器 API_KEY，txlist 请求将使用匿名额度")
	}
	return ctx
}

func (s *ServiceContext) loadDecimals() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	decimals, err := s.Token.Decimals(ctx)
	if err != nil {
		logx.Errorf("读取代币 decimals 失败，使用配置值 %d: %v", s.Decimals, err)
		return
	}
	s.Decimals = int(decimals)
	logx.Infof("代币 %s decimals=%d", s.Token.Address().Hex(), s.Decimals)
}

// Close releases the RPC connection.
func (s *ServiceContext) Close() {
	if s.closeFn != nil {
		s.closeFn()
	}
}
