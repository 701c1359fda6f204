package erc20

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

//go:embed erc20.abi.json
var abiJSON []byte

// ABI 标准 ERC20 合约接口
var ABI = mustParseABI(abiJSON)

func mustParseABI(raw []byte) abi.ABI {
	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("erc20: invalid embedded abi: %v", err))
	}
	return parsed
}

// Info 代币基础信息
type Info struct {
	Symbol      string
	Name        string
	TotalSupply *big.Int
}

// Token is a read-only binding to an ERC20 contract.
type Token struct {
	address common.Address
	caller  ethereum.ContractCaller
}

// NewToken binds the contract at address. caller is usually an *ethclient.Client.
func NewToken(address common.Address, caller ethereum.ContractCaller) *Token {
	return &Token{
		address: address,
		caller:  caller,
	}
}

// At returns a binding to another contract that shares the same caller.
func (t *Token) At(address common.Address) *Token {
	return NewToken(address, t.caller)
}

// Address 合约地址
func (t *Token) Address() common.Address {
	return t.address
}

// BalanceOf 查询 owner 的代币余额（最小单位）
func (t *Token) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	var balance *big.Int
	if err := t.call(ctx, &balance, "balanceOf", owner); err != nil {
		return nil, err
	}
	return balance, nil
}

func (t *Token) Symbol(ctx context.Context) (string, error) {
	var symbol string
	if err := t.call(ctx, &symbol, "symbol"); err != nil {
		return "", err
	}
	return symbol, nil
}

func (t *Token) Name(ctx context.Context) (string, error) {
	var name string
	if err := t.call(ctx, &name, "name"); err != nil {
		return "", err
	}
	return name, nil
}

func (t *Token) TotalSupply(ctx context.Context) (*big.Int, error) {
	var supply *big.Int
	if err := t.call(ctx, &supply, "totalSupply"); err != nil {
		return nil, err
	}
	return supply, nil
}

func (t *Token) Decimals(ctx context.Context) (uint8, error) {
	var decimals uint8
	if err := t.call(ctx, &decimals, "decimals"); err != nil {
		return 0, err
	}
	return decimals, nil
}

// Info 依次查询 symbol、name、totalSupply
func (t *Token) Info(ctx context.Context) (*Info, error) {
	symbol, err := t.Symbol(ctx)
	if err != nil {
		return nil, err
	}
	name, err := t.Name(ctx)
	if err != nil {
		return nil, err
	}
	supply, err := t.TotalSupply(ctx)
	if err != nil {
		return nil, err
	}
	return &Info{
		Symbol:      symbol,
		Name:        name,
		TotalSupply: supply,
	}, nil
}

// call packs method(args...), runs eth_call against the latest block and
// unpacks the single return value into out.
func (t *Token) call(ctx context.Context, out any, method string, args ...any) error {
	data, err := ABI.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("erc20 %s: pack: %w", method, err)
	}

	result, err := t.caller.CallContract(ctx, ethereum.CallMsg{
		To:   &t.address,
		Data: data,
	}, nil)
	if err != nil {
		return fmt.Errorf("erc20 %s: call %s: %w", method, t.address.Hex(), err)
	}

	values, err := ABI.Unpack(method, result)
	if err != nil {
		return fmt.Errorf("erc20 %s: unpack: %w", method, err)
	}
	if len(values) == 0 {
		return fmt.Errorf("erc20 %s: empty result", method)
	}

	switch dst := out.(type) {
	case **big.Int:
		*dst = abi.ConvertType(values[0], new(big.Int)).(*big.Int)
	case *string:
		s, ok := values[0].(string)
		if !ok {
			return fmt.Errorf("erc20 %s: unexpected type %T", method, values[0])
		}
		*dst = s
	case *uint8:
		v, ok := values[0].(uint8)
		if !ok {
			return fmt.Errorf("erc20 %s: unexpected type %T", method, values[0])
		}
		*dst = v
	default:
		return fmt.Errorf("erc20 %s: unsupported output %T", method, out)
	}
	return nil
}
