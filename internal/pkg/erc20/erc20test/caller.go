// Package erc20test provides an in-memory ethereum.ContractCaller that
// answers ERC20 view calls for tests.
package erc20test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"sync/atomic"

	"tokenservice/internal/pkg/erc20"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

// Contract is the state of one fake token.
type Contract struct {
	Name        string
	Symbol      string
	Decimals    uint8
	TotalSupply *big.Int
	Balances    map[common.Address]*big.Int
}

// Caller serves eth_call requests for registered contracts. Balance lookups
// for owners listed in FailOwners return an error. Unknown contracts return
// empty output, like a call to an address without code.
type Caller struct {
	mu         sync.Mutex
	contracts  map[common.Address]*Contract
	FailOwners map[common.Address]bool
	Head       uint64

	calls    atomic.Int64
	inFlight atomic.Int64
	maxSeen  atomic.Int64
	// Hold, when set, is called while a balanceOf call is in flight.
	Hold func()
}

func NewCaller() *Caller {
	return &Caller{
		contracts:  make(map[common.Address]*Contract),
		FailOwners: make(map[common.Address]bool),
	}
}

// Deploy registers c at address.
func (f *Caller) Deploy(address common.Address, c *Contract) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.Balances == nil {
		c.Balances = make(map[common.Address]*big.Int)
	}
	f.contracts[address] = c
}

// Calls is the number of CallContract invocations so far.
func (f *Caller) Calls() int64 {
	return f.calls.Load()
}

// MaxConcurrent is the highest number of balanceOf calls seen in flight at once.
func (f *Caller) MaxConcurrent() int64 {
	return f.maxSeen.Load()
}

// BlockNumber reports Head; it lets Caller stand in for an RPC client.
func (f *Caller) BlockNumber(context.Context) (uint64, error) {
	return f.Head, nil
}

func (f *Caller) CallContract(ctx context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.calls.Add(1)
	if msg.To == nil || len(msg.Data) < 4 {
		return nil, errors.New("erc20test: malformed call")
	}

	f.mu.Lock()
	c, ok := f.contracts[*msg.To]
	f.mu.Unlock()
	if !ok {
		return nil, nil
	}

	method, err := erc20.ABI.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}

	switch method.Name {
	case "name":
		return method.Outputs.Pack(c.Name)
	case "symbol":
		return method.Outputs.Pack(c.Symbol)
	case "decimals":
		return method.Outputs.Pack(c.Decimals)
	case "totalSupply":
		return method.Outputs.Pack(nonNil(c.TotalSupply))
	case "balanceOf":
		args, err := method.Inputs.Unpack(msg.Data[4:])
		if err != nil {
			return nil, err
		}
		owner := args[0].(common.Address)
		return f.balanceOf(ctx, method.Outputs.Pack, c, owner)
	default:
		return nil, fmt.Errorf("erc20test: unsupported method %s", method.Name)
	}
}

func (f *Caller) balanceOf(ctx context.Context, pack func(...any) ([]byte, error), c *Contract, owner common.Address) ([]byte, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		seen := f.maxSeen.Load()
		if n <= seen || f.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}
	if f.Hold != nil {
		f.Hold()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	fail := f.FailOwners[owner]
	balance := c.Balances[owner]
	f.mu.Unlock()

	if fail {
		return nil, fmt.Errorf("erc20test: execution reverted for %s", strings.ToLower(owner.Hex()))
	}
	return pack(nonNil(balance))
}

func nonNil(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
