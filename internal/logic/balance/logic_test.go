package balance

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"tokenservice/internal/config"
	"tokenservice/internal/errorx"
	"tokenservice/internal/pkg/erc20/erc20test"
	"tokenservice/internal/svc"
	"tokenservice/internal/types"

	"github.com/ethereum/go-ethereum/common"
)

var (
	tokenAddr = common.HexToAddress("0x1a9b54a3075119f1546c52ca0940551a6ce5d2d0")
	holderA   = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	holderB   = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	holderC   = common.HexToAddress("0x00000000000000000000000000000000000000c3")
	holderD   = common.HexToAddress("0x00000000000000000000000000000000000000d4")
)

func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}

type fixture struct {
	caller *erc20test.Caller
	svcCtx *svc.ServiceContext
	// endblock seen by the explorer on the token history request
	endBlock atomic.Value
}

// newFixture serves the token history through txlist; handler overrides the
// explorer when non-nil.
func newFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()

	f := &fixture{caller: erc20test.NewCaller()}
	f.caller.Head = 4242
	f.caller.Deploy(tokenAddr, &erc20test.Contract{
		Name:        "Test Token",
		Symbol:      "TST",
		Decimals:    18,
		TotalSupply: ether(1000),
		Balances: map[common.Address]*big.Int{
			holderA: ether(100),
			holderB: ether(300),
			holderC: ether(50),
			holderD: ether(200),
		},
	})

	if handler == nil {
		handler = func(w http.ResponseWriter, r *http.Request) {
			f.endBlock.Store(r.URL.Query().Get("endblock"))
			fmt.Fprintf(w, `{"status":"1","message":"OK","result":[
				{"from":"%[1]s","to":"%[5]s","timeStamp":"1"},
				{"from":"%[2]s","to":"%[5]s","timeStamp":"2"},
				{"from":"%[3]s","to":"%[5]s","timeStamp":"3"},
				{"from":"%[1]s","to":"%[5]s","timeStamp":"4"},
				{"from":"%[4]s","to":"","timeStamp":"5"}
			]}`, holderA.Hex(), holderB.Hex(), holderC.Hex(), holderD.Hex(), tokenAddr.Hex())
		}
	}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var c config.Config
	c.Token.Address = tokenAddr.Hex()
	c.Token.Decimals = 18
	c.Explorer.ApiUrl = srv.URL
	c.Explorer.Timeout = 5 * time.Second
	c.Top.DefaultN = 10
	c.Top.Concurrency = 2

	f.svcCtx = svc.NewServiceContextWithClient(c, f.caller)
	return f
}

func TestGetBalance(t *testing.T) {
	f := newFixture(t, nil)
	f.caller.Deploy(tokenAddr, &erc20test.Contract{
		Balances: map[common.Address]*big.Int{holderA: big.NewInt(1_500_000_000_000_000_000)},
	})
	l := NewBalanceLogic(context.Background(), f.svcCtx)

	resp, err := l.GetBalance(&types.BalanceReq{Address: holderA.Hex()})
	if err != nil {
		t.Fatalf("GetBalance failed: %v", err)
	}
	if resp.Balance != "1.5" {
		t.Fatalf("expected 1.5, got %s", resp.Balance)
	}
}

func TestGetBalanceValidation(t *testing.T) {
	f := newFixture(t, nil)
	l := NewBalanceLogic(context.Background(), f.svcCtx)

	if _, err := l.GetBalance(&types.BalanceReq{}); !errors.Is(err, errorx.ErrAddressRequired) {
		t.Errorf("expected ErrAddressRequired, got %v", err)
	}
	if _, err := l.GetBalance(&types.BalanceReq{Address: "0x123"}); !errors.Is(err, errorx.ErrInvalidAddress) {
		t.Errorf("expected ErrInvalidAddress, got %v", err)
	}

	f.caller.FailOwners[holderA] = true
	if _, err := l.GetBalance(&types.BalanceReq{Address: holderA.Hex()}); !errors.Is(err, errorx.ErrGetBalance) {
		t.Errorf("expected ErrGetBalance, got %v", err)
	}
}

func TestGetBalanceBatch(t *testing.T) {
	f := newFixture(t, nil)
	l := NewBalanceLogic(context.Background(), f.svcCtx)

	resp, err := l.GetBalanceBatch(&types.BalanceBatchReq{
		Addresses: []string{holderB.Hex(), holderA.Hex(), holderC.Hex()},
	})
	if err != nil {
		t.Fatalf("GetBalanceBatch failed: %v", err)
	}
	want := []float64{300, 100, 50}
	if len(resp.Balances) != len(want) {
		t.Fatalf("expected %d balances, got %d", len(want), len(resp.Balances))
	}
	for i := range want {
		if resp.Balances[i] != want[i] {
			t.Errorf("balance %d = %v, want %v", i, resp.Balances[i], want[i])
		}
	}
}

func TestGetBalanceBatchErrors(t *testing.T) {
	f := newFixture(t, nil)
	l := NewBalanceLogic(context.Background(), f.svcCtx)

	if _, err := l.GetBalanceBatch(&types.BalanceBatchReq{}); !errors.Is(err, errorx.ErrEmptyAddressList) {
		t.Errorf("expected ErrEmptyAddressList, got %v", err)
	}
	if _, err := l.GetBalanceBatch(&types.BalanceBatchReq{Addresses: []string{"nope"}}); !errors.Is(err, errorx.ErrInvalidAddress) {
		t.Errorf("expected ErrInvalidAddress, got %v", err)
	}

	f.caller.FailOwners[holderC] = true
	_, err := l.GetBalanceBatch(&types.BalanceBatchReq{
		Addresses: []string{holderA.Hex(), holderC.Hex()},
	})
	if !errors.Is(err, errorx.ErrGetBalances) {
		t.Errorf("expected ErrGetBalances, got %v", err)
	}
}

func TestGetTop(t *testing.T) {
	f := newFixture(t, nil)
	f.caller.Hold = func() { time.Sleep(5 * time.Millisecond) }
	l := NewTopLogic(context.Background(), f.svcCtx)

	resp, err := l.GetTop(&types.TopReq{N: "3"})
	if err != nil {
		t.Fatalf("GetTop failed: %v", err)
	}

	want := []types.HolderBalance{
		{Address: holderB.Hex(), Balance: 300},
		{Address: holderD.Hex(), Balance: 200},
		{Address: holderA.Hex(), Balance: 100},
	}
	if len(resp.TopBalances) != len(want) {
		t.Fatalf("expected %d entries, got %d: %+v", len(want), len(resp.TopBalances), resp.TopBalances)
	}
	for i := range want {
		if resp.TopBalances[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, resp.TopBalances[i], want[i])
		}
	}

	if got := f.endBlock.Load(); got != "4242" {
		t.Errorf("expected discovery up to head block 4242, got %v", got)
	}
	if peak := f.caller.MaxConcurrent(); peak != 2 {
		t.Errorf("expected exactly 2 concurrent balance calls at peak, saw %d", peak)
	}
}

func TestGetTopDefaultN(t *testing.T) {
	f := newFixture(t, nil)
	l := NewTopLogic(context.Background(), f.svcCtx)

	resp, err := l.GetTop(&types.TopReq{})
	if err != nil {
		t.Fatalf("GetTop failed: %v", err)
	}
	// four holders plus the token contract itself
	if len(resp.TopBalances) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(resp.TopBalances))
	}
	for i := 1; i < len(resp.TopBalances); i++ {
		if resp.TopBalances[i-1].Balance < resp.TopBalances[i].Balance {
			t.Fatalf("result not sorted descending: %+v", resp.TopBalances)
		}
	}
}

func TestGetTopInvalidN(t *testing.T) {
	f := newFixture(t, nil)
	l := NewTopLogic(context.Background(), f.svcCtx)

	for _, n := range []string{"abc", "1.5", "-1"} {
		if _, err := l.GetTop(&types.TopReq{N: n}); !errors.Is(err, errorx.ErrInvalidN) {
			t.Errorf("N=%q: expected ErrInvalidN, got %v", n, err)
		}
	}
	if calls := f.caller.Calls(); calls != 0 {
		t.Errorf("expected no chain calls for invalid N, got %d", calls)
	}
}

func TestGetTopNoAddresses(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"0","message":"No transactions found","result":[]}`))
	})
	l := NewTopLogic(context.Background(), f.svcCtx)

	if _, err := l.GetTop(&types.TopReq{N: "5"}); !errors.Is(err, errorx.ErrNoAddresses) {
		t.Fatalf("expected ErrNoAddresses, got %v", err)
	}
}

func TestGetTopExplorerFailure(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"0","message":"NOTOK","result":"Invalid API Key"}`))
	})
	l := NewTopLogic(context.Background(), f.svcCtx)

	if _, err := l.GetTop(&types.TopReq{N: "5"}); !errors.Is(err, errorx.ErrNoAddresses) {
		t.Fatalf("expected ErrNoAddresses, got %v", err)
	}
}

func TestGetTopAbortsOnBalanceFailure(t *testing.T) {
	f := newFixture(t, nil)
	f.caller.FailOwners[holderC] = true
	l := NewTopLogic(context.Background(), f.svcCtx)

	if _, err := l.GetTop(&types.TopReq{N: "2"}); !errors.Is(err, errorx.ErrGetTop) {
		t.Fatalf("expected ErrGetTop, got %v", err)
	}
}

func TestGetTopWithTransactions(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("sort") == "asc" {
			fmt.Fprintf(w, `{"status":"1","message":"OK","result":[
				{"from":"%s","to":"%s"},{"from":"%s","to":"%s"}
			]}`, holderA.Hex(), holderB.Hex(), holderD.Hex(), holderC.Hex())
			return
		}
		switch q.Get("address") {
		case holderB.Hex():
			w.Write([]byte(`{"status":"1","message":"OK","result":[{"timeStamp":"1700000300"}]}`))
		case holderD.Hex():
			w.Write([]byte(`{"status":"0","message":"NOTOK","result":"Max rate limit reached"}`))
		default:
			w.Write([]byte(`{"status":"0","message":"No transactions found","result":[]}`))
		}
	})
	l := NewTopLogic(context.Background(), f.svcCtx)

	resp, err := l.GetTopWithTransactions(&types.TopReq{N: "3"})
	if err != nil {
		t.Fatalf("GetTopWithTransactions failed: %v", err)
	}

	rows := resp.TopWithTransactions
	if len(rows) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(rows))
	}
	if rows[0].Address != holderB.Hex() || rows[0].LastTransactionDate == nil || *rows[0].LastTransactionDate != "1700000300" {
		t.Errorf("unexpected first entry: %+v", rows[0])
	}
	if rows[1].Address != holderD.Hex() || rows[1].LastTransactionDate != nil {
		t.Errorf("expected failed lookup to yield nil date: %+v", rows[1])
	}
	if rows[2].Address != holderA.Hex() || rows[2].LastTransactionDate != nil {
		t.Errorf("expected idle holder to yield nil date: %+v", rows[2])
	}
}

func TestGetTokenInfo(t *testing.T) {
	f := newFixture(t, nil)
	other := common.HexToAddress("0x00000000000000000000000000000000000000ee")
	f.caller.Deploy(other, &erc20test.Contract{
		Name:        "Other",
		Symbol:      "OTH",
		TotalSupply: big.NewInt(77),
	})
	l := NewTokenLogic(context.Background(), f.svcCtx)

	resp, err := l.GetTokenInfo(&types.TokenInfoReq{Address: other.Hex()})
	if err != nil {
		t.Fatalf("GetTokenInfo failed: %v", err)
	}
	if resp.Symbol != "OTH" || resp.Name != "Other" || resp.TotalSupply.Int64() != 77 {
		t.Fatalf("unexpected token info: %+v", resp)
	}

	if _, err := l.GetTokenInfo(&types.TokenInfoReq{}); !errors.Is(err, errorx.ErrTokenAddressRequired) {
		t.Errorf("expected ErrTokenAddressRequired, got %v", err)
	}
	noCode := common.HexToAddress("0x00000000000000000000000000000000000000ff")
	if _, err := l.GetTokenInfo(&types.TokenInfoReq{Address: noCode.Hex()}); !errors.Is(err, errorx.ErrGetTokenInfo) {
		t.Errorf("expected ErrGetTokenInfo, got %v", err)
	}
}
