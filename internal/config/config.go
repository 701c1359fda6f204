package config

import (
	"time"

	"github.com/zeromicro/go-zero/rest"
)

type ChainConf struct {
	Name    string `json:",default=Polygon"`
	RpcUrl  string `json:",default=https://polygon-rpc.com"`
	ChainId int64  `json:",default=137"`
}

type TokenConf struct {
	Address string `json:",default=0x1a9b54a3075119f1546c52ca0940551a6ce5d2d0"`
	// Decimals is used to convert base units; ReadDecimals replaces it with
	// the contract's decimals() at startup.
	Decimals     int  `json:",default=18"`
	ReadDecimals bool `json:",optional"`
}

type ExplorerConf struct {
	ApiUrl          string        `json:",default=https://api.polygonscan.com/api"`
	ApiKey          string        `json:",optional"`
	Timeout         time.Duration `json:",default=30s"`
	RateLimit       float64       `json:",default=5"`
	Burst           int           `json:",default=1"`
	BreakerFailures uint32        `json:",default=5"`
	BreakerTimeout  time.Duration `json:",default=30s"`
}

type TopConf struct {
	DefaultN int `json:",default=10"`
	// Concurrency caps in-flight balanceOf calls during a fan-out.
	Concurrency int `json:",default=2"`
}

type Config struct {
	rest.RestConf
	Chain    ChainConf
	Token    TokenConf
	Explorer ExplorerConf
	Top      TopConf
}
