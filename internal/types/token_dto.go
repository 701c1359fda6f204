package types

import "math/big"

type TokenInfoReq struct {
	Address string `form:"address,optional"`
}

// TokenInfoResp totalSupply 为最小单位整数，序列化为 JSON 数字
type TokenInfoResp struct {
	Symbol      string   `json:"symbol"`
	Name        string   `json:"name"`
	TotalSupply *big.Int `json:"totalSupply"`
}
