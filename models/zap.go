package models

import (
	"encoding/json"
	"fmt"

	"finco/openocean/codec"
	"finco/openocean/errors"
)

// Zap action types
const (
	ZapActionProtocolFee    = "protocolFee"
	ZapActionAggregatorSwap = "aggregatorSwap"
	ZapActionAddLiquidity   = "addLiquidity"
)

// ZapRouteParams body of POST /zap/:chain/in/route.
type ZapRouteParams struct {
	Dex               string          `json:"dex" validate:"required"`
	Pool              string          `json:"pool" validate:"required"`
	PositionTickUpper float64         `json:"positionTickUpper"`
	PositionTickLower float64         `json:"positionTickLower" validate:"ltfield=PositionTickUpper"`
	Tokens            []ZapTokenParam `json:"tokens" validate:"required,min=1,dive"`
	Slippage          string          `json:"slippage" validate:"required,numeric"`
	Referrer          *string         `json:"referrer,omitempty"`
	ReferrerFee       *string         `json:"referrerFee,omitempty"`
}

type ZapTokenParam struct {
	Token  string `json:"token" validate:"required"`
	Amount string `json:"amount" validate:"required,numeric"`
}

type ZapRouteData struct {
	ChainID      json.Number `json:"chainId"`
	PoolDetail   ZapPool     `json:"poolDetail"`
	ZapDetails   ZapDetails  `json:"zapDetails"`
	Route        string      `json:"route"`
	RouteAddress string      `json:"routeAddress"`
}

type ZapPool struct {
	PoolID string   `json:"poolId"`
	Dex    string   `json:"dex"`
	Token0 ZapToken `json:"token0"`
	Token1 ZapToken `json:"token1"`
}

type ZapToken struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Decimals int    `json:"decimals"`
	Price    F64    `json:"price"`
}

type ZapDetails struct {
	InitialAmountUSD  F64         `json:"initialAmountUsd"`
	Actions           []ZapAction `json:"actions"`
	AddedLiquidityUSD F64         `json:"addedLiquidityUsd"`
	ZapImpact         F64         `json:"zapImpact"`
}

// ZapAction is one step of a zap. Data depends on Type and is decoded on demand.
type ZapAction struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type ZapProtocolFee struct {
	Address    string   `json:"address"`
	Amount     ZapToken `json:"amount"`
	AmountUSD  string   `json:"amountUsd"`
	ZapFeeRate string   `json:"zapFeeRate"`
}

type ZapActionToken struct {
	Address   string `json:"address"`
	Amount    string `json:"amount"`
	AmountUSD string `json:"amountUsd"`
}

type ZapAggregatorSwap struct {
	TokenIn    ZapActionToken `json:"tokenIn"`
	TokenOut   ZapActionToken `json:"tokenOut"`
	SwapImpact F64            `json:"swapImpact"`
}

type ZapAddLiquidity struct {
	Token0    ZapActionToken `json:"token0"`
	Token1    ZapActionToken `json:"token1"`
	Liquidity string         `json:"liquidity"`
}

// decode fails with *errors.ParseError at data.<field> when the action data does not fit v.
// Asking for the wrong action type is an *errors.InternalError.
func (a *ZapAction) decode(want string, v interface{}) error {
	if a.Type != want {
		return errors.Internal(errors.IncorrectInputs, fmt.Errorf("zap action is %q, not %q", a.Type, want))
	}
	if len(a.Data) == 0 {
		return errors.Parse(fmt.Errorf("%s action carries no data", want), "data", nil)
	}
	return codec.DecodeAt(a.Data, v, "data")
}

func (a *ZapAction) ProtocolFee() (*ZapProtocolFee, error) {
	var v ZapProtocolFee
	if err := a.decode(ZapActionProtocolFee, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (a *ZapAction) AggregatorSwap() (*ZapAggregatorSwap, error) {
	var v ZapAggregatorSwap
	if err := a.decode(ZapActionAggregatorSwap, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (a *ZapAction) AddLiquidity() (*ZapAddLiquidity, error) {
	var v ZapAddLiquidity
	if err := a.decode(ZapActionAddLiquidity, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ZapBuildParams body of POST /zap/:chain/in/route/build. Route is the opaque route
// returned by ZapRouteData.
type ZapBuildParams struct {
	Route    string      `json:"route" validate:"required"`
	Deadline string      `json:"deadline" validate:"required,numeric"`
	Account  string      `json:"account" validate:"required"`
	Permits  []ZapPermit `json:"permits"`
}

type ZapPermit struct {
	Token  string `json:"token" validate:"required"`
	Permit string `json:"permit" validate:"required"`
}

// ZapBuildData is the transaction to sign.
type ZapBuildData struct {
	ZapDetails ZapDetails `json:"zapDetails"`
	To         string     `json:"to"`
	Value      U128       `json:"value"`
	Data       string     `json:"data"`
}

type ZapRouteResponse = MsgResponse[ZapRouteData]
type ZapBuildResponse = MsgResponse[ZapBuildData]
