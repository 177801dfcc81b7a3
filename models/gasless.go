package models

import "finco/openocean/common"

// GaslessQuoteParams query of GET /v1/:chain/gasless/quote.
type GaslessQuoteParams struct {
	InTokenAddress   string `url:"inTokenAddress" validate:"required"`
	OutTokenAddress  string `url:"outTokenAddress" validate:"required"`
	AmountDecimals   string `url:"amountDecimals" validate:"required,numeric"`
	GasPriceDecimals string `url:"gasPriceDecimals" validate:"required,numeric"`
	Slippage         string `url:"slippage,omitempty" validate:"omitempty,numeric"`
	Referrer         string `url:"referrer,omitempty"`
	DisabledDexIDs   DexIDs `url:"disabledDexIds,omitempty"`
}

// QuoteFee is a fee leg of a gasless quote, paid in the given token.
type QuoteFee struct {
	Address     string `json:"address"`
	Decimals    int    `json:"decimals"`
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	USD         F64    `json:"usd,omitempty"`
	InFeeAmount F64    `json:"inFeeAmount"`
	Volume      F64    `json:"volume,omitempty"`
}

type GaslessQuoteData struct {
	InToken      QuoteToken `json:"inToken"`
	OutToken     QuoteToken `json:"outToken"`
	Native       QuoteToken `json:"native"`
	Fees         []QuoteFee `json:"fees"`
	Flag         int        `json:"flag"`
	InAmount     U128       `json:"inAmount"`
	OutAmount    U128       `json:"outAmount"`
	EstimatedGas U128       `json:"estimatedGas"`
	Path         QuotePath  `json:"path"`
}

// GaslessSwapParams body of POST /v1/:chain/gasless/swap. Most values come back from the
// quote; Permit is the signed token permit.
type GaslessSwapParams struct {
	From             string `json:"from" validate:"required"`
	To               string `json:"to" validate:"required"`
	Data             string `json:"data" validate:"required"`
	AmountDecimals   string `json:"amountDecimals" validate:"required,numeric"`
	FeeAmount1       string `json:"feeAmount1"`
	FeeAmount2       string `json:"feeAmount2"`
	Flag             int    `json:"flag"`
	GasPriceDecimals int64  `json:"gasPriceDecimals"`
	Deadline         int64  `json:"deadline" validate:"required"`
	InToken          string `json:"inToken" validate:"required"`
	OutToken         string `json:"outToken" validate:"required"`
	Nonce            int64  `json:"nonce"`
	Permit           string `json:"permit" validate:"required"`
	USDValuation     F64    `json:"usdvaluation"`
}

// GaslessSwapResponse has no data member; the order hash sits beside the code.
type GaslessSwapResponse struct {
	Code      int     `json:"code"`
	Msg       *string `json:"msg"`
	OrderHash *string `json:"orderHash"`
}

// Err returns a *LogicalError when the swap was refused.
func (r *GaslessSwapResponse) Err() error {
	if r.Code == common.SuccessCode && r.OrderHash != nil {
		return nil
	}
	msg := ""
	if r.Msg != nil {
		msg = *r.Msg
	}
	return &LogicalError{Code: r.Code, Message: msg}
}

// GaslessOrderParams query of GET /v1/:chain/gasless/order.
type GaslessOrderParams struct {
	OrderHash string `url:"orderHash" validate:"required"`
}

// GaslessOrderStatus carries the settlement transaction hash, or Err when it failed.
type GaslessOrderStatus struct {
	Hash string `json:"hash,omitempty"`
	Err  string `json:"err,omitempty"`
}

type GaslessQuoteResponse = MsgResponse[GaslessQuoteData]
type GaslessOrderStatusResponse = MsgResponse[GaslessOrderStatus]
