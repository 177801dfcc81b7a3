package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"finco/openocean/codec"

	"github.com/shopspring/decimal"
)

// QuoteParams query of GET /v4/:chain/quote. Amounts are in minimal divisible units.
type QuoteParams struct {
	InTokenAddress   string `url:"inTokenAddress" validate:"required"`
	OutTokenAddress  string `url:"outTokenAddress" validate:"required"`
	AmountDecimals   string `url:"amountDecimals" validate:"required,numeric"`
	GasPriceDecimals string `url:"gasPriceDecimals" validate:"required,numeric"`
	Slippage         string `url:"slippage,omitempty" validate:"omitempty,numeric"`
	DisabledDexIDs   DexIDs `url:"disabledDexIds,omitempty"`
	EnabledDexIDs    DexIDs `url:"enabledDexIds,omitempty"`
}

// ReverseQuoteParams query of GET /v4/:chain/reverseQuote. Amount is the wanted output.
type ReverseQuoteParams struct {
	InTokenAddress  string `url:"inTokenAddress" validate:"required"`
	OutTokenAddress string `url:"outTokenAddress" validate:"required"`
	Amount          string `url:"amount" validate:"required,numeric"`
	GasPrice        string `url:"gasPrice" validate:"required,numeric"`
	Slippage        string `url:"slippage,omitempty" validate:"omitempty,numeric"`
	DisabledDexIDs  DexIDs `url:"disabledDexIds,omitempty"`
	EnabledDexIDs   DexIDs `url:"enabledDexIds,omitempty"`
}

// SwapQuoteParams query of GET /v4/:chain/swap.
type SwapQuoteParams struct {
	InTokenAddress   string `url:"inTokenAddress" validate:"required"`
	OutTokenAddress  string `url:"outTokenAddress" validate:"required"`
	AmountDecimals   string `url:"amountDecimals" validate:"required,numeric"`
	GasPriceDecimals string `url:"gasPriceDecimals" validate:"required,numeric"`
	Slippage         string `url:"slippage,omitempty" validate:"omitempty,numeric"`
	// transactions will be sent from this address
	Account     string `url:"account" validate:"required"`
	Referrer    string `url:"referrer,omitempty"`
	ReferrerFee string `url:"referrerFee,omitempty" validate:"omitempty,numeric"`
	// receiver of the output token when different from Account
	Sender         string `url:"sender,omitempty"`
	MinOutput      string `url:"minOutput,omitempty" validate:"omitempty,numeric"`
	DisabledDexIDs DexIDs `url:"disabledDexIds,omitempty"`
	EnabledDexIDs  DexIDs `url:"enabledDexIds,omitempty"`
}

type QuoteToken struct {
	Address  string `json:"address"`
	Decimals int    `json:"decimals"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	USD      F64    `json:"usd,omitempty"`
	Volume   F64    `json:"volume,omitempty"`
}

type QuoteDex struct {
	DexIndex   int    `json:"dexIndex"`
	DexCode    string `json:"dexCode"`
	SwapAmount U128   `json:"swapAmount"`
}

type QuotePath struct {
	From   string       `json:"from"`
	To     string       `json:"to"`
	Parts  int          `json:"parts"`
	Routes []QuoteRoute `json:"routes"`
}

type QuoteRoute struct {
	Parts int `json:"parts"`
	// e.g. 100; not always an integer
	Percentage F64             `json:"percentage"`
	SubRoutes  []QuoteSubRoute `json:"subRoutes"`
}

type QuoteSubRoute struct {
	From  string             `json:"from"`
	To    string             `json:"to"`
	Parts int                `json:"parts"`
	Dexes []QuoteSubRouteDex `json:"dexes"`
}

type QuoteSubRouteDex struct {
	Dex        string `json:"dex"`
	ID         string `json:"id"`
	Parts      int    `json:"parts"`
	Percentage F64    `json:"percentage"`
	Fee        *F64   `json:"fee"`
}

// QuoteData is returned by quote and reverseQuote.
type QuoteData struct {
	InToken      QuoteToken `json:"inToken"`
	OutToken     QuoteToken `json:"outToken"`
	InAmount     U128       `json:"inAmount"`
	OutAmount    U128       `json:"outAmount"`
	EstimatedGas U128       `json:"estimatedGas"`
	Dexes        []QuoteDex `json:"dexes"`
	Path         QuotePath  `json:"path"`
	Save         F64        `json:"save,omitempty"`
	PriceImpact  string     `json:"price_impact,omitempty"`
}

// OutAmountDecimal is OutAmount expressed in whole output tokens.
func (q *QuoteData) OutAmountDecimal() decimal.Decimal {
	return q.OutAmount.Decimal(int32(q.OutToken.Decimals))
}

type SwapQuoteData struct {
	InToken      QuoteToken  `json:"inToken"`
	OutToken     QuoteToken  `json:"outToken"`
	InAmount     U128        `json:"inAmount"`
	OutAmount    U128        `json:"outAmount"`
	EstimatedGas U128        `json:"estimatedGas"`
	MinOutAmount U128        `json:"minOutAmount"`
	From         string      `json:"from"`
	To           string      `json:"to"`
	Value        U128        `json:"value"`
	GasPrice     U128        `json:"gasPrice"`
	Data         string      `json:"data"`
	ChainID      json.Number `json:"chainId,omitempty"`
	RfqDeadline  int64       `json:"rfqDeadline,omitempty"`
	GmxFee       F64         `json:"gmxFee,omitempty"`
	PriceImpact  string      `json:"price_impact,omitempty"`
}

type Token struct {
	ID            int     `json:"id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Decimals      int     `json:"decimals"`
	Symbol        string  `json:"symbol"`
	Icon          string  `json:"icon"`
	Chain         string  `json:"chain"`
	CreateTime    string  `json:"createtime"`
	ChainID       *int    `json:"chainId"`
	CustomSymbol  *string `json:"customSymbol"`
	CustomAddress *string `json:"customAddress"`
	USD           F64     `json:"usd,omitempty"`
}

type Dex struct {
	Index int    `json:"index"`
	Code  string `json:"code"`
	Name  string `json:"name"`
}

// GasLevels are flat gas prices, in wei for data and in gwei for without_decimals.
type GasLevels struct {
	Standard F64 `json:"standard"`
	Fast     F64 `json:"fast"`
	Instant  F64 `json:"instant"`
}

// GasResponse is the flat form of GET /v4/:chain/gasPrice.
type GasResponse struct {
	Code            int        `json:"code"`
	Data            *GasLevels `json:"data,omitempty"`
	WithoutDecimals *GasLevels `json:"without_decimals,omitempty"`
	Message         string     `json:"message,omitempty"`
}

func (r *GasResponse) Result() (*GasLevels, error) {
	return result(r.Code, r.Data, r.Message)
}

// GasPriceLevel is either a legacy price (a number) or an EIP-1559 fee object, depending on
// the chain.
type GasPriceLevel struct {
	Legacy               *F64 `json:"-"`
	LegacyGasPrice       F64  `json:"legacyGasPrice,omitempty"`
	MaxPriorityFeePerGas F64  `json:"maxPriorityFeePerGas,omitempty"`
	MaxFeePerGas         F64  `json:"maxFeePerGas,omitempty"`
	WaitTimeEstimate     F64  `json:"waitTimeEstimate,omitempty"`
}

// UnmarshalJSONPath picks the shape of the level. A fee object must carry maxFeePerGas or
// legacyGasPrice.
func (l *GasPriceLevel) UnmarshalJSONPath(data []byte, decode codec.DecodeFunc) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		var price F64
		if err := decode(data, &price, ""); err != nil {
			return err
		}
		*l = GasPriceLevel{Legacy: &price}
		return nil
	}

	var fees struct {
		LegacyGasPrice       *F64 `json:"legacyGasPrice"`
		MaxPriorityFeePerGas F64  `json:"maxPriorityFeePerGas,omitempty"`
		MaxFeePerGas         *F64 `json:"maxFeePerGas"`
		WaitTimeEstimate     F64  `json:"waitTimeEstimate,omitempty"`
	}
	if err := decode(data, &fees, ""); err != nil {
		return err
	}
	if fees.MaxFeePerGas == nil && fees.LegacyGasPrice == nil {
		return fmt.Errorf("gas fee object has neither maxFeePerGas nor legacyGasPrice")
	}
	*l = GasPriceLevel{
		MaxPriorityFeePerGas: fees.MaxPriorityFeePerGas,
		WaitTimeEstimate:     fees.WaitTimeEstimate,
	}
	if fees.LegacyGasPrice != nil {
		l.LegacyGasPrice = *fees.LegacyGasPrice
	}
	if fees.MaxFeePerGas != nil {
		l.MaxFeePerGas = *fees.MaxFeePerGas
	}
	return nil
}

func (l *GasPriceLevel) UnmarshalJSON(data []byte) error {
	return codec.Decode(data, l)
}

func (l GasPriceLevel) MarshalJSON() ([]byte, error) {
	if l.Legacy != nil {
		return json.Marshal(*l.Legacy)
	}
	type fees GasPriceLevel
	return json.Marshal(fees(l))
}

// IsEIP1559 reports whether the level carries EIP-1559 fee fields.
func (l GasPriceLevel) IsEIP1559() bool {
	return l.Legacy == nil
}

// Price is the legacy price, or the max fee per gas of an EIP-1559 level.
func (l GasPriceLevel) Price() F64 {
	if l.Legacy != nil {
		return *l.Legacy
	}
	if l.MaxFeePerGas != 0 {
		return l.MaxFeePerGas
	}
	return l.LegacyGasPrice
}

type GasPriceData struct {
	Standard GasPriceLevel `json:"standard"`
	Fast     GasPriceLevel `json:"fast"`
	Instant  GasPriceLevel `json:"instant"`
}

// GasPriceResponse is GET /v4/:chain/gasPrice with per chain level shapes.
type GasPriceResponse struct {
	Code            int           `json:"code"`
	Data            *GasPriceData `json:"data,omitempty"`
	WithoutDecimals *GasPriceData `json:"without_decimals,omitempty"`
	Message         string        `json:"message,omitempty"`
}

func (r *GasPriceResponse) Result() (*GasPriceData, error) {
	return result(r.Code, r.Data, r.Message)
}

// Transaction is a swap transaction recorded by the API.
type Transaction struct {
	ID               int64  `json:"id,omitempty"`
	TxID             string `json:"tx_id,omitempty"`
	BlockNumber      int64  `json:"block_number,omitempty"`
	TxIndex          int    `json:"tx_index,omitempty"`
	Address          string `json:"address,omitempty"`
	TxHash           string `json:"tx_hash"`
	Sender           string `json:"sender,omitempty"`
	Receiver         string `json:"receiver,omitempty"`
	InTokenAddress   string `json:"in_token_address,omitempty"`
	InTokenSymbol    string `json:"in_token_symbol,omitempty"`
	OutTokenAddress  string `json:"out_token_address,omitempty"`
	OutTokenSymbol   string `json:"out_token_symbol,omitempty"`
	Referrer         string `json:"referrer,omitempty"`
	InAmount         U128   `json:"in_amount,omitempty"`
	OutAmount        U128   `json:"out_amount,omitempty"`
	Fee              string `json:"fee,omitempty"`
	ReferrerFee      string `json:"referrer_fee,omitempty"`
	USDValuation     F64    `json:"usd_valuation,omitempty"`
	CreateAt         string `json:"create_at,omitempty"`
	UpdateAt         string `json:"update_at,omitempty"`
	TxFee            string `json:"tx_fee,omitempty"`
	TxFeeValuation   F64    `json:"tx_fee_valuation,omitempty"`
	InTokenDecimals  int    `json:"in_token_decimals,omitempty"`
	OutTokenDecimals int    `json:"out_token_decimals,omitempty"`
	InAmountValue    F64    `json:"in_amount_value,omitempty"`
	OutAmountValue   F64    `json:"out_amount_value,omitempty"`
	Status           int    `json:"status,omitempty"`
}

// TransactionParams query of GET /v4/:chain/getTransaction.
type TransactionParams struct {
	Hash string `url:"hash" validate:"required"`
}

// DecodeInputDataParams query of GET /v4/:chain/decodeInputData. Data is 0x prefixed call data.
type DecodeInputDataParams struct {
	Data   string `url:"data" validate:"required"`
	Method string `url:"method" validate:"required"`
}

type (
	QuoteResponse           = BaseResponse[QuoteData]
	ReverseQuoteResponse    = BaseResponse[QuoteData]
	SwapQuoteResponse       = BaseResponse[SwapQuoteData]
	TokenListResponse       = BaseResponse[[]Token]
	DexListResponse         = BaseResponse[[]Dex]
	TransactionResponse     = BaseResponse[Transaction]
	DecodeInputDataResponse = BaseResponse[json.RawMessage]
)
