package models

import "encoding/json"

// Limit order statuses
const (
	LimitOrderUnfilled     = 1
	LimitOrderFailed       = 2
	LimitOrderCancelled    = 3
	LimitOrderFilled       = 4
	LimitOrderPending      = 5
	LimitOrderHashNotExist = 6
	LimitOrderExpired      = 7
)

// CreateLimitOrderParams body of POST /v2/:chain/limit-order. ExpireTime is unix seconds.
type CreateLimitOrderParams struct {
	MakerAsset     string          `json:"makerAsset" validate:"required"`
	TakerAsset     string          `json:"takerAsset" validate:"required"`
	MakerAmount    string          `json:"makerAmount" validate:"required,numeric"`
	TakerAmount    string          `json:"takerAmount" validate:"required,numeric"`
	ExpireTime     string          `json:"expireTime" validate:"required"`
	OrderMaker     string          `json:"orderMaker" validate:"required"`
	Signature      string          `json:"signature" validate:"required"`
	OrderHash      string          `json:"orderHash,omitempty"`
	Data           json.RawMessage `json:"data,omitempty"`
	Referrer       *string         `json:"referrer,omitempty"`
	ReferrerFee    *string         `json:"referrerFee,omitempty"`
	EnabledDexIDs  DexIDs          `json:"enabledDexIds,omitempty"`
	DisabledDexIDs DexIDs          `json:"disabledDexIds,omitempty"`
}

// CancelLimitOrderParams body of POST /v2/:chain/limit-order/cancelLimitOrder.
type CancelLimitOrderParams struct {
	OrderHash string `json:"orderHash" validate:"required"`
	Signature string `json:"signature,omitempty"`
}

type CancelLimitOrderData struct {
	Status int `json:"status"`
}

// LimitOrdersByAddressParams query of GET /v2/:chain/limit-order/address/:address.
type LimitOrdersByAddressParams struct {
	Page     int    `url:"page,omitempty" validate:"gte=0"`
	Limit    int    `url:"limit,omitempty" validate:"gte=0,lte=100"`
	Statuses []int  `url:"statuses,omitempty,comma" validate:"dive,gte=1,lte=7"`
	SortBy   string `url:"sortBy,omitempty"`
	Exclude  int    `url:"exclude,omitempty"`
}

type LimitOrder struct {
	MakerAmount          string         `json:"makerAmount"`
	TakerAmount          string         `json:"takerAmount"`
	Signature            string         `json:"signature,omitempty"`
	OrderHash            string         `json:"orderHash"`
	CreateDateTime       string         `json:"createDateTime"`
	OrderMaker           string         `json:"orderMaker"`
	RemainingMakerAmount string         `json:"remainingMakerAmount,omitempty"`
	MakerBalance         *string        `json:"makerBalance"`
	MakerAllowance       *string        `json:"makerAllowance"`
	ExpireTime           string         `json:"expireTime"`
	Statuses             int            `json:"statuses"`
	Data                 LimitOrderData `json:"data"`
}

type LimitOrderData struct {
	MakerAsset         string `json:"makerAsset"`
	MakerAssetSymbol   string `json:"makerAssetSymbol"`
	MakerAssetDecimals int    `json:"makerAssetDecimals"`
	MakerAssetIcon     string `json:"makerAssetIcon,omitempty"`
	TakerAsset         string `json:"takerAsset"`
	TakerAssetSymbol   string `json:"takerAssetSymbol"`
	TakerAssetDecimals int    `json:"takerAssetDecimals"`
	TakerAssetIcon     string `json:"takerAssetIcon,omitempty"`
	Salt               string `json:"salt,omitempty"`
	Maker              string `json:"maker,omitempty"`
	Receiver           string `json:"receiver,omitempty"`
	MakingAmount       string `json:"makingAmount,omitempty"`
	TakingAmount       string `json:"takingAmount,omitempty"`
}

type (
	CreateLimitOrderResponse     = ErrorMsgResponse[json.RawMessage]
	CancelLimitOrderResponse     = ErrorMsgResponse[CancelLimitOrderData]
	LimitOrdersByAddressResponse = ErrorMsgResponse[[]LimitOrder]
)
