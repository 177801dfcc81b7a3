package models

// DcaCreateParams body of POST /v2/:chain/dca/swap. Time is the interval between fills in
// seconds and Times the number of fills.
type DcaCreateParams struct {
	MakerAmount    string `json:"makerAmount" validate:"required,numeric"`
	Signature      string `json:"signature" validate:"required"`
	OrderMaker     string `json:"orderMaker" validate:"required"`
	MakerAsset     string `json:"makerAsset" validate:"required"`
	TakerAsset     string `json:"takerAsset" validate:"required"`
	Time           int64  `json:"time" validate:"gt=0"`
	Times          int64  `json:"times" validate:"gt=0"`
	MinPrice       string `json:"minPrice,omitempty"`
	MaxPrice       string `json:"maxPrice,omitempty"`
	Referrer       string `json:"referrer,omitempty"`
	ReferrerFee    string `json:"referrerFee,omitempty"`
	EnabledDexIDs  DexIDs `json:"enabledDexIds,omitempty"`
	DisabledDexIDs DexIDs `json:"disabledDexIds,omitempty"`
}

// DcaCancelParams body of POST /v2/:chain/dca/cancel.
type DcaCancelParams struct {
	OrderHash string `json:"orderHash" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

type DcaOrder struct {
	MakerAmount    string       `json:"makerAmount"`
	TakerAmount    string       `json:"takerAmount"`
	OrderHash      string       `json:"orderHash"`
	CreateDateTime string       `json:"createDateTime"`
	OrderMaker     string       `json:"orderMaker"`
	ExpireTime     string       `json:"expireTime"`
	Statuses       int          `json:"statuses"`
	Time           int64        `json:"time"`
	Times          int64        `json:"times"`
	HaveFilled     *string      `json:"haveFilled"`
	MinPrice       *string      `json:"minPrice"`
	MaxPrice       *string      `json:"maxPrice"`
	Data           DcaOrderData `json:"data"`
}

type DcaOrderData struct {
	MakerAsset         string `json:"makerAsset"`
	MakerAssetSymbol   string `json:"makerAssetSymbol"`
	MakerAssetDecimals int    `json:"makerAssetDecimals"`
	MakerAssetIcon     string `json:"makerAssetIcon,omitempty"`
	TakerAsset         string `json:"takerAsset"`
	TakerAssetSymbol   string `json:"takerAssetSymbol"`
	TakerAssetDecimals int    `json:"takerAssetDecimals"`
	TakerAssetIcon     string `json:"takerAssetIcon,omitempty"`
}

// DcaOrderFill is one executed fill of a DCA order.
type DcaOrderFill struct {
	OrderHash       string `json:"orderHash"`
	TxHash          string `json:"txHash"`
	FilledOrderTime string `json:"filledOrderTime"`
	Payment         string `json:"payment"`
	PaymentValue    string `json:"paymentValue"`
	Status          string `json:"status"`
	Reason          string `json:"reason,omitempty"`
}

type DcaOrdersResponse = MsgResponse[[]DcaOrder]
type DcaOrderFillsResponse = MsgResponse[[]DcaOrderFill]
