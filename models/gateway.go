package models

// Inputs of the gateway routes. Path parameters and the query string are bound together
// with the form tag.

type ChainInput struct {
	Chain string `form:"chain" binding:"required,chain"`
}

type QuoteInput struct {
	Chain           string `form:"chain" binding:"required,chain"`
	InTokenAddress  string `form:"inTokenAddress" binding:"required"`
	OutTokenAddress string `form:"outTokenAddress" binding:"required"`
	// in minimal divisible units of the input token
	Amount   string `form:"amount" binding:"required,numeric"`
	GasPrice string `form:"gasPrice" binding:"omitempty,numeric"`
	Slippage string `form:"slippage" binding:"omitempty,numeric"`
	// comma separated dex indexes
	DisabledDexIDs string `form:"disabledDexIds"`
}

type GasPricesInput struct {
	// comma separated slugs or chain ids; empty means every EVM chain
	Chains string `form:"chains"`
}

type TransactionInput struct {
	Chain string `form:"chain" binding:"required,chain"`
	Hash  string `form:"hash" binding:"required"`
}

type LimitOrdersInput struct {
	Chain    string `form:"chain" binding:"required,chain"`
	Address  string `form:"address" binding:"required,evm_address"`
	Page     int    `form:"page" binding:"gte=0"`
	Limit    int    `form:"limit" binding:"gte=0,lte=100"`
	Statuses []int  `form:"statuses" binding:"dive,gte=1,lte=7"`
}

type DcaOrdersInput struct {
	Chain   string `form:"chain" binding:"required,chain"`
	Address string `form:"address" binding:"required,evm_address"`
}

// ChainGasPrice is one entry of the multi chain gas route. Err is set when the chain could
// not be priced; the other chains are still returned.
type ChainGasPrice struct {
	Chain  string        `json:"chain"`
	Levels *GasPriceData `json:"levels,omitempty"`
	Err    string        `json:"error,omitempty"`
}

// QuoteResult is a quote with the output amount in whole tokens.
type QuoteResult struct {
	*QuoteData
	OutAmountTokens string `json:"outAmountTokens"`
}
