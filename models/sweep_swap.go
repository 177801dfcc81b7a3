package models

// MultiSwapQuoteParams body of POST /:chain/multi_swap_route, sweeping one input token into
// OutToken.
type MultiSwapQuoteParams struct {
	InToken        MultiSwapInToken  `json:"inToken"`
	OutToken       MultiSwapOutToken `json:"outToken"`
	GasPrice       F64               `json:"gasPrice" validate:"gt=0"`
	Referrer       *string           `json:"referrer,omitempty"`
	DisabledDexIDs DexIDs            `json:"disabledDexIds,omitempty"`
	Account        string            `json:"account" validate:"required"`
}

type MultiSwapInToken struct {
	InTokenSymbol  string `json:"inTokenSymbol"`
	InTokenAddress string `json:"inTokenAddress" validate:"required"`
	Amount         string `json:"amount" validate:"required,numeric"`
	// percent, 1 = 1%
	Slippage uint16 `json:"slippage" validate:"lte=100"`
}

type MultiSwapOutToken struct {
	OutTokenSymbol  string `json:"outTokenSymbol"`
	OutTokenAddress string `json:"outTokenAddress" validate:"required"`
}

// MultiSwapQuoteResponse is returned bare, without an envelope.
type MultiSwapQuoteResponse struct {
	InToken  []MultiSwapToken `json:"inToken"`
	OutToken MultiSwapToken   `json:"outToken"`
	From     string           `json:"from"`
	To       string           `json:"to"`
	Swap     []MultiSwapLeg   `json:"swap"`
	GasPrice U128             `json:"gasPrice"`
	ChainID  string           `json:"chainId"`
	Value    U128             `json:"value"`
	Data     string           `json:"data"`
}

type MultiSwapToken struct {
	Address  string `json:"address"`
	Decimals int    `json:"decimals"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
}

type MultiSwapLeg struct {
	InAmount     U128 `json:"inAmount"`
	OutAmount    U128 `json:"outAmount"`
	MinOutAmount U128 `json:"minOutAmount"`
}
