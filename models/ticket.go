package models

// SubmitTicketParams body of POST /:referer/ticket, reporting a failed swap.
type SubmitTicketParams struct {
	Hash        string            `json:"hash" validate:"required"`
	Chain       string            `json:"chain" validate:"required"`
	Version     string            `json:"version"`
	Question    string            `json:"question" validate:"required"`
	Account     string            `json:"account" validate:"required"`
	Quote       TicketQuote       `json:"quote"`
	Transaction TicketTransaction `json:"transaction"`
	Error       TicketError       `json:"error"`
}

type TicketError struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

type TicketTransaction struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Value    string `json:"value"`
	Data     string `json:"data"`
	GasPrice string `json:"gasPrice"`
	GasLimit string `json:"gasLimit"`
}

// TicketQuote is the quote request the failing swap was built from.
type TicketQuote struct {
	QuoteType       string  `json:"quoteType"`
	InTokenSymbol   string  `json:"inTokenSymbol"`
	InTokenAddress  string  `json:"inTokenAddress"`
	OutTokenSymbol  string  `json:"outTokenSymbol"`
	OutTokenAddress string  `json:"outTokenAddress"`
	AmountAll       int     `json:"amountAll"`
	Amount          string  `json:"amount"`
	GasPrice        string  `json:"gasPrice"`
	Slippage        int     `json:"slippage"`
	Referrer        *string `json:"referrer,omitempty"`
	DisabledDexIDs  DexIDs  `json:"disabledDexIds,omitempty"`
}

type SubmitTicketData struct {
	Ticket string `json:"ticket"`
}

type TicketData struct {
	Hash      string       `json:"hash"`
	Remark    string       `json:"remark,omitempty"`
	Process   string       `json:"process"`
	Question  string       `json:"question"`
	Answer    string       `json:"answer,omitempty"`
	Params    TicketParams `json:"params"`
	Account   string       `json:"account"`
	CreatedAt string       `json:"createdAt"`
}

type TicketParams struct {
	Quote TicketQuote `json:"quote"`
}

type SubmitTicketResponse = MsgResponse[SubmitTicketData]
type TicketResponse = MsgResponse[TicketData]
