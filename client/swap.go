package client

import (
	"context"

	"finco/openocean/common"
	"finco/openocean/errors"
	"finco/openocean/models"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// SwapService covers the v4 swap endpoints.
type SwapService service

// Quote prices a swap of AmountDecimals of the input token.
func (s *SwapService) Quote(ctx context.Context, chain common.Chain, params *models.QuoteParams) (*models.QuoteResponse, error) {
	path, err := chainPath(chain, "/v4/%s/quote")
	if err != nil {
		return nil, err
	}
	return getJSON[models.QuoteResponse](ctx, s.client, path, params)
}

// ReverseQuote prices the input needed to receive Amount of the output token.
func (s *SwapService) ReverseQuote(ctx context.Context, chain common.Chain, params *models.ReverseQuoteParams) (*models.ReverseQuoteResponse, error) {
	path, err := chainPath(chain, "/v4/%s/reverseQuote")
	if err != nil {
		return nil, err
	}
	return getJSON[models.ReverseQuoteResponse](ctx, s.client, path, params)
}

// SwapQuote returns a quote together with the transaction to sign.
func (s *SwapService) SwapQuote(ctx context.Context, chain common.Chain, params *models.SwapQuoteParams) (*models.SwapQuoteResponse, error) {
	path, err := chainPath(chain, "/v4/%s/swap")
	if err != nil {
		return nil, err
	}
	return getJSON[models.SwapQuoteResponse](ctx, s.client, path, params)
}

func (s *SwapService) TokenList(ctx context.Context, chain common.Chain) (*models.TokenListResponse, error) {
	path, err := chainPath(chain, "/v4/%s/tokenList")
	if err != nil {
		return nil, err
	}
	return getJSON[models.TokenListResponse](ctx, s.client, path, nil)
}

func (s *SwapService) DexList(ctx context.Context, chain common.Chain) (*models.DexListResponse, error) {
	path, err := chainPath(chain, "/v4/%s/dexList")
	if err != nil {
		return nil, err
	}
	return getJSON[models.DexListResponse](ctx, s.client, path, nil)
}

// Price reads the gas price as flat standard, fast and instant values.
func (s *SwapService) Price(ctx context.Context, chain common.Chain) (*models.GasResponse, error) {
	path, err := chainPath(chain, "/v4/%s/gasPrice")
	if err != nil {
		return nil, err
	}
	return getJSON[models.GasResponse](ctx, s.client, path, nil)
}

// GasPrice reads the gas price keeping EIP-1559 fee objects on the chains that report them.
func (s *SwapService) GasPrice(ctx context.Context, chain common.Chain) (*models.GasPriceResponse, error) {
	path, err := chainPath(chain, "/v4/%s/gasPrice")
	if err != nil {
		return nil, err
	}
	return getJSON[models.GasPriceResponse](ctx, s.client, path, nil)
}

// Transaction looks up a swap transaction by hash.
func (s *SwapService) Transaction(ctx context.Context, chain common.Chain, hash string) (*models.TransactionResponse, error) {
	path, err := chainPath(chain, "/v4/%s/getTransaction")
	if err != nil {
		return nil, err
	}
	return getJSON[models.TransactionResponse](ctx, s.client, path, &models.TransactionParams{Hash: hash})
}

// DecodeInputData decodes swap call data. The decoded shape depends on method and is
// returned raw.
func (s *SwapService) DecodeInputData(ctx context.Context, chain common.Chain, params *models.DecodeInputDataParams) (*models.DecodeInputDataResponse, error) {
	path, err := chainPath(chain, "/v4/%s/decodeInputData")
	if err != nil {
		return nil, err
	}
	if params != nil && params.Data != "" {
		if _, err := hexutil.Decode(params.Data); err != nil {
			return nil, errors.Internal(errors.IncorrectInputs, err)
		}
	}
	return getJSON[models.DecodeInputDataResponse](ctx, s.client, path, params)
}
