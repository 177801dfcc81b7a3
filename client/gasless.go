package client

import (
	"context"

	"finco/openocean/common"
	"finco/openocean/models"
)

// GaslessService covers swaps whose gas is paid by a relayer out of the input token.
type GaslessService service

func (s *GaslessService) Quote(ctx context.Context, chain common.Chain, params *models.GaslessQuoteParams) (*models.GaslessQuoteResponse, error) {
	path, err := chainPath(chain, "/v1/%s/gasless/quote")
	if err != nil {
		return nil, err
	}
	return getJSON[models.GaslessQuoteResponse](ctx, s.client, path, params)
}

// Swap submits a signed gasless order. The order hash is on the response.
func (s *GaslessService) Swap(ctx context.Context, chain common.Chain, params *models.GaslessSwapParams) (*models.GaslessSwapResponse, error) {
	path, err := chainPath(chain, "/v1/%s/gasless/swap")
	if err != nil {
		return nil, err
	}
	return postJSON[models.GaslessSwapResponse](ctx, s.client, path, params)
}

func (s *GaslessService) OrderStatus(ctx context.Context, chain common.Chain, orderHash string) (*models.GaslessOrderStatusResponse, error) {
	path, err := chainPath(chain, "/v1/%s/gasless/order")
	if err != nil {
		return nil, err
	}
	return getJSON[models.GaslessOrderStatusResponse](ctx, s.client, path, &models.GaslessOrderParams{OrderHash: orderHash})
}
