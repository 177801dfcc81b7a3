package client

import (
	"context"

	"finco/openocean/common"
	"finco/openocean/models"
)

type SweepSwapService service

// MultiSwapQuote quotes sweeping tokens into one output token. The response has no envelope.
func (s *SweepSwapService) MultiSwapQuote(ctx context.Context, chain common.Chain, params *models.MultiSwapQuoteParams) (*models.MultiSwapQuoteResponse, error) {
	path, err := chainPath(chain, "/%s/multi_swap_route")
	if err != nil {
		return nil, err
	}
	return postJSON[models.MultiSwapQuoteResponse](ctx, s.client, path, params)
}
