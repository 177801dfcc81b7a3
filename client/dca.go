package client

import (
	"context"

	"finco/openocean/common"
	"finco/openocean/models"
)

// DCAService covers dollar cost averaging orders.
type DCAService service

func (s *DCAService) Create(ctx context.Context, chain common.Chain, params *models.DcaCreateParams) (*models.CodeResponse, error) {
	path, err := chainPath(chain, "/v2/%s/dca/swap")
	if err != nil {
		return nil, err
	}
	return postJSON[models.CodeResponse](ctx, s.client, path, params)
}

func (s *DCAService) Cancel(ctx context.Context, chain common.Chain, params *models.DcaCancelParams) (*models.CodeResponse, error) {
	path, err := chainPath(chain, "/v2/%s/dca/cancel")
	if err != nil {
		return nil, err
	}
	return postJSON[models.CodeResponse](ctx, s.client, path, params)
}

// Orders lists the DCA orders made by address.
func (s *DCAService) Orders(ctx context.Context, chain common.Chain, address string) (*models.DcaOrdersResponse, error) {
	path, err := chainPath(chain, "/v2/%s/dca/address/%s", address)
	if err != nil {
		return nil, err
	}
	return getJSON[models.DcaOrdersResponse](ctx, s.client, path, nil)
}

// OrderFills lists the executed fills of one order.
func (s *DCAService) OrderFills(ctx context.Context, chain common.Chain, orderHash string) (*models.DcaOrderFillsResponse, error) {
	path, err := chainPath(chain, "/v2/%s/dca/fill/%s", orderHash)
	if err != nil {
		return nil, err
	}
	return getJSON[models.DcaOrderFillsResponse](ctx, s.client, path, nil)
}
