package client

import (
	"context"

	"finco/openocean/common"
	"finco/openocean/models"
)

type LimitOrderService service

func (s *LimitOrderService) Create(ctx context.Context, chain common.Chain, params *models.CreateLimitOrderParams) (*models.CreateLimitOrderResponse, error) {
	path, err := chainPath(chain, "/v2/%s/limit-order")
	if err != nil {
		return nil, err
	}
	return postJSON[models.CreateLimitOrderResponse](ctx, s.client, path, params)
}

func (s *LimitOrderService) Cancel(ctx context.Context, chain common.Chain, params *models.CancelLimitOrderParams) (*models.CancelLimitOrderResponse, error) {
	path, err := chainPath(chain, "/v2/%s/limit-order/cancelLimitOrder")
	if err != nil {
		return nil, err
	}
	return postJSON[models.CancelLimitOrderResponse](ctx, s.client, path, params)
}

// OrdersByAddress pages through the limit orders of address. params may be nil.
func (s *LimitOrderService) OrdersByAddress(ctx context.Context, chain common.Chain, address string, params *models.LimitOrdersByAddressParams) (*models.LimitOrdersByAddressResponse, error) {
	path, err := chainPath(chain, "/v2/%s/limit-order/address/%s", address)
	if err != nil {
		return nil, err
	}
	if params == nil {
		params = &models.LimitOrdersByAddressParams{}
	}
	return getJSON[models.LimitOrdersByAddressResponse](ctx, s.client, path, params)
}
