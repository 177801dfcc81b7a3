package client

import (
	"context"

	"finco/openocean/common"
	"finco/openocean/models"
)

// ZapService covers single sided liquidity provision.
type ZapService service

func (s *ZapService) Route(ctx context.Context, chain common.Chain, params *models.ZapRouteParams) (*models.ZapRouteResponse, error) {
	path, err := chainPath(chain, "/zap/%s/in/route")
	if err != nil {
		return nil, err
	}
	return postJSON[models.ZapRouteResponse](ctx, s.client, path, params)
}

// BuildRoute turns a route into a transaction to sign.
func (s *ZapService) BuildRoute(ctx context.Context, chain common.Chain, params *models.ZapBuildParams) (*models.ZapBuildResponse, error) {
	path, err := chainPath(chain, "/zap/%s/in/route/build")
	if err != nil {
		return nil, err
	}
	return postJSON[models.ZapBuildResponse](ctx, s.client, path, params)
}
