package client

import (
	"context"

	"finco/openocean/errors"
	"finco/openocean/gateways"
	"finco/openocean/models"
)

// TicketService reports failed swaps to OpenOcean support.
type TicketService service

func ticketPath(referer string) (string, error) {
	if referer == "" {
		return "", errors.Internal(errors.EmptyInputsError, errors.New("referer is required"))
	}
	return "/" + gateways.PathSegment(referer) + "/ticket", nil
}

func (s *TicketService) Submit(ctx context.Context, referer string, params *models.SubmitTicketParams) (*models.SubmitTicketResponse, error) {
	path, err := ticketPath(referer)
	if err != nil {
		return nil, err
	}
	return postJSON[models.SubmitTicketResponse](ctx, s.client, path, params)
}

func (s *TicketService) Get(ctx context.Context, referer string) (*models.TicketResponse, error) {
	path, err := ticketPath(referer)
	if err != nil {
		return nil, err
	}
	return getJSON[models.TicketResponse](ctx, s.client, path, nil)
}
