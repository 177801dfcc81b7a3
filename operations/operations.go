package operations

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"finco/openocean/client"
	"finco/openocean/common"
	"finco/openocean/errors"
	"finco/openocean/models"

	"github.com/cenkalti/backoff/v3"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// maxConcurrentChains bounds the upstream calls of the multi chain gas route.
const maxConcurrentChains = 8

// Operations serves the gateway routes from one OpenOcean client.
type Operations struct {
	client *client.Client
	config common.GatewayConfigurations
	logger log.FieldLogger

	// newBackOff builds the retry policy of one upstream call
	newBackOff func() backoff.BackOff
}

func New(c *client.Client, config common.GatewayConfigurations, logger log.FieldLogger) *Operations {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Operations{
		client:     c,
		config:     config,
		logger:     logger,
		newBackOff: defaultBackOff,
	}
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = common.RetryInitialBackoff
	b.MaxElapsedTime = common.RetryMaxElapsed
	return b
}

// call runs fn once, or until it stops timing out when timeout retries are enabled.
// Any other failure is returned at once.
func (o *Operations) call(ctx context.Context, fn func(ctx context.Context) error) error {
	if !o.config.RetryTimeouts {
		return fn(ctx)
	}
	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if !errors.IsTimeout(err) {
			return backoff.Permanent(err)
		}
		o.logger.WithError(err).WithField("attempt", attempt).Warn("upstream timed out")
		return err
	}, backoff.WithContext(o.newBackOff(), ctx))
}

// respond fetches a result through call and writes it, or the classified failure.
func respond[T any](o *Operations, c *gin.Context, fetch func(ctx context.Context) (*T, error)) {
	var out *T
	err := o.call(c.Request.Context(), func(ctx context.Context) error {
		var err error
		out, err = fetch(ctx)
		return err
	})
	if err != nil {
		common.SendErrorResponse(c, exceptionFor(err))
		return
	}
	common.SendResponse(c, out)
}

// exceptionFor maps a client failure to the status of the gateway response:
//   - refused by the API (envelope code) is 422
//   - an upstream timeout is 504
//   - any other network, HTTP or parse failure is 502
//   - a request rejected before sending is 400
func exceptionFor(err error) common.Exception {
	var logical *models.LogicalError
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &logical):
		status = http.StatusUnprocessableEntity
	case errors.IsTimeout(err):
		status = http.StatusGatewayTimeout
	default:
		switch errors.KindOf(err) {
		case errors.KindNetwork, errors.KindHTTP, errors.KindParse:
			status = http.StatusBadGateway
		case errors.KindInternal:
			status = http.StatusBadRequest
		}
	}
	return common.Exception{
		Code:      status,
		ErrorType: common.ErrorTypeMap[status],
		Message:   err.Error(),
	}
}

// chainOf resolves a validated chain input. It writes a 400 and reports false when the
// slug does not resolve.
func chainOf(c *gin.Context, slug string) (common.Chain, bool) {
	chain, err := common.ParseChain(slug)
	if err != nil {
		common.SendErrorResponse(c, common.Exception{
			Code:      http.StatusBadRequest,
			ErrorType: common.ErrorTypeMap[http.StatusBadRequest],
			Message:   err.Error(),
		})
		return 0, false
	}
	return chain, true
}

func (o *Operations) Health(c *gin.Context) {
	common.SendResponse(c, common.HealthStatus{
		Status:   "ok",
		Version:  common.Version,
		Upstream: o.client.BaseURL(),
	})
}

func (o *Operations) Chains(c *gin.Context) {
	all := common.Chains()
	infos := make([]common.ChainInfo, 0, len(all))
	for _, chain := range all {
		slug, _ := chain.Slug()
		infos = append(infos, common.ChainInfo{
			Slug:    slug,
			Name:    chain.Name(),
			ChainID: chain.ChainID(),
			EVM:     chain.IsEVM(),
		})
	}
	common.SendResponse(c, infos)
}

func (o *Operations) Quote(c *gin.Context) {
	input := common.GetInput[models.QuoteInput](c)
	chain, ok := chainOf(c, input.Chain)
	if !ok {
		return
	}
	disabled, err := models.ParseDexIDs(input.DisabledDexIDs)
	if err != nil {
		common.SendErrorResponse(c, exceptionFor(errors.Internal(errors.IncorrectInputs, err)))
		return
	}
	gasPrice := input.GasPrice
	if gasPrice == "" {
		gasPrice = o.config.DefaultGasPriceDecimals
	}

	params := &models.QuoteParams{
		InTokenAddress:   input.InTokenAddress,
		OutTokenAddress:  input.OutTokenAddress,
		AmountDecimals:   input.Amount,
		GasPriceDecimals: gasPrice,
		Slippage:         input.Slippage,
		DisabledDexIDs:   disabled,
	}
	respond(o, c, func(ctx context.Context) (*models.QuoteResult, error) {
		resp, err := o.client.Swap.Quote(ctx, chain, params)
		if err != nil {
			return nil, err
		}
		data, err := resp.Result()
		if err != nil {
			return nil, err
		}
		return &models.QuoteResult{
			QuoteData:       data,
			OutAmountTokens: data.OutAmountDecimal().String(),
		}, nil
	})
}

func (o *Operations) GasPrice(c *gin.Context) {
	input := common.GetInput[models.ChainInput](c)
	chain, ok := chainOf(c, input.Chain)
	if !ok {
		return
	}
	respond(o, c, func(ctx context.Context) (*models.GasPriceData, error) {
		resp, err := o.client.Swap.GasPrice(ctx, chain)
		if err != nil {
			return nil, err
		}
		return resp.Result()
	})
}

func (o *Operations) TokenList(c *gin.Context) {
	input := common.GetInput[models.ChainInput](c)
	chain, ok := chainOf(c, input.Chain)
	if !ok {
		return
	}
	respond(o, c, func(ctx context.Context) (*[]models.Token, error) {
		resp, err := o.client.Swap.TokenList(ctx, chain)
		if err != nil {
			return nil, err
		}
		return resp.Result()
	})
}

func (o *Operations) DexList(c *gin.Context) {
	input := common.GetInput[models.ChainInput](c)
	chain, ok := chainOf(c, input.Chain)
	if !ok {
		return
	}
	respond(o, c, func(ctx context.Context) (*[]models.Dex, error) {
		resp, err := o.client.Swap.DexList(ctx, chain)
		if err != nil {
			return nil, err
		}
		return resp.Result()
	})
}

func (o *Operations) Transaction(c *gin.Context) {
	input := common.GetInput[models.TransactionInput](c)
	chain, ok := chainOf(c, input.Chain)
	if !ok {
		return
	}
	respond(o, c, func(ctx context.Context) (*models.Transaction, error) {
		resp, err := o.client.Swap.Transaction(ctx, chain, input.Hash)
		if err != nil {
			return nil, err
		}
		return resp.Result()
	})
}

func (o *Operations) LimitOrders(c *gin.Context) {
	input := common.GetInput[models.LimitOrdersInput](c)
	chain, ok := chainOf(c, input.Chain)
	if !ok {
		return
	}
	params := &models.LimitOrdersByAddressParams{
		Page:     input.Page,
		Limit:    input.Limit,
		Statuses: input.Statuses,
	}
	respond(o, c, func(ctx context.Context) (*[]models.LimitOrder, error) {
		resp, err := o.client.LimitOrder.OrdersByAddress(ctx, chain, input.Address, params)
		if err != nil {
			return nil, err
		}
		return resp.Result()
	})
}

func (o *Operations) DcaOrders(c *gin.Context) {
	input := common.GetInput[models.DcaOrdersInput](c)
	chain, ok := chainOf(c, input.Chain)
	if !ok {
		return
	}
	respond(o, c, func(ctx context.Context) (*[]models.DcaOrder, error) {
		resp, err := o.client.DCA.Orders(ctx, chain, input.Address)
		if err != nil {
			return nil, err
		}
		return resp.Result()
	})
}

// GasPrices prices several chains at once. A chain that fails is reported in its own
// entry and does not fail the request.
func (o *Operations) GasPrices(c *gin.Context) {
	input := common.GetInput[models.GasPricesInput](c)
	chains, err := parseChainList(input.Chains)
	if err != nil {
		common.SendErrorResponse(c, exceptionFor(err))
		return
	}
	common.SendResponse(c, o.gasPrices(c.Request.Context(), chains))
}

func (o *Operations) gasPrices(ctx context.Context, chains []common.Chain) []models.ChainGasPrice {
	o.logger.WithField("chains", len(chains)).Info("Getting gas prices from chains")

	out := make([]models.ChainGasPrice, len(chains))
	sem := make(chan struct{}, maxConcurrentChains)
	var wg sync.WaitGroup
	for i, chain := range chains {
		wg.Add(1)
		go func(i int, chain common.Chain) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			out[i].Chain = chain.String()
			var levels *models.GasPriceData
			err := o.call(ctx, func(ctx context.Context) error {
				resp, err := o.client.Swap.GasPrice(ctx, chain)
				if err != nil {
					return err
				}
				levels, err = resp.Result()
				return err
			})
			if err != nil {
				o.logger.WithError(err).WithField("chain", out[i].Chain).Error("gas price failed")
				out[i].Err = err.Error()
				return
			}
			out[i].Levels = levels
		}(i, chain)
	}
	wg.Wait()
	return out
}

// parseChainList splits a comma separated chain list; an empty list means every EVM chain.
func parseChainList(s string) ([]common.Chain, error) {
	var chains []common.Chain
	if strings.TrimSpace(s) == "" {
		for _, chain := range common.Chains() {
			if chain.IsEVM() {
				chains = append(chains, chain)
			}
		}
		return chains, nil
	}
	seen := make(map[common.Chain]bool)
	for _, part := range strings.Split(s, ",") {
		chain, err := common.ParseChain(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Internal(errors.UnsupportedChainError, err)
		}
		if !seen[chain] {
			seen[chain] = true
			chains = append(chains, chain)
		}
	}
	return chains, nil
}
