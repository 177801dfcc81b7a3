package routes

import (
	"finco/openocean/common"
	"finco/openocean/models"
	"finco/openocean/operations"

	"github.com/gin-gonic/gin"
)

func RouteHandler(routeEngine *gin.Engine, ops *operations.Operations) {

	// liveness probe, does not reach the upstream API
	routeEngine.GET("/", HandlerWrap(ops.Health))
	routeEngine.GET("/health", HandlerWrap(ops.Health))

	router := routeEngine.Group("/api/v1")

	// supported chains with their slug and EVM chain id
	router.GET("/chains", HandlerWrap(ops.Chains))

	// gas price levels of several chains, ?chains=bsc,eth,137
	router.GET("/gasPrices",
		common.ValidateInput[models.GasPricesInput](),
		HandlerWrap(ops.GasPrices))

	chain := router.Group("/chains/:chain")

	chain.GET("/quote",
		common.ValidateInput[models.QuoteInput](),
		HandlerWrap(ops.Quote))

	chain.GET("/gasPrice",
		common.ValidateInput[models.ChainInput](),
		HandlerWrap(ops.GasPrice))

	chain.GET("/tokens",
		common.ValidateInput[models.ChainInput](),
		HandlerWrap(ops.TokenList))

	chain.GET("/dexes",
		common.ValidateInput[models.ChainInput](),
		HandlerWrap(ops.DexList))

	chain.GET("/transactions/:hash",
		common.ValidateInput[models.TransactionInput](),
		HandlerWrap(ops.Transaction))

	chain.GET("/limitOrders/:address",
		common.ValidateInput[models.LimitOrdersInput](),
		HandlerWrap(ops.LimitOrders))

	chain.GET("/dcaOrders/:address",
		common.ValidateInput[models.DcaOrdersInput](),
		HandlerWrap(ops.DcaOrders))
}
