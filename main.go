package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"finco/openocean/client"
	"finco/openocean/common"
	"finco/openocean/operations"
	"finco/openocean/routes"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var ginLambda *ginadapter.GinLambda

// setup complete app routers
func setupRouter(ops *operations.Operations, logger log.FieldLogger) *gin.Engine {

	router := gin.New()

	router.Use(gin.Recovery())

	router.Use(routes.RequestLogger(logger))

	router.Use(common.CORSMiddleware())

	common.SetupCustomValidators()

	routes.RouteHandler(router, ops)

	return router
}

func main() {

	config, err := common.LoadConfig("gateway")
	if err != nil {
		common.ForceExit(err)
	}

	logger := common.NewLogger(config.Log)
	log.SetLevel(logger.GetLevel())
	log.SetFormatter(logger.Formatter)

	cfg := client.ConfigFrom(config.Client)
	cfg.Logger = logger
	c, err := client.New(cfg)
	if err != nil {
		common.ForceExit(err)
	}

	ops := operations.New(c, config.Gateway, logger)

	if _, ok := os.LookupEnv(common.LambdaRuntime); ok {
		logger.Info("running aws lambda in aws")
		ginLambda = ginadapter.New(setupRouter(ops, logger))
		lambda.Start(AWSHandler)
	} else {
		listenAddress := ":" + config.Server.Port
		logger.Info(fmt.Sprintf("** Service Started on Port %s **", listenAddress))
		logger.Fatal(http.ListenAndServe(listenAddress, setupRouter(ops, logger)))
	}
}

func AWSHandler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return ginLambda.ProxyWithContext(ctx, request)
}
