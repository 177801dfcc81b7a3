package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	log "github.com/sirupsen/logrus"
)

/*
Usage Example

	type QuoteInput struct {
		Chain    string `form:"chain" binding:"required,chain"`
		InToken  string `form:"inTokenAddress" binding:"required"`
	}

route.GET("/:chain/quote",

	common.ValidateInput[models.QuoteInput](),
	ops.Quote,

)

input := common.GetInput[models.QuoteInput](c)

Path parameters are bound with the form tag, together with the query string, so one
struct can mix both. The list of built-in validators can found at
https://github.com/go-playground/validator
*/
func ValidateInput[InputEntityType any]() func(*gin.Context) {
	return func(c *gin.Context) {
		var input InputEntityType

		form := c.Request.URL.Query()
		for _, p := range c.Params {
			form.Set(p.Key, p.Value)
		}
		err := binding.MapFormWithTag(&input, form, "form")
		if err == nil {
			err = binding.Validator.ValidateStruct(&input)
		}
		if err != nil {
			SendErrorResponse(c, Exception{
				http.StatusBadRequest,
				ErrorTypeMap[http.StatusBadRequest],
				err.Error()})
			return
		}

		c.Set("iEntity", input)

		c.Next()
	}
}

func SendErrorResponse(c *gin.Context, err Exception) {
	log.Errorf("Sending error response %v", err)
	c.AbortWithStatusJSON(err.Code, ApiError{
		Status: false,
		Err: ErrorDetails{
			Type:    err.ErrorType,
			Message: err.Message,
		},
	})
}

func SendResponse[OutputObjectType any](c *gin.Context, obj OutputObjectType) {
	c.JSON(http.StatusOK, ApiSuccess{
		Status: true,
		Result: obj,
	})
}

func GetInput[BodyType any](c *gin.Context) BodyType {
	return c.MustGet("iEntity").(BodyType)
}

// CORSMiddleware to apply server middleware for CORS
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
