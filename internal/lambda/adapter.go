package lambda

import (
	"net/http"

	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
)

// NewAdapter embrulha o handler da aplicação para eventos do API Gateway
// HTTP API (payload 2.0, também usado por Function URLs).
// Use ProxyWithContext como handler do lambda.Start.
func NewAdapter(h http.Handler) *httpadapter.HandlerAdapterV2 {
	return httpadapter.NewV2(h)
}
