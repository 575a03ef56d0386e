package main

import (
	"context"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/josinaldojr/kalfix-ai-backend/internal/app"
	"github.com/josinaldojr/kalfix-ai-backend/internal/config"
	"github.com/josinaldojr/kalfix-ai-backend/internal/lambda"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadOnDemand()
	handler := app.NewOnDemand(ctx, cfg)

	awslambda.Start(lambda.NewAdapter(handler).ProxyWithContext)
}
