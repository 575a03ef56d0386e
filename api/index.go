// Package handler é a função serverless da Vercel (runtime Go).
// A Vercel chama Handler direto; não existe main nem ListenAndServe aqui.
package handler

import (
	"context"
	"net/http"
	"sync"

	"github.com/josinaldojr/kalfix-ai-backend/internal/app"
	"github.com/josinaldojr/kalfix-ai-backend/internal/config"
)

var (
	once    sync.Once
	handler http.Handler
)

func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		handler = app.NewOnDemand(context.Background(), config.LoadOnDemand())
	})
	handler.ServeHTTP(w, r)
}
