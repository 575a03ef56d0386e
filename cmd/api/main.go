package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/josinaldojr/kalfix-ai-backend/internal/app"
	"github.com/josinaldojr/kalfix-ai-backend/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	handler, err := app.New(ctx, cfg)
	if err != nil {
		// log.Fatalf sai com status 1 antes de qualquer requisição
		log.Fatalf("❌ %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 Servidor rodando em http://localhost:%s", cfg.Port)
		log.Printf("🤖 IA Kalfix ativa (model=%s)", cfg.GeminiModel)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ erro no shutdown: %v", err)
	}
	log.Println("✅ Servidor parado")
}
