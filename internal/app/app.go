package app

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/josinaldojr/kalfix-ai-backend/internal/chat"
	"github.com/josinaldojr/kalfix-ai-backend/internal/config"
	apphttp "github.com/josinaldojr/kalfix-ai-backend/internal/http"
	"github.com/josinaldojr/kalfix-ai-backend/internal/llm"
)

// ErrMissingCredential só é devolvido com StrictStartup ligado.
var ErrMissingCredential = errors.New("GEMINI_API_KEY não encontrada no ambiente")

// New monta o handler completo (rotas + CORS). Sem credencial, o modo estrito
// falha aqui; o modo on-demand sobe mesmo assim com o /chat desabilitado.
func New(ctx context.Context, cfg *config.Config) (http.Handler, error) {
	var completer chat.Completer

	if cfg.GeminiAPIKey == "" {
		if cfg.StrictStartup {
			return nil, ErrMissingCredential
		}
		log.Printf("❌ %v: /chat vai responder 500", ErrMissingCredential)
	} else {
		gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			if cfg.StrictStartup {
				return nil, err
			}
			log.Printf("❌ falha ao iniciar Gemini: %v", err)
		} else {
			completer = gemini
		}
	}

	return NewWithCompleter(cfg, completer), nil
}

func NewWithCompleter(cfg *config.Config, completer chat.Completer) http.Handler {
	svc := chat.NewService(completer, cfg.GeminiModel)
	log.Printf("✅ Backend carregado | Gemini init: %t | model=%s", svc.Configured(), cfg.GeminiModel)

	h := apphttp.NewHandler(svc)
	return apphttp.CORS(apphttp.NewRouter(h))
}

// NewOnDemand é o boot das funções serverless: nunca falha. Mesmo com
// STRICT_STARTUP=true a instância sobe e o /chat responde "server misconfigured".
func NewOnDemand(ctx context.Context, cfg *config.Config) http.Handler {
	h, err := New(ctx, cfg)
	if err != nil {
		log.Printf("❌ %v: subindo com /chat desabilitado", err)
		return NewWithCompleter(cfg, nil)
	}
	return h
}
