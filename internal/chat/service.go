package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	wl "github.com/abadojack/whatlanggo"
)

var (
	// ErrQuestionMissing: pergunta ausente, vazia ou só com espaços.
	ErrQuestionMissing = errors.New("question missing")
	// ErrNotConfigured: o Completer nunca foi criado (credencial ausente).
	ErrNotConfigured = errors.New("server misconfigured")
	// ErrUpstream: a chamada ao modelo falhou ou voltou sem texto.
	ErrUpstream = errors.New("upstream call failed")
)

type Service struct {
	llm   Completer
	model string
}

// NewService aceita llm nil: nesse caso todo Ask devolve ErrNotConfigured.
func NewService(llm Completer, model string) *Service {
	return &Service{
		llm:   llm,
		model: model,
	}
}

// Configured informa se existe um Completer por trás do serviço.
func (s *Service) Configured() bool {
	return s.llm != nil
}

func (s *Service) Ask(ctx context.Context, question string) (*Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrQuestionMissing
	}

	if s.llm == nil {
		return nil, ErrNotConfigured
	}

	log.Printf("chat: pergunta recebida (lang=%s, chars=%d)", detectLang(question), len([]rune(question)))

	txt, err := s.llm.Complete(ctx, s.model, BuildPrompt(question))
	if err != nil {
		log.Printf("❌ erro gemini (model=%s): %v", s.model, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	txt = strings.TrimSpace(txt)
	if txt == "" {
		log.Printf("❌ erro gemini (model=%s): resposta sem texto", s.model)
		return nil, fmt.Errorf("%w: empty completion", ErrUpstream)
	}

	return newAnswer(txt), nil
}

func detectLang(s string) string {
	info := wl.Detect(s)
	if code := info.Lang.Iso6391(); code != "" {
		return code
	}
	return "und"
}
