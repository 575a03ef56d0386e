package chat

import "context"

// Completer é a capacidade remota de completar texto (Gemini em produção).
type Completer interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}
