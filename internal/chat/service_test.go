package chat_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/josinaldojr/kalfix-ai-backend/internal/chat"
)

type mockCompleter struct {
	mock.Mock
}

func (m *mockCompleter) Complete(ctx context.Context, model, prompt string) (string, error) {
	args := m.Called(ctx, model, prompt)
	return args.String(0), args.Error(1)
}

func TestService_Ask_Success(t *testing.T) {
	llm := &mockCompleter{}
	llm.On("Complete", mock.Anything, "gemini-2.5-pro", chat.BuildPrompt("Qual argamassa usar?")).
		Return("  Use a AC-III.  ", nil).Once()

	svc := chat.NewService(llm, "gemini-2.5-pro")
	ans, err := svc.Ask(context.Background(), "Qual argamassa usar?")

	require.NoError(t, err)
	assert.Equal(t, &chat.Answer{
		Answer:        "Use a AC-III.",
		Source:        "Kalfix IA",
		ProviderLabel: "Somar.IA",
		Version:       "piloto-1",
	}, ans)
	llm.AssertExpectations(t)
}

func TestService_Ask_BlankQuestion(t *testing.T) {
	for _, q := range []string{"", "   ", "\n\t"} {
		llm := &mockCompleter{}
		svc := chat.NewService(llm, "m")

		_, err := svc.Ask(context.Background(), q)

		assert.ErrorIs(t, err, chat.ErrQuestionMissing)
		llm.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestService_Ask_NotConfigured(t *testing.T) {
	svc := chat.NewService(nil, "m")

	assert.False(t, svc.Configured())
	_, err := svc.Ask(context.Background(), "oi")
	assert.ErrorIs(t, err, chat.ErrNotConfigured)
}

func TestService_Ask_UpstreamError(t *testing.T) {
	llm := &mockCompleter{}
	llm.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("googleapi: Error 429: quota exceeded")).Once()

	_, err := chat.NewService(llm, "m").Ask(context.Background(), "oi")

	assert.ErrorIs(t, err, chat.ErrUpstream)
	llm.AssertNumberOfCalls(t, "Complete", 1)
}

func TestService_Ask_EmptyCompletion(t *testing.T) {
	llm := &mockCompleter{}
	llm.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(" \n", nil).Once()

	_, err := chat.NewService(llm, "m").Ask(context.Background(), "oi")

	assert.ErrorIs(t, err, chat.ErrUpstream)
}

func TestService_Ask_Independent(t *testing.T) {
	llm := &mockCompleter{}
	llm.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("resposta", nil).Twice()
	svc := chat.NewService(llm, "m")

	a1, err := svc.Ask(context.Background(), "X")
	require.NoError(t, err)
	a2, err := svc.Ask(context.Background(), "X")
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
	assert.NotSame(t, a1, a2)
	llm.AssertNumberOfCalls(t, "Complete", 2)
}

func TestBuildPrompt(t *testing.T) {
	p := chat.BuildPrompt("  pergunta literal {x}  ")

	assert.True(t, strings.HasPrefix(p, chat.PersonaPrompt))
	assert.True(t, strings.HasSuffix(p, "\n\nPergunta do cliente:\n  pergunta literal {x}  "))
	assert.NotContains(t, chat.PersonaPrompt, "pergunta literal")
}

func TestPersonaPrompt_Signature(t *testing.T) {
	assert.True(t, strings.HasSuffix(chat.PersonaPrompt,
		"Assinatura obrigatória (sempre manter):\n“Desenvolvido pela Somar.IA — Automações inteligentes”"))
}
