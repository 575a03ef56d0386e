package chat

// Rótulos fixos do serviço. Não vêm da resposta do modelo.
const (
	SourceLabel   = "Kalfix IA"
	ProviderLabel = "Somar.IA"
	VersionLabel  = "piloto-1"
)

// Answer
// Resposta do /chat em caso de sucesso.
type Answer struct {
	Answer        string `json:"answer"`
	Source        string `json:"source"`
	ProviderLabel string `json:"providerLabel"`
	Version       string `json:"version"`
}

func newAnswer(text string) *Answer {
	return &Answer{
		Answer:        text,
		Source:        SourceLabel,
		ProviderLabel: ProviderLabel,
		Version:       VersionLabel,
	}
}
