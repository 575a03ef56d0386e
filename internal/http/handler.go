package http

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/josinaldojr/kalfix-ai-backend/internal/chat"
)

const (
	Banner = "API KALFIX rodando 🚀 | Desenvolvido pela Somar.IA - Automações inteligentes"

	maxBodyBytes = 1 << 20
)

// StatusResponse
// Payload fixo do GET /status.
type StatusResponse struct {
	Status          string `json:"status"`
	Projeto         string `json:"projeto"`
	Versao          string `json:"versao"`
	DesenvolvidoPor string `json:"desenvolvido_por"`
}

var status = StatusResponse{
	Status:          "online",
	Projeto:         "kalfix-ai-backend",
	Versao:          "1.0",
	DesenvolvidoPor: "Somar.IA",
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// chatRequest guarda os campos crus para validar o tipo de "question".
// "pergunta" é o nome usado pelo front antigo.
type chatRequest struct {
	Question json.RawMessage `json:"question"`
	Pergunta json.RawMessage `json:"pergunta"`
}

type Handler struct {
	chat *chat.Service
}

func NewHandler(chatService *chat.Service) *Handler {
	return &Handler{chat: chatService}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(Banner))
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	question, ok := decodeQuestion(r)
	if !ok {
		writeError(w, http.StatusBadRequest, chat.ErrQuestionMissing.Error())
		return
	}

	ans, err := h.chat.Ask(r.Context(), question)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrQuestionMissing):
			writeError(w, http.StatusBadRequest, chat.ErrQuestionMissing.Error())
		case errors.Is(err, chat.ErrNotConfigured):
			log.Printf("❌ /chat chamado sem GEMINI_API_KEY configurada")
			writeError(w, http.StatusInternalServerError, chat.ErrNotConfigured.Error())
		default:
			writeError(w, http.StatusInternalServerError, chat.ErrUpstream.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, ans)
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func decodeQuestion(r *http.Request) (string, bool) {
	var req chatRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		return "", false
	}
	// o body tem que ser um único objeto JSON
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return "", false
	}

	raw := req.Question
	if len(raw) == 0 {
		raw = req.Pergunta
	}

	var q string
	if err := json.Unmarshal(raw, &q); err != nil {
		return "", false
	}
	return q, true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg})
}
