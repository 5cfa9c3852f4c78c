package http

import (
	"encoding/json"
	"net/http"

	"github.com/3-lines-studio/greetsite/internal/log"
	"github.com/3-lines-studio/greetsite/internal/usecase"
)

const GreetPath = "/api/greet"

type GreetHandler struct {
	service *usecase.GreetService
}

func NewGreetHandler(service *usecase.GreetService) http.Handler {
	return &GreetHandler{service: service}
}

func (h *GreetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	greeting := h.service.Greet("")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(greeting); err != nil {
		log.FromContext(req.Context()).Warn().Err(err).Msg("failed to write greeting")
	}
}
