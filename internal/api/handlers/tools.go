package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"weather-tool-service/internal/api/dto"
	"weather-tool-service/internal/tools"

	openai "github.com/sashabaranov/go-openai"
)

type ToolsHandler struct {
	Registry *tools.Registry
}

// List returns the system instruction and tool declarations a chat client
// needs to offer the tools to a model.
func (h *ToolsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToolsResponse{
		Instructions: tools.SystemInstruction,
		Tools:        h.Registry.Definitions(),
	})
}

func (h *ToolsHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	var req dto.GetWeatherRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, badBodyMessage(err))
		return
	}

	args, err := json.Marshal(req)
	if err != nil {
		slog.ErrorContext(r.Context(), "encode get_weather arguments failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	reply, err := h.Registry.Invoke(r.Context(), tools.GetWeatherName, args)
	switch {
	case errors.Is(err, tools.ErrToolNotFound):
		writeError(w, r, http.StatusNotFound, "tool not found")
		return
	case err != nil:
		writeError(w, r, http.StatusBadRequest, "latitude and longitude must be strings or numbers")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToolResultResponse{Result: reply})
}

// Call executes an OpenAI-style tool call and answers with the tool message
// to append to the conversation.
func (h *ToolsHandler) Call(w http.ResponseWriter, r *http.Request) {
	var call openai.ToolCall
	if err := decodeJSON(w, r, &call); err != nil {
		writeError(w, r, http.StatusBadRequest, badBodyMessage(err))
		return
	}

	if strings.TrimSpace(call.Function.Name) == "" {
		writeError(w, r, http.StatusBadRequest, "function.name is required")
		return
	}

	writeJSON(w, r, http.StatusOK, h.Registry.Call(r.Context(), call))
}
