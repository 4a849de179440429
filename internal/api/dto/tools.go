package dto

import (
	"encoding/json"

	openai "github.com/sashabaranov/go-openai"
)

type ToolsResponse struct {
	Instructions string        `json:"instructions"`
	Tools        []openai.Tool `json:"tools"`
}

// GetWeatherRequest keeps the coordinates raw so both "42.36" and 42.36 are accepted.
type GetWeatherRequest struct {
	Location  string          `json:"location"`
	Latitude  json.RawMessage `json:"latitude"`
	Longitude json.RawMessage `json:"longitude"`
}

type ToolResultResponse struct {
	Result string `json:"result"`
}
