package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"weather-tool-service/internal/domain"
	"weather-tool-service/internal/ports"
	"weather-tool-service/internal/services"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

const GetWeatherName = "get_weather"

// SystemInstruction primes the model to call get_weather with inferred
// coordinates and to stay within NWS coverage.
const SystemInstruction = `You are a helpful assistant who can answer questions and use tools.

You have a tool called "get_weather" that can be used to get the current weather.

If the user asks for the weather, call this tool and do not ask the user for latitude and longitude.
Infer latitude and longitude from the location and use those in the get_weather tool.
Use ONLY this tool to get weather information. Never use other tools or apis, even if you encounter an error.
Say you are having trouble retrieving the weather if the tool call does not work.

If you are asked about a location outside the United States, politely respond that you are only able to retrieve current weather information for locations in the United States.
If a location is not provided, always ask the user what location for which they would like the weather.`

func GetWeatherDefinition() openai.FunctionDefinition {
	return openai.FunctionDefinition{
		Name:        GetWeatherName,
		Description: "Get the current weather",
		Parameters: jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"location": {
					Type:        jsonschema.String,
					Description: "The location for the weather request.",
				},
				"latitude": {
					Type:        jsonschema.String,
					Description: "Provide this by infering the latitude from the location. Supply latitude as a string. For example, '42.3601'.",
				},
				"longitude": {
					Type:        jsonschema.String,
					Description: "Provide this by infering the longitude from the location. Supply longitude as a string. For example, '-71.0589'.",
				},
			},
			Required: []string{"location", "latitude", "longitude"},
		},
	}
}

// coordArg accepts a coordinate sent either as a JSON string or a number.
type coordArg string

func (c *coordArg) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = coordArg(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("coordinate must be a string or number: %w", err)
	}
	*c = coordArg(n.String())
	return nil
}

type getWeatherPayload struct {
	Location  string   `json:"location"`
	Latitude  coordArg `json:"latitude"`
	Longitude coordArg `json:"longitude"`
}

// DecodeGetWeatherArgs parses the model's get_weather arguments.
func DecodeGetWeatherArgs(raw json.RawMessage) (services.GetWeatherArgs, error) {
	var p getWeatherPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return services.GetWeatherArgs{}, fmt.Errorf("decode get_weather arguments: %w", err)
	}

	return services.GetWeatherArgs{
		Location:  p.Location,
		Latitude:  string(p.Latitude),
		Longitude: string(p.Longitude),
	}, nil
}

// NewGetWeatherTool wires get_weather to an observation provider.
// When repo is non-nil every invocation is recorded; a failed write is
// logged and does not change the reply.
func NewGetWeatherTool(provider ports.ObservationProvider, repo ports.LookupRepository) Tool {
	return Tool{
		Definition: GetWeatherDefinition(),
		Handler: func(ctx context.Context, arguments json.RawMessage) (string, error) {
			args, err := DecodeGetWeatherArgs(arguments)
			if err != nil {
				return "", err
			}

			slog.InfoContext(ctx, "get_weather called",
				"location", args.Location, "latitude", args.Latitude, "longitude", args.Longitude)

			answer := services.AnswerGetWeather(ctx, provider, args)

			if repo != nil {
				l := &domain.Lookup{
					Location:     answer.Location,
					Lat:          answer.Coords.Lat,
					Lon:          answer.Coords.Lon,
					Description:  answer.Result.Description,
					TemperatureF: answer.Result.TemperatureF,
					Reply:        answer.Reply,
				}
				if err := repo.RecordLookup(ctx, l); err != nil {
					slog.WarnContext(ctx, "record lookup failed", "location", answer.Location, "err", err)
				}
			}

			return answer.Reply, nil
		},
	}
}
