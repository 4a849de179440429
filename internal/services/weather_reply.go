package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"weather-tool-service/internal/domain"
	"weather-tool-service/internal/ports"
)

const UnrecognizedLocationReply = "Sorry, I don't recognize that location."

// Arguments of the get_weather tool as the model supplies them.
// Coordinates arrive as strings and are parsed here.
type GetWeatherArgs struct {
	Location  string `json:"location"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type WeatherAnswer struct {
	// Location as it appears in Reply, trimmed.
	Location string
	Reply    string
	Coords   domain.Coordinates
	Result   domain.WeatherResult
	LookedUp bool
}

// AnswerGetWeather runs the get_weather tool: it parses the coordinates,
// performs the lookup when both are usable, and formats the reply.
// Unusable coordinates short-circuit without touching the provider.
func AnswerGetWeather(
	ctx context.Context,
	provider ports.ObservationProvider,
	args GetWeatherArgs,
) WeatherAnswer {
	location := strings.TrimSpace(args.Location)

	coords, ok := ParseCoordinates(args.Latitude, args.Longitude)
	if !ok {
		return WeatherAnswer{Location: location, Reply: UnrecognizedLocationReply, Coords: coords}
	}

	result := LookupWeather(ctx, provider, coords)

	return WeatherAnswer{
		Location: location,
		Reply:    FormatWeatherReply(location, result),
		Coords:   coords,
		Result:   result,
		LookedUp: true,
	}
}

// ParseCoordinates parses string latitude/longitude.
// Empty, unparsable, non-finite and zero values all count as missing.
// "nan" and "inf" parse as floats but are treated as unrecognized here,
// so they get the unrecognized-location reply without a lookup instead of
// a failed lookup and the "can't get the weather" reply.
func ParseCoordinates(lat, lon string) (domain.Coordinates, bool) {
	la, okLat := parseDegrees(lat)
	lo, okLon := parseDegrees(lon)

	c := domain.Coordinates{Lat: la, Lon: lo}
	return c, okLat && okLon && c.IsSet()
}

func parseDegrees(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FormatWeatherReply renders a lookup result as the sentence handed back
// to the model. A zero temperature is read as "no data".
func FormatWeatherReply(location string, r domain.WeatherResult) string {
	if !r.Available() {
		return fmt.Sprintf("I'm sorry, I can't get the weather for %s right now. Can you ask again please?", location)
	}

	degrees := int(math.RoundToEven(r.TemperatureF))

	if !r.HasDescription() {
		return fmt.Sprintf("According to noah, the weather in %s is currently %d degrees.", location, degrees)
	}

	return fmt.Sprintf("According to noah, the weather in %s is currently %d degrees and %s.", location, degrees, r.Description)
}
