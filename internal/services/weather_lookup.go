package services

import (
	"context"
	"errors"
	"fmt"
	"weather-tool-service/internal/domain"
	"weather-tool-service/internal/platform/logging"
	"weather-tool-service/internal/platform/obs"
	"weather-tool-service/internal/ports"
)

// Only the nearest station is consulted.
const lookupStations = 1

var errNoTemperature = errors.New("no observation reported a temperature")

// LookupWeather resolves the current conditions at coords.
//
// It never returns an error: any upstream failure is logged at the WEATHER
// level and collapsed into domain.Unavailable (no description, 0°F).
func LookupWeather(
	ctx context.Context,
	provider ports.ObservationProvider,
	coords domain.Coordinates,
) domain.WeatherResult {
	result, err := lookupWeather(ctx, provider, coords)
	if err != nil {
		logging.Weather(ctx, "error getting NOAA weather",
			"req_id", obs.RequestID(ctx), "lat", coords.Lat, "lon", coords.Lon, "err", err)
		result = domain.Unavailable
	}

	logging.Weather(ctx, "weather lookup result",
		"req_id", obs.RequestID(ctx), "description", result.Description, "temperature_f", result.TemperatureF)

	return result
}

func lookupWeather(
	ctx context.Context,
	provider ports.ObservationProvider,
	coords domain.Coordinates,
) (_ domain.WeatherResult, err error) {
	defer obs.Time(ctx, "services.LookupWeather")(&err)

	if provider == nil {
		return domain.WeatherResult{}, errors.New("lookup weather: provider is nil")
	}

	observations, err := provider.LatestObservations(ctx, coords, lookupStations)
	if err != nil {
		return domain.WeatherResult{}, fmt.Errorf("lookup weather: %w", err)
	}

	o, ok := pickObservation(observations)
	if !ok {
		return domain.WeatherResult{}, fmt.Errorf("lookup weather: %w", errNoTemperature)
	}

	return domain.WeatherResult{
		Description:  o.Description,
		TemperatureF: domain.CelsiusToFahrenheit(*o.TemperatureC),
	}, nil
}

// pickObservation takes the first observation with a condition description.
// When no observation has one, it falls back to the first that reports a
// temperature. A described observation without a temperature is not skipped:
// it yields no result.
func pickObservation(observations []domain.Observation) (domain.Observation, bool) {
	for _, o := range observations {
		if o.Description != "" {
			return o, o.HasTemperature()
		}
	}

	for _, o := range observations {
		if o.HasTemperature() {
			return o, true
		}
	}

	return domain.Observation{}, false
}
