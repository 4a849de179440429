package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
	"weather-tool-service/internal/domain"
	"weather-tool-service/internal/platform/obs"
)

type observationsResponse struct {
	Features []struct {
		Properties struct {
			Station         string    `json:"station"`
			Timestamp       time.Time `json:"timestamp"`
			TextDescription string    `json:"textDescription"`
			Temperature     struct {
				UnitCode string   `json:"unitCode"`
				Value    *float64 `json:"value"`
			} `json:"temperature"`
		} `json:"properties"`
	} `json:"features"`
}

// fetchObservations reads a station's most recent observations, newest first.
func (p *NWSProvider) fetchObservations(ctx context.Context, stationID string) (_ []domain.Observation, err error) {
	defer obs.Time(ctx, "nws.fetchObservations")(&err)

	endpoint := fmt.Sprintf(
		"%s/stations/%s/observations?limit=%s",
		p.baseURL, url.PathEscape(stationID), strconv.Itoa(p.observationLimit),
	)

	resp, err := p.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("observations request: %w", err)
	}
	defer resp.Body.Close()

	var or observationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return nil, fmt.Errorf("decode observations response: %w", err)
	}

	out := make([]domain.Observation, 0, len(or.Features))
	for _, f := range or.Features {
		props := f.Properties
		out = append(out, domain.Observation{
			StationID:    stationID,
			Description:  strings.TrimSpace(props.TextDescription),
			TemperatureC: toCelsius(props.Temperature.UnitCode, props.Temperature.Value),
			ObservedAt:   props.Timestamp,
		})
	}

	return out, nil
}

// toCelsius normalises a WMO-unit temperature to Celsius.
// NWS reports wmoUnit:degC; degF shows up on some legacy stations.
func toCelsius(unitCode string, v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	if strings.HasSuffix(unitCode, ":degF") {
		c = (c - 32) * 5 / 9
	}
	return &c
}
