package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"weather-tool-service/internal/platform/obs"
)

type pointsResponse struct {
	Properties struct {
		ObservationStations string `json:"observationStations"`
	} `json:"properties"`
}

type stationsResponse struct {
	Features []struct {
		Properties struct {
			StationIdentifier string `json:"stationIdentifier"`
		} `json:"properties"`
	} `json:"features"`
}

// fetchStations resolves a point to its observation stations, nearest first.
// Points outside NWS coverage come back as 404 from /points.
func (p *NWSProvider) fetchStations(ctx context.Context, point string) (_ []string, err error) {
	defer obs.Time(ctx, "nws.fetchStations")(&err)

	resp, err := p.get(ctx, p.baseURL+"/points/"+point)
	if err != nil {
		return nil, fmt.Errorf("points request: %w", err)
	}
	defer resp.Body.Close()

	var pr pointsResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("decode points response: %w", err)
	}

	stationsURL := strings.TrimSpace(pr.Properties.ObservationStations)
	if stationsURL == "" {
		return nil, fmt.Errorf("points response for %s has no observationStations link", point)
	}

	sresp, err := p.get(ctx, stationsURL)
	if err != nil {
		return nil, fmt.Errorf("stations request: %w", err)
	}
	defer sresp.Body.Close()

	var sr stationsResponse
	if err := json.NewDecoder(sresp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode stations response: %w", err)
	}

	ids := make([]string, 0, len(sr.Features))
	for _, f := range sr.Features {
		id := strings.TrimSpace(f.Properties.StationIdentifier)
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, ErrNoStations
	}

	return ids, nil
}
