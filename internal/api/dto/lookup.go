package dto

import "time"

type LookupResponse struct {
	ID           int64     `json:"id"`
	Location     string    `json:"location"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Description  *string   `json:"description"`
	TemperatureF float64   `json:"temperature_f"`
	Reply        string    `json:"reply"`
	CreatedAt    time.Time `json:"created_at"`
}

type ListLookupsResponse struct {
	Lookups []LookupResponse `json:"lookups"`
}
