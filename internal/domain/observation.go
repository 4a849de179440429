package domain

import "time"

// A single reading reported by a weather station.
// Description and TemperatureC are optional upstream; an empty Description
// or nil TemperatureC means the station did not report that field.
type Observation struct {
	StationID    string
	Description  string
	TemperatureC *float64
	ObservedAt   time.Time
}

// HasTemperature reports whether the observation carries a Celsius reading.
func (o Observation) HasTemperature() bool { return o.TemperatureC != nil }
