package domain

import "time"

// Represents one get_weather tool invocation and the reply it produced.
// Lookups are append-only history; nothing reads them back into a reply.
type Lookup struct {
	ID           int64
	Location     string
	Lat          float64
	Lon          float64
	Description  string
	TemperatureF float64
	Reply        string
	CreatedAt    time.Time
}
