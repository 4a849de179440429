package domain

import "fmt"

// Immutable geographic coordinates (latitude, longitude) in signed degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// IsSet reports whether both components are present.
// A zero component counts as missing, so (0, x) is never looked up.
func (c Coordinates) IsSet() bool { return c.Lat != 0 && c.Lon != 0 }

// Return coordinates as "lat,lon" for the NWS points endpoint.
// The API rejects more than four decimal places.
func (c Coordinates) PointPath() string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lon)
}
