package domain

// Represents the outcome of a weather lookup.
//
// TemperatureF == 0 doubles as the "no data" sentinel: a lookup that failed
// and a genuine 0°F reading look the same. Callers must treat zero as
// unavailable.
type WeatherResult struct {
	Description  string
	TemperatureF float64
}

// Unavailable is the result returned when the lookup could not produce data.
var Unavailable = WeatherResult{}

func (r WeatherResult) Available() bool { return r.TemperatureF != 0 }

func (r WeatherResult) HasDescription() bool { return r.Description != "" }

// CelsiusToFahrenheit converts with F = C * 9/5 + 32.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}
