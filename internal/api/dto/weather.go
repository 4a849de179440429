package dto

type WeatherResponse struct {
	Description  *string `json:"description"`
	TemperatureF float64 `json:"temperature_f"`
	Available    bool    `json:"available"`
}
