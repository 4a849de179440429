package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"weather-tool-service/internal/adapters/nws"
	"weather-tool-service/internal/domain"
)

func TestAnswerGetWeatherBoston(t *testing.T) {
	provider := nws.NewMockObservationProvider(
		domain.Observation{StationID: "KBOS", Description: "Cloudy", TemperatureC: nws.Celsius(10)},
	)

	got := AnswerGetWeather(context.Background(), provider, GetWeatherArgs{
		Location:  "Boston",
		Latitude:  "42.3601",
		Longitude: "-71.0589",
	})

	want := "According to noah, the weather in Boston is currently 50 degrees and Cloudy."
	if got.Reply != want {
		t.Fatalf("reply = %q, want %q", got.Reply, want)
	}
	if !got.LookedUp {
		t.Fatalf("expected a lookup to be performed")
	}
	if got.Result.TemperatureF != 50 {
		t.Fatalf("temperature_f = %v, want 50", got.Result.TemperatureF)
	}
}

func TestAnswerGetWeatherUnrecognizedLocation(t *testing.T) {
	cases := []GetWeatherArgs{
		{Location: "Nowhere", Latitude: "", Longitude: "-71.0589"},
		{Location: "Nowhere", Latitude: "42.3601", Longitude: ""},
		{Location: "Nowhere", Latitude: "0", Longitude: "-71.0589"},
		{Location: "Nowhere", Latitude: "42.3601", Longitude: "0.0"},
		{Location: "Nowhere", Latitude: "north", Longitude: "west"},
		{Location: "Nowhere", Latitude: "NaN", Longitude: "-71"},
		{Location: "Nowhere", Latitude: "42.36", Longitude: "inf"},
	}

	for _, args := range cases {
		provider := nws.NewMockObservationProvider(
			domain.Observation{StationID: "KBOS", Description: "Cloudy", TemperatureC: nws.Celsius(10)},
		)

		got := AnswerGetWeather(context.Background(), provider, args)

		if got.Reply != UnrecognizedLocationReply {
			t.Errorf("args %+v: reply = %q, want %q", args, got.Reply, UnrecognizedLocationReply)
		}
		if got.LookedUp {
			t.Errorf("args %+v: expected no lookup", args)
		}
		if n := len(provider.Calls()); n != 0 {
			t.Errorf("args %+v: provider called %d times, want 0", args, n)
		}
	}
}

func TestAnswerGetWeatherTrimsLocation(t *testing.T) {
	provider := nws.NewMockObservationProvider(
		domain.Observation{StationID: "KBOS", Description: "Cloudy", TemperatureC: nws.Celsius(10)},
	)

	got := AnswerGetWeather(context.Background(), provider, GetWeatherArgs{
		Location:  "  Boston \n",
		Latitude:  "42.3601",
		Longitude: "-71.0589",
	})

	if got.Location != "Boston" {
		t.Fatalf("location = %q, want Boston", got.Location)
	}
	if !strings.Contains(got.Reply, "weather in Boston is") {
		t.Fatalf("reply = %q", got.Reply)
	}
}

func TestAnswerGetWeatherUpstreamFailure(t *testing.T) {
	provider := &nws.MockObservationProvider{Err: errors.New("no stations")}

	got := AnswerGetWeather(context.Background(), provider, GetWeatherArgs{
		Location:  "Boston",
		Latitude:  "42.3601",
		Longitude: "-71.0589",
	})

	want := "I'm sorry, I can't get the weather for Boston right now. Can you ask again please?"
	if got.Reply != want {
		t.Fatalf("reply = %q, want %q", got.Reply, want)
	}
}

func TestFormatWeatherReply(t *testing.T) {
	cases := []struct {
		name   string
		result domain.WeatherResult
		want   string
	}{
		{
			name:   "description and temperature",
			result: domain.WeatherResult{Description: "Sunny", TemperatureF: 71.6},
			want:   "According to noah, the weather in Denver is currently 72 degrees and Sunny.",
		},
		{
			name:   "temperature only",
			result: domain.WeatherResult{TemperatureF: 45.2},
			want:   "According to noah, the weather in Denver is currently 45 degrees.",
		},
		{
			name:   "zero temperature ignores description",
			result: domain.WeatherResult{Description: "Snow", TemperatureF: 0},
			want:   "I'm sorry, I can't get the weather for Denver right now. Can you ask again please?",
		},
		{
			name:   "half rounds to even",
			result: domain.WeatherResult{Description: "Fair", TemperatureF: 50.5},
			want:   "According to noah, the weather in Denver is currently 50 degrees and Fair.",
		},
		{
			name:   "negative temperature",
			result: domain.WeatherResult{Description: "Clear", TemperatureF: -4},
			want:   "According to noah, the weather in Denver is currently -4 degrees and Clear.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatWeatherReply("Denver", tc.result); got != tc.want {
				t.Fatalf("reply = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatWeatherReplyIncludesDescriptionAndDegrees(t *testing.T) {
	got := FormatWeatherReply("Austin", domain.WeatherResult{Description: "Partly Cloudy", TemperatureF: 88.4})
	if !strings.Contains(got, "88") || !strings.Contains(got, "Partly Cloudy") {
		t.Fatalf("reply %q must include degrees and description", got)
	}
}
