package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"
)

const openWeatherBase = "https://api.openweathermap.org/data/2.5"

// apiError carries the upstream status so the handler can map quota and
// key failures to distinct responses.
type apiError struct {
	StatusCode int
	Body       string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("openweather returned %d: %s", e.StatusCode, e.Body)
}

// Client talks to the OpenWeather API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient reads OPENWEATHER_API_KEY from the environment. Returns nil if
// the key is unset so the server can start without weather support.
func NewClient() *Client {
	key := os.Getenv("OPENWEATHER_API_KEY")
	if key == "" {
		return nil
	}
	return &Client{
		apiKey:  key,
		baseURL: openWeatherBase,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// CurrentConditions is the subset of the current-weather payload we serve.
type CurrentConditions struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
	WindSpeed float64 `json:"wind_speed"`
	Weather   string  `json:"weather"`
	Icon      string  `json:"icon"`
}

// DailyForecast is one day of the condensed forecast.
type DailyForecast struct {
	Date    string  `json:"date"`
	TempMin float64 `json:"temp_min"`
	TempMax float64 `json:"temp_max"`
	Weather string  `json:"weather"`
	Icon    string  `json:"icon"`
}

// Report is the combined payload returned to clients.
type Report struct {
	Current  CurrentConditions `json:"current"`
	Forecast []DailyForecast   `json:"forecast"`
}

type currentResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main string `json:"main"`
		Icon string `json:"icon"`
	} `json:"weather"`
}

type forecastResponse struct {
	List []forecastEntry `json:"list"`
}

type forecastEntry struct {
	DtTxt string `json:"dt_txt"`
	Main  struct {
		TempMin float64 `json:"temp_min"`
		TempMax float64 `json:"temp_max"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
		Icon string `json:"icon"`
	} `json:"weather"`
}

func (c *Client) get(ctx context.Context, path string, lat, lon string, out any) error {
	q := url.Values{}
	q.Set("lat", lat)
	q.Set("lon", lon)
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body [256]byte
		n, _ := resp.Body.Read(body[:])
		return &apiError{StatusCode: resp.StatusCode, Body: string(body[:n])}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// FetchReport fetches current conditions and the five-day forecast
// concurrently and condenses them into a Report.
func (c *Client) FetchReport(ctx context.Context, lat, lon string) (*Report, error) {
	var (
		wg          sync.WaitGroup
		current     currentResponse
		forecast    forecastResponse
		currentErr  error
		forecastErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		currentErr = c.get(ctx, "/weather", lat, lon, &current)
	}()
	go func() {
		defer wg.Done()
		forecastErr = c.get(ctx, "/forecast", lat, lon, &forecast)
	}()
	wg.Wait()

	if currentErr != nil {
		return nil, currentErr
	}
	if forecastErr != nil {
		return nil, forecastErr
	}

	report := &Report{Forecast: processForecast(forecast.List)}
	report.Current = CurrentConditions{
		Temp:      current.Main.Temp,
		FeelsLike: current.Main.FeelsLike,
		Humidity:  current.Main.Humidity,
		WindSpeed: current.Wind.Speed,
	}
	if len(current.Weather) > 0 {
		report.Current.Weather = current.Weather[0].Main
		report.Current.Icon = current.Weather[0].Icon
	}

	return report, nil
}

// processForecast collapses the three-hourly list into at most three daily
// summaries, keyed by the date portion of dt_txt in first-appearance order.
func processForecast(entries []forecastEntry) []DailyForecast {
	byDay := map[string]*DailyForecast{}
	order := []string{}

	for _, e := range entries {
		if len(e.DtTxt) < 10 {
			continue
		}
		date := e.DtTxt[:10]

		day, seen := byDay[date]
		if !seen {
			if len(order) == 3 {
				break
			}
			day = &DailyForecast{
				Date:    date,
				TempMin: e.Main.TempMin,
				TempMax: e.Main.TempMax,
			}
			if len(e.Weather) > 0 {
				day.Weather = e.Weather[0].Main
				day.Icon = e.Weather[0].Icon
			}
			byDay[date] = day
			order = append(order, date)
			continue
		}

		if e.Main.TempMin < day.TempMin {
			day.TempMin = e.Main.TempMin
		}
		if e.Main.TempMax > day.TempMax {
			day.TempMax = e.Main.TempMax
		}
	}

	result := make([]DailyForecast, 0, len(order))
	for _, date := range order {
		result = append(result, *byDay[date])
	}
	return result
}
