package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTemperature is used whenever the weather lookup fails.
const DefaultTemperature = 20.0

const (
	defaultWeatherURL   = "https://api.openweathermap.org/data/2.5/weather"
	temperatureCacheTTL = 30 * time.Minute
)

// ErrUpstreamUnavailable wraps failures of external lookups. Callers recover
// from it locally.
var ErrUpstreamUnavailable = errors.New("upstream service unavailable")

// WeatherService reads the current temperature from OpenWeatherMap.
type WeatherService struct {
	apiKey string
	apiURL string
	client *http.Client
	redis  *redis.Client
}

// Ensure WeatherService implements TemperatureProvider
var _ TemperatureProvider = (*WeatherService)(nil)

// NewWeatherService creates a new WeatherService. redisClient may be nil to
// disable caching.
func NewWeatherService(apiKey, apiURL string, timeout time.Duration, redisClient *redis.Client) *WeatherService {
	if apiURL == "" {
		apiURL = defaultWeatherURL
	}
	return &WeatherService{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: timeout},
		redis:  redisClient,
	}
}

type weatherResponse struct {
	Main struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

// Temperature returns the current temperature of city in °C.
func (s *WeatherService) Temperature(ctx context.Context, city string) (float64, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return 0, fmt.Errorf("%w: empty city", ErrUpstreamUnavailable)
	}

	cacheKey := "weather:temp:" + strings.ToLower(city)
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			if temp, err := strconv.ParseFloat(cached, 64); err == nil {
				return temp, nil
			}
		}
	}

	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", s.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: weather request: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("%w: weather API status %d: %s", ErrUpstreamUnavailable, resp.StatusCode, string(body))
	}

	var data weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, fmt.Errorf("%w: decode weather response: %v", ErrUpstreamUnavailable, err)
	}
	if data.Main.Temp == nil {
		return 0, fmt.Errorf("%w: weather response has no temperature", ErrUpstreamUnavailable)
	}

	if s.redis != nil {
		if err := s.redis.Set(ctx, cacheKey, strconv.FormatFloat(*data.Main.Temp, 'f', -1, 64), temperatureCacheTTL).Err(); err != nil {
			log.Printf("[WeatherService] Failed to cache temperature for %s: %v", city, err)
		}
	}
	return *data.Main.Temp, nil
}

// ResolveTemperature asks provider for city's temperature within timeout and
// falls back to DefaultTemperature on any failure. The second result reports
// whether the fallback was used.
func ResolveTemperature(ctx context.Context, provider TemperatureProvider, city string, timeout time.Duration) (float64, bool) {
	if provider == nil {
		return DefaultTemperature, true
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	temp, err := provider.Temperature(ctx, city)
	if err != nil {
		log.Printf("[WeatherService] Using default temperature for %q: %v", city, err)
		return DefaultTemperature, true
	}
	return temp, false
}
