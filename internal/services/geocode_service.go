package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"vibego/pkg/utils"
)

// GeocodeResult is the single best match for a free-text address. The core
// generation pipeline never depends on this; it serves the map surface only.
type GeocodeResult struct {
	FormattedAddress string  `json:"formatted_address"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
}

type GeocodeServiceInterface interface {
	Lookup(ctx context.Context, address string) (*GeocodeResult, error)
}

type GoogleGeocodeService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

const googleGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

func NewGoogleGeocodeService(apiKey string) GeocodeServiceInterface {
	return &GoogleGeocodeService{
		apiKey:     apiKey,
		baseURL:    googleGeocodeURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *GoogleGeocodeService) Lookup(ctx context.Context, address string) (*GeocodeResult, error) {
	if address == "" {
		return nil, fmt.Errorf("%w: address is required", utils.ErrInvalidInput)
	}

	query := url.Values{}
	query.Set("address", address)
	query.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamUnavailable, err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: geocode: %v", utils.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Status  string `json:"status"`
		Results []struct {
			FormattedAddress string `json:"formatted_address"`
			Geometry         struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
		ErrorMessage string `json:"error_message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: geocode: %v", utils.ErrUpstreamUnavailable, err)
	}

	switch payload.Status {
	case "OK":
		if len(payload.Results) == 0 {
			return nil, utils.ErrAddressNotFound
		}
		best := payload.Results[0]
		return &GeocodeResult{
			FormattedAddress: best.FormattedAddress,
			Lat:              best.Geometry.Location.Lat,
			Lng:              best.Geometry.Location.Lng,
		}, nil
	case "ZERO_RESULTS":
		return nil, utils.ErrAddressNotFound
	default:
		return nil, fmt.Errorf("%w: geocode status %s: %s", utils.ErrUpstreamUnavailable, payload.Status, payload.ErrorMessage)
	}
}
