package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibego/pkg/utils"
)

func newTestGeocodeService(handler http.HandlerFunc) (*GoogleGeocodeService, *httptest.Server) {
	server := httptest.NewServer(handler)
	svc := &GoogleGeocodeService{
		apiKey:     "test-key",
		baseURL:    server.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	return svc, server
}

func TestGeocodeLookup_OK(t *testing.T) {
	svc, server := newTestGeocodeService(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Praca do Comercio, Lisboa", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"formatted_address": "Praça do Comércio, 1100-148 Lisboa, Portugal",
				 "geometry": {"location": {"lat": 38.7075, "lng": -9.1364}}},
				{"formatted_address": "Somewhere else",
				 "geometry": {"location": {"lat": 0, "lng": 0}}}
			]
		}`))
	})
	defer server.Close()

	result, err := svc.Lookup(context.Background(), "Praca do Comercio, Lisboa")
	require.NoError(t, err)

	assert.Equal(t, "Praça do Comércio, 1100-148 Lisboa, Portugal", result.FormattedAddress)
	assert.Equal(t, 38.7075, result.Lat)
	assert.Equal(t, -9.1364, result.Lng)
}

func TestGeocodeLookup_ZeroResults(t *testing.T) {
	svc, server := newTestGeocodeService(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})
	defer server.Close()

	_, err := svc.Lookup(context.Background(), "nowhere at all")
	assert.True(t, errors.Is(err, utils.ErrAddressNotFound))
}

func TestGeocodeLookup_UpstreamError(t *testing.T) {
	svc, server := newTestGeocodeService(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "results": [], "error_message": "The provided API key is invalid."}`))
	})
	defer server.Close()

	_, err := svc.Lookup(context.Background(), "Lisboa")
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrUpstreamUnavailable))
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestGeocodeLookup_EmptyAddress(t *testing.T) {
	svc := &GoogleGeocodeService{apiKey: "test-key", baseURL: "http://unused", httpClient: http.DefaultClient}

	_, err := svc.Lookup(context.Background(), "")
	assert.True(t, errors.Is(err, utils.ErrInvalidInput))
}
