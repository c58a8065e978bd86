package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const nominatimBaseURL = "https://nominatim.openstreetmap.org"

type (
	Coordinates struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}

	// Geocoder resolves free-text locations against a best-effort external
	// service. Forward lookups return nil when nothing is found or the
	// service is unavailable; reverse lookups fall back to a raw coordinate
	// string. Neither ever returns an error to the caller.
	Geocoder interface {
		Geocode(ctx context.Context, address string) *Coordinates
		ReverseGeocode(ctx context.Context, lat, lon float64) string
	}

	nominatimGeocoder struct {
		client    *http.Client
		userAgent string
	}
)

func NewGeocoder() Geocoder {
	return &nominatimGeocoder{
		client:    &http.Client{Timeout: 5 * time.Second},
		userAgent: "FyndApp/1.0",
	}
}

func (g *nominatimGeocoder) Geocode(ctx context.Context, address string) *Coordinates {
	if strings.TrimSpace(address) == "" {
		return nil
	}

	endpoint := fmt.Sprintf(
		"%s/search?format=json&q=%s&limit=1",
		nominatimBaseURL,
		url.QueryEscape(address),
	)

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := g.get(ctx, endpoint, &results); err != nil {
		log.Warn().Err(err).Str("address", address).Msg("geocoding lookup failed")
		return nil
	}
	if len(results) == 0 {
		return nil
	}

	var lat, lon float64
	if _, err := fmt.Sscanf(results[0].Lat, "%f", &lat); err != nil {
		return nil
	}
	if _, err := fmt.Sscanf(results[0].Lon, "%f", &lon); err != nil {
		return nil
	}

	return &Coordinates{Latitude: lat, Longitude: lon}
}

func (g *nominatimGeocoder) ReverseGeocode(ctx context.Context, lat, lon float64) string {
	fallback := fmt.Sprintf("%g, %g", lat, lon)

	endpoint := fmt.Sprintf(
		"%s/reverse?format=json&lat=%g&lon=%g&zoom=18&addressdetails=1",
		nominatimBaseURL, lat, lon,
	)

	var result struct {
		DisplayName string `json:"display_name"`
		Address     struct {
			Road        string `json:"road"`
			HouseNumber string `json:"house_number"`
			City        string `json:"city"`
			Town        string `json:"town"`
			Village     string `json:"village"`
			Country     string `json:"country"`
		} `json:"address"`
	}
	if err := g.get(ctx, endpoint, &result); err != nil {
		log.Warn().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("reverse geocoding failed")
		return fallback
	}

	parts := make([]string, 0, 4)
	if result.Address.Road != "" {
		parts = append(parts, result.Address.Road)
	}
	if result.Address.HouseNumber != "" {
		parts = append(parts, result.Address.HouseNumber)
	}
	switch {
	case result.Address.City != "":
		parts = append(parts, result.Address.City)
	case result.Address.Town != "":
		parts = append(parts, result.Address.Town)
	case result.Address.Village != "":
		parts = append(parts, result.Address.Village)
	}
	if result.Address.Country != "" {
		parts = append(parts, result.Address.Country)
	}

	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	if result.DisplayName != "" {
		return result.DisplayName
	}
	return fallback
}

func (g *nominatimGeocoder) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	// Nominatim requires an identifying User-Agent
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoding request failed with status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
