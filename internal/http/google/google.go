package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://maps.googleapis.com"

// PlaceFields is what the trail wizard needs from a picked place.
var PlaceFields = []string{"geometry", "name", "formatted_address"}

// GoogleMapsClient handles communication with Google Maps web services
type GoogleMapsClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

// NewGoogleMapsClient creates a new client instance.
// An empty key is allowed; calls then fail with ErrMissingAPIKey.
func NewGoogleMapsClient(apiKey, baseURL string) *GoogleMapsClient {
	if apiKey == "" {
		log.Println("Warning: Google Maps API Key is empty.")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &GoogleMapsClient{
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// PlaceDetailsResponse represents the top-level response for a Place Details request
type PlaceDetailsResponse struct {
	HTMLAttributions []string           `json:"html_attributions"`
	Result           PlaceDetailsResult `json:"result"`
	Status           string             `json:"status"` // "OK", "ZERO_RESULTS", "REQUEST_DENIED", ...
}

type PlaceDetailsResult struct {
	AddressComponents []AddressComponent `json:"address_components"`
	FormattedAddress  string             `json:"formatted_address"`
	Geometry          Geometry           `json:"geometry"`
	Name              string             `json:"name"`
	PlaceID           string             `json:"place_id"`
	Types             []string           `json:"types"`
}

type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type Geometry struct {
	Location LatLng `json:"location"`
	Viewport Bounds `json:"viewport"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Bounds struct {
	NorthEast LatLng `json:"northeast"`
	SouthWest LatLng `json:"southwest"`
}

type AutocompleteResponse struct {
	Predictions []Prediction `json:"predictions"`
	Status      string       `json:"status"`
}

type Prediction struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

// GetPlaceDetails fetches a place by its Place ID. Requesting specific
// fields is required by the API and keeps costs down.
func (gc *GoogleMapsClient) GetPlaceDetails(ctx context.Context, placeID string, fields []string) (*PlaceDetailsResult, error) {
	if gc.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if placeID == "" {
		return nil, fmt.Errorf("placeID cannot be empty")
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("fields parameter cannot be empty for Place Details request")
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("key", gc.APIKey)
	params.Set("fields", strings.Join(fields, ","))

	var detailsResponse PlaceDetailsResponse
	if err := gc.getJSON(ctx, "/maps/api/place/details/json", params, &detailsResponse); err != nil {
		return nil, fmt.Errorf("place details: %w", err)
	}
	if detailsResponse.Status != "OK" {
		log.Printf("Google Maps API returned status: %s\n", detailsResponse.Status)
		return nil, fmt.Errorf("google maps API error: %s", detailsResponse.Status)
	}

	return &detailsResponse.Result, nil
}

// Autocomplete returns place predictions restricted to Kenya.
func (gc *GoogleMapsClient) Autocomplete(ctx context.Context, input string) ([]Prediction, error) {
	if gc.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("input", input)
	params.Set("components", "country:ke")
	params.Set("key", gc.APIKey)

	var resp AutocompleteResponse
	if err := gc.getJSON(ctx, "/maps/api/place/autocomplete/json", params, &resp); err != nil {
		return nil, fmt.Errorf("autocomplete: %w", err)
	}
	switch resp.Status {
	case "OK", "ZERO_RESULTS":
		return resp.Predictions, nil
	default:
		return nil, fmt.Errorf("google maps API error: %s", resp.Status)
	}
}

func (gc *GoogleMapsClient) getJSON(ctx context.Context, path string, params url.Values, target interface{}) error {
	fullURL := fmt.Sprintf("%s%s?%s", gc.BaseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := gc.Client.Do(req)
	if err != nil {
		log.Printf("Error making %s request: %v\n", path, err)
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("%s request failed with status %d\n", path, resp.StatusCode)
		return fmt.Errorf("google maps error: status code %d", resp.StatusCode)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
