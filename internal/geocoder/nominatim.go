package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxErrorBody = 512

// NominatimConfig - параметры клиента текстового поиска
type NominatimConfig struct {
	BaseURL        string
	UserAgent      string
	AcceptLanguage string
	Timeout        time.Duration
	// Transport по умолчанию http.DefaultTransport
	Transport http.RoundTripper
}

// NominatimProvider ищет места через OpenStreetMap Nominatim-совместимый endpoint
type NominatimProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewNominatimProvider создает новый клиент геокодера
func NewNominatimProvider(cfg NominatimConfig) *NominatimProvider {
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &NominatimProvider{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &headerRoundTripper{
				transport: transport,
				headers: map[string]string{
					"User-Agent":      cfg.UserAgent,
					"Accept-Language": cfg.AcceptLanguage,
					"Accept":          "application/json",
				},
			},
		},
	}
}

// Search запрашивает одно лучшее совпадение для текста
func (p *NominatimProvider) Search(ctx context.Context, text string) ([]Candidate, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("format", "json")
	params.Set("limit", "1")

	// Пробел кодируется как %20, а не как "+" из form-encoding
	reqURL := p.baseURL + "?" + strings.ReplaceAll(params.Encode(), "+", "%20")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &GeocodingError{Type: ErrorTypeInvalidRequest, Message: "could not build geocoding request", Err: err}
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		geoErr := ClassifyHTTPError(resp.StatusCode)
		if len(body) > 0 {
			geoErr.Err = fmt.Errorf("response body: %s", body)
		}
		return nil, geoErr
	}

	var candidates []Candidate
	if err := json.NewDecoder(resp.Body).Decode(&candidates); err != nil {
		return nil, &GeocodingError{Type: ErrorTypeDecode, Message: "decoding geocoding response", Err: err}
	}

	return candidates, nil
}
