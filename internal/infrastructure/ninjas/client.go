// Package ninjas implements the external nutrition lookup against the
// API Ninjas /nutrition endpoint.
package ninjas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/SOLOMA2/RecipeApp/internal/domain"
)

// DefaultBaseURL is the public endpoint root used when none is configured.
const DefaultBaseURL = "https://api.api-ninjas.com/v1/"

// Client performs one HTTP request per query variant. Failures are reported
// per-variant and never abort the caller's fallback sequence.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// NewClient creates an API Ninjas client. An empty baseURL falls back to
// the public endpoint; the URL is normalized to end with a slash.
func NewClient(apiKey, baseURL string, logger zerolog.Logger) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	// Free tier allows 100k requests per month; a conservative local
	// limiter keeps variant fan-out from bursting.
	limiter := rate.NewLimiter(rate.Limit(5), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:  apiKey,
		baseURL: baseURL,
		limiter: limiter,
		logger:  logger.With().Str("component", "ninjas").Logger(),
	}
}

// Enabled reports whether the external path is configured at all.
func (c *Client) Enabled() bool {
	return strings.TrimSpace(c.apiKey) != ""
}

// LookupVariant sends one request for the given variant and scales the
// response to requestedWeight. (nil, nil) is a definitive miss: the API
// answered and had no data. A non-nil error is a transport or parse
// failure for this variant only.
func (c *Client) LookupVariant(ctx context.Context, variant domain.QueryVariant, requestedWeight float64) (*domain.NutritionInfo, error) {
	if !c.Enabled() {
		return nil, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", domain.ErrLookupFailure, err)
	}

	requestQuery := formatWeight(domain.Round2(variant.WeightGrams)) + " grams " + variant.ProductQuery
	reqURL := c.baseURL + "nutrition?query=" + url.QueryEscape(requestQuery)

	c.logger.Info().Str("reason", variant.Reason).Str("query", requestQuery).Msg("nutrition API lookup")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupFailure, err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrLookupFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		// 502 usually means the upstream choked on non-Latin characters;
		// the transliterated variants exist for exactly this case.
		c.logger.Warn().Int("status", resp.StatusCode).Str("reason", variant.Reason).
			Str("body", string(body)).Msg("nutrition API returned non-success status")
		return nil, fmt.Errorf("%w: status %d", domain.ErrLookupFailure, resp.StatusCode)
	}

	if strings.TrimSpace(string(body)) == "" {
		return nil, fmt.Errorf("%w: empty response body", domain.ErrLookupFailure)
	}

	var items []nutritionItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrLookupFailure, err)
	}

	if len(items) == 0 {
		c.logger.Debug().Str("reason", variant.Reason).Msg("nutrition API returned no items")
		return nil, nil
	}

	first := items[0]
	macros := domain.Macros{
		Calories:      float64(first.Calories),
		Protein:       float64(first.Protein),
		Fat:           float64(first.FatTotal),
		Carbohydrates: float64(first.CarbohydratesTotal),
	}

	if macros.Calories <= 0 && (macros.Protein > 0 || macros.Fat > 0 || macros.Carbohydrates > 0) {
		macros.Calories = domain.EstimateCalories(macros.Protein, macros.Fat, macros.Carbohydrates)
		c.logger.Info().Str("reason", variant.Reason).Float64("calories", macros.Calories).
			Msg("calories estimated from macros")
	}

	baseWeight := float64(first.ServingSizeG)
	if baseWeight <= 0 {
		baseWeight = variant.WeightGrams
	}

	info := domain.Scale(macros, requestedWeight, baseWeight)
	c.logger.Info().Str("reason", variant.Reason).Float64("calories", info.Calories).
		Float64("weightGrams", info.WeightGrams).Msg("nutrition lookup succeeded")
	return &info, nil
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
