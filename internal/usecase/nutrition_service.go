package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/SOLOMA2/RecipeApp/internal/domain"
)

// NutritionServiceConfig holds tunables for the nutrition service.
type NutritionServiceConfig struct {
	CacheTTL time.Duration
}

// NutritionService answers nutrition lookups: curated dictionary first,
// then the external API over an ordered sequence of query variants.
type NutritionService struct {
	matcher  *Matcher
	client   domain.NutritionClient
	cache    domain.CacheRepository
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewNutritionService wires the matcher, external client and cache together.
func NewNutritionService(
	matcher *Matcher,
	client domain.NutritionClient,
	cache domain.CacheRepository,
	config NutritionServiceConfig,
	logger zerolog.Logger,
) *NutritionService {
	cacheTTL := config.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 24 * time.Hour
	}

	return &NutritionService{
		matcher:  matcher,
		client:   client,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.With().Str("component", "nutrition").Logger(),
	}
}

// Suggest returns autocomplete candidates from the dictionary.
func (s *NutritionService) Suggest(query string, limit int) []domain.Suggestion {
	return s.matcher.Suggest(query, limit)
}

// Lookup resolves a free-text food query and a target weight into a scaled
// macro estimate.
//
// Outcomes: a dictionary hit returns immediately and never touches the
// external service. Otherwise each query variant is tried in order and the
// first success wins. ErrNotFound means every source answered and none knew
// the food; ErrUnavailable means the external path could not answer (no API
// key, or transport/parse failures). Per-variant failures never propagate.
func (s *NutritionService) Lookup(ctx context.Context, query string, weightGrams float64) (*domain.NutritionInfo, error) {
	if weightGrams <= 0 {
		s.logger.Warn().Float64("weightGrams", weightGrams).Msg("lookup rejected: weight must be positive")
		return nil, domain.ErrInvalidRequest
	}
	if strings.TrimSpace(query) == "" {
		s.logger.Warn().Msg("lookup rejected: blank query")
		return nil, domain.ErrInvalidRequest
	}

	if match := s.matcher.FindBestMatch(query); match != nil {
		s.logger.Info().Str("query", query).Str("variant", match.VariantName).
			Msg("dictionary hit")
		info := domain.Scale(match.Macros, weightGrams, 100)
		return &info, nil
	}

	if info := s.cachedResult(ctx, query, weightGrams); info != nil {
		s.logger.Debug().Str("query", query).Msg("cache hit")
		return info, nil
	}

	if !s.client.Enabled() {
		s.logger.Warn().Str("query", query).
			Msg("external lookup disabled: API key is not configured")
		return nil, domain.ErrUnavailable
	}

	variants := BuildQueryVariants(query, weightGrams)
	if len(variants) == 0 {
		s.logger.Warn().Str("query", query).Msg("no query variants could be generated")
		return nil, domain.ErrNotFound
	}

	s.logger.Info().Str("query", query).Int("variants", len(variants)).
		Float64("weightGrams", weightGrams).Msg("external lookup started")

	attemptFailed := false
	for i, variant := range variants {
		info, err := s.client.LookupVariant(ctx, variant, weightGrams)
		if err != nil {
			attemptFailed = true
			s.logger.Warn().Err(err).Str("reason", variant.Reason).Msg("variant attempt failed")
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		if info == nil {
			continue
		}

		if i > 0 {
			s.logger.Info().Str("reason", variant.Reason).
				Msg("lookup succeeded via fallback variant")
		}
		s.storeResult(ctx, query, weightGrams, info)
		return info, nil
	}

	if attemptFailed {
		s.logger.Warn().Str("query", query).Msg("all variant attempts failed")
		return nil, domain.ErrUnavailable
	}

	s.logger.Info().Str("query", query).Float64("weightGrams", weightGrams).
		Msg("no nutrition data found")
	return nil, domain.ErrNotFound
}

// cacheKey is normalized so spelling-equivalent queries share an entry.
func cacheKey(query string, weightGrams float64) string {
	return "nutrition:" + NormalizeQuery(query) + ":" + formatWeight(domain.Round2(weightGrams))
}

func (s *NutritionService) cachedResult(ctx context.Context, query string, weightGrams float64) *domain.NutritionInfo {
	if s.cache == nil {
		return nil
	}

	value, err := s.cache.Get(ctx, cacheKey(query, weightGrams))
	if err != nil {
		return nil
	}
	info, ok := value.(*domain.NutritionInfo)
	if !ok {
		return nil
	}
	return info
}

func (s *NutritionService) storeResult(ctx context.Context, query string, weightGrams float64, info *domain.NutritionInfo) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(query, weightGrams), info, s.cacheTTL); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache lookup result")
	}
}
