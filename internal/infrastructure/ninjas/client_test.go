package ninjas

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SOLOMA2/RecipeApp/internal/domain"
)

func newTestClient(apiKey, baseURL string) *Client {
	return NewClient(apiKey, baseURL, zerolog.Nop())
}

func variant(text string, weight float64) domain.QueryVariant {
	return domain.QueryVariant{ProductQuery: text, WeightGrams: weight, Reason: "original/primary/100g"}
}

func TestNewClient(t *testing.T) {
	t.Run("defaults and normalizes base URL", func(t *testing.T) {
		assert.Equal(t, DefaultBaseURL, newTestClient("key", "").baseURL)
		assert.Equal(t, "https://example.com/v1/", newTestClient("key", "https://example.com/v1").baseURL)
		assert.Equal(t, "https://example.com/v1/", newTestClient("key", "https://example.com/v1/").baseURL)
	})

	t.Run("enabled only with an API key", func(t *testing.T) {
		assert.True(t, newTestClient("key", "").Enabled())
		assert.False(t, newTestClient("", "").Enabled())
		assert.False(t, newTestClient("   ", "").Enabled())
	})
}

func TestLookupVariantSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nutrition", r.URL.Path)
		assert.Equal(t, "100 grams banana", r.URL.Query().Get("query"))
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"banana","serving_size_g":100,"calories":89,"protein_g":1.1,"fat_total_g":0.3,"carbohydrates_total_g":23}]`))
	}))
	defer server.Close()

	client := newTestClient("test-key", server.URL)

	info, err := client.LookupVariant(context.Background(), variant("banana", 100), 150)
	require.NoError(t, err)
	require.NotNil(t, info)

	assert.InDelta(t, 133.5, info.Calories, 0.001)
	assert.InDelta(t, 1.65, info.Protein, 0.001)
	assert.InDelta(t, 0.45, info.Fat, 0.001)
	assert.InDelta(t, 34.5, info.Carbohydrates, 0.001)
	assert.InDelta(t, 150, info.WeightGrams, 0.001)
}

func TestLookupVariantEstimatesCaloriesFromSentinel(t *testing.T) {
	// The free tier returns an explanatory string instead of calories.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":"chicken","serving_size_g":100,"calories":"Only available for premium subscribers.","protein_g":26,"fat_total_g":14,"carbohydrates_total_g":0}]`))
	}))
	defer server.Close()

	client := newTestClient("test-key", server.URL)

	info, err := client.LookupVariant(context.Background(), variant("chicken", 100), 100)
	require.NoError(t, err)
	require.NotNil(t, info)

	// 26*4 + 0*4 + 14*9
	assert.InDelta(t, 230, info.Calories, 0.001)
	assert.InDelta(t, 26, info.Protein, 0.001)
}

func TestLookupVariantServingSizeFallback(t *testing.T) {
	t.Run("uses trial weight when serving size missing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"name":"rice","calories":260,"protein_g":5.4,"fat_total_g":0.6,"carbohydrates_total_g":56.4}]`))
		}))
		defer server.Close()

		client := newTestClient("test-key", server.URL)

		// Macros describe the 200g trial portion; requested weight is 100g.
		info, err := client.LookupVariant(context.Background(), variant("rice", 200), 100)
		require.NoError(t, err)
		require.NotNil(t, info)
		assert.InDelta(t, 130, info.Calories, 0.001)
		assert.InDelta(t, 100, info.WeightGrams, 0.001)
	})
}

func TestLookupVariantMisses(t *testing.T) {
	t.Run("empty result list is a definitive miss", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := newTestClient("test-key", server.URL)
		info, err := client.LookupVariant(context.Background(), variant("nothing", 100), 100)
		assert.NoError(t, err)
		assert.Nil(t, info)
	})

	t.Run("non-success status is a per-variant failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := newTestClient("test-key", server.URL)
		info, err := client.LookupVariant(context.Background(), variant("борщ", 100), 100)
		assert.Nil(t, info)
		assert.ErrorIs(t, err, domain.ErrLookupFailure)
	})

	t.Run("malformed JSON is a per-variant failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"oops":`))
		}))
		defer server.Close()

		client := newTestClient("test-key", server.URL)
		_, err := client.LookupVariant(context.Background(), variant("rice", 100), 100)
		assert.ErrorIs(t, err, domain.ErrLookupFailure)
	})

	t.Run("empty body is a per-variant failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("  "))
		}))
		defer server.Close()

		client := newTestClient("test-key", server.URL)
		_, err := client.LookupVariant(context.Background(), variant("rice", 100), 100)
		assert.ErrorIs(t, err, domain.ErrLookupFailure)
	})

	t.Run("network error is a per-variant failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // refuse connections

		client := newTestClient("test-key", server.URL)
		_, err := client.LookupVariant(context.Background(), variant("rice", 100), 100)
		assert.ErrorIs(t, err, domain.ErrLookupFailure)
	})

	t.Run("disabled client never calls out", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		client := newTestClient("", server.URL)
		info, err := client.LookupVariant(context.Background(), variant("rice", 100), 100)
		assert.NoError(t, err)
		assert.Nil(t, info)
		assert.False(t, called)
	})
}

func TestLookupVariantQueryFormat(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient("test-key", server.URL)

	_, err := client.LookupVariant(context.Background(), variant("куриная грудка", 33.333), 100)
	require.NoError(t, err)
	assert.Equal(t, "33.33 grams куриная грудка", gotQuery)

	_, err = client.LookupVariant(context.Background(), variant("egg", 150), 150)
	require.NoError(t, err)
	assert.Equal(t, "150 grams egg", gotQuery)
}

func TestFlexNumber(t *testing.T) {
	tests := []struct {
		name string
		body string
		want float64
	}{
		{"number", `[{"calories":89.5,"serving_size_g":100}]`, 89.5},
		{"string sentinel", `[{"calories":"premium only","serving_size_g":100,"protein_g":0,"fat_total_g":0,"carbohydrates_total_g":0}]`, 0},
		{"null", `[{"calories":null,"serving_size_g":100}]`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient("test-key", server.URL)
			info, err := client.LookupVariant(context.Background(), variant("x", 100), 100)
			require.NoError(t, err)
			require.NotNil(t, info)
			assert.InDelta(t, tt.want, info.Calories, 0.001)
		})
	}
}

func TestLookupVariantContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient("test-key", server.URL)
	_, err := client.LookupVariant(ctx, variant("rice", 100), 100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLookupFailure) || errors.Is(err, context.Canceled))
}
