package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pageza/fittrack/backend/internal/types"
)

const (
	defaultFoodSearchURL = "https://world.openfoodfacts.org/cgi/search.pl"
	foodSearchPageSize   = 10
)

// localFoods is used when the catalog API is unreachable or finds nothing.
// Keys are the search terms the entry answers to.
var localFoods = []struct {
	terms []string
	item  types.FoodItem
}{
	{[]string{"banana", "банан"}, types.FoodItem{Name: "Banana", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3}},
	{[]string{"apple", "яблоко"}, types.FoodItem{Name: "Apple", Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2}},
	{[]string{"chicken breast", "куриная грудка"}, types.FoodItem{Name: "Chicken breast", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6}},
	{[]string{"rice", "рис"}, types.FoodItem{Name: "Boiled rice", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3}},
	{[]string{"egg", "яйцо"}, types.FoodItem{Name: "Chicken egg", Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11}},
	{[]string{"oatmeal", "овсянка"}, types.FoodItem{Name: "Oatmeal", Calories: 389, Protein: 16.9, Carbs: 66, Fat: 6.9}},
}

var lowCalorieFoods = []string{
	"Cucumber (15 kcal/100g)",
	"Celery (16 kcal/100g)",
	"Tomato (18 kcal/100g)",
	"Broccoli (34 kcal/100g)",
	"Cauliflower (25 kcal/100g)",
	"Spinach (23 kcal/100g)",
}

// NutritionService searches OpenFoodFacts with a built-in fallback table.
type NutritionService struct {
	apiURL string
	client *http.Client
}

// Ensure NutritionService implements FoodCatalog
var _ FoodCatalog = (*NutritionService)(nil)

// NewNutritionService creates a new NutritionService instance
func NewNutritionService(apiURL string, timeout time.Duration) *NutritionService {
	if apiURL == "" {
		apiURL = defaultFoodSearchURL
	}
	return &NutritionService{
		apiURL: apiURL,
		client: &http.Client{Timeout: timeout},
	}
}

type offSearchResponse struct {
	Products []struct {
		ProductName string `json:"product_name"`
		Nutriments  *struct {
			EnergyKcal float64 `json:"energy-kcal_100g"`
			Proteins   float64 `json:"proteins_100g"`
			Carbs      float64 `json:"carbohydrates_100g"`
			Fat        float64 `json:"fat_100g"`
		} `json:"nutriments"`
	} `json:"products"`
}

// Search returns catalog matches for query. Upstream failures are logged and
// answered from the local table; the error is reserved for invalid queries.
func (s *NutritionService) Search(ctx context.Context, query string) ([]types.FoodItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty food query", types.ErrInvalidInput)
	}

	items, err := s.searchRemote(ctx, query)
	if err != nil {
		log.Printf("[NutritionService] Falling back to local foods for %q: %v", query, err)
		return SearchLocalFoods(query), nil
	}
	if len(items) == 0 {
		return SearchLocalFoods(query), nil
	}
	return items, nil
}

func (s *NutritionService) searchRemote(ctx context.Context, query string) ([]types.FoodItem, error) {
	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page_size", fmt.Sprint(foodSearchPageSize))
	params.Set("fields", "product_name,nutriments")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create food search request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: food search: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: food search status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var data offSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: decode food search: %v", ErrUpstreamUnavailable, err)
	}

	items := make([]types.FoodItem, 0, len(data.Products))
	for _, p := range data.Products {
		if p.ProductName == "" || p.Nutriments == nil {
			continue
		}
		items = append(items, types.FoodItem{
			Name:     p.ProductName,
			Calories: p.Nutriments.EnergyKcal,
			Protein:  p.Nutriments.Proteins,
			Carbs:    p.Nutriments.Carbs,
			Fat:      p.Nutriments.Fat,
		})
	}
	return items, nil
}

// LowCalorieSuggestions lists light foods for the near-limit advice.
func (s *NutritionService) LowCalorieSuggestions(ctx context.Context) []string {
	out := make([]string, len(lowCalorieFoods))
	copy(out, lowCalorieFoods)
	return out
}

// SearchLocalFoods matches query against the built-in table in either
// direction, so "banana" and "ripe banana" both hit.
func SearchLocalFoods(query string) []types.FoodItem {
	q := strings.ToLower(strings.TrimSpace(query))
	var results []types.FoodItem
	for _, f := range localFoods {
		for _, term := range f.terms {
			if strings.Contains(term, q) || strings.Contains(q, term) {
				results = append(results, f.item)
				break
			}
		}
	}
	return results
}
