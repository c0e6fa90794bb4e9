package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pageza/calorie-craft/backend/config"
	"github.com/pageza/calorie-craft/backend/internal/types"
)

const (
	opSearch = "search"
	opDetail = "detail"

	// maxErrorBody caps how much of a failed response is kept for logs.
	maxErrorBody = 4 << 10
)

// spoonacularRecipe is a recipe as returned by complexSearch and
// /recipes/{id}/information. Search results carry only a subset.
type spoonacularRecipe struct {
	ID               int                   `json:"id"`
	Title            string                `json:"title"`
	Image            string                `json:"image"`
	ReadyInMinutes   int                   `json:"readyInMinutes"`
	Servings         int                   `json:"servings"`
	SourceURL        string                `json:"sourceUrl"`
	SpoonacularScore float64               `json:"spoonacularScore"`
	HealthScore      float64               `json:"healthScore"`
	Instructions     string                `json:"instructions"`
	Nutrition        *spoonacularNutrition `json:"nutrition"`

	ExtendedIngredients []struct {
		Original string `json:"original"`
	} `json:"extendedIngredients"`

	AnalyzedInstructions []struct {
		Name  string                  `json:"name"`
		Steps []types.InstructionStep `json:"steps"`
	} `json:"analyzedInstructions"`
}

type spoonacularNutrition struct {
	Nutrients []types.Nutrient `json:"nutrients"`
}

type spoonacularSearchResponse struct {
	Results      []spoonacularRecipe `json:"results"`
	TotalResults int                 `json:"totalResults"`
}

func (r *spoonacularRecipe) nutrients() []types.Nutrient {
	if r.Nutrition == nil {
		return nil
	}
	return r.Nutrition.Nutrients
}

func (r *spoonacularRecipe) summary() types.RecipeSummary {
	return types.RecipeSummary{
		ID:             r.ID,
		Title:          r.Title,
		Image:          r.Image,
		ReadyInMinutes: r.ReadyInMinutes,
		Calories:       caloriesOf(r.nutrients()),
	}
}

func (r *spoonacularRecipe) detail() *types.RecipeDetail {
	ingredients := make([]string, 0, len(r.ExtendedIngredients))
	for _, ing := range r.ExtendedIngredients {
		ingredients = append(ingredients, ing.Original)
	}

	steps := []types.InstructionStep{}
	for _, block := range r.AnalyzedInstructions {
		steps = append(steps, block.Steps...)
	}

	nutrients := append([]types.Nutrient{}, r.nutrients()...)

	return &types.RecipeDetail{
		ID:                   r.ID,
		Title:                r.Title,
		Image:                r.Image,
		Ingredients:          ingredients,
		Instructions:         r.Instructions,
		AnalyzedInstructions: steps,
		Calories:             caloriesOf(nutrients),
		Nutrients:            nutrients,
		SourceURL:            r.SourceURL,
		SpoonacularScore:     r.SpoonacularScore,
		HealthScore:          r.HealthScore,
		ReadyInMinutes:       r.ReadyInMinutes,
		Servings:             r.Servings,
	}
}

// CatalogService queries the Spoonacular recipe API
type CatalogService struct {
	apiKey  string
	baseURL string
	limit   int
	client  *http.Client
	logger  *slog.Logger
}

// CatalogOption customises a CatalogService
type CatalogOption func(*CatalogService)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(client *http.Client) CatalogOption {
	return func(s *CatalogService) { s.client = client }
}

// WithLogger replaces the default logger
func WithLogger(logger *slog.Logger) CatalogOption {
	return func(s *CatalogService) { s.logger = logger }
}

// NewCatalogService creates a CatalogService from configuration. The HTTP
// client timeout is the only deadline applied to catalog calls.
func NewCatalogService(cfg *config.Config, opts ...CatalogOption) *CatalogService {
	s := &CatalogService{
		apiKey:  cfg.SpoonacularAPIKey,
		baseURL: strings.TrimRight(cfg.SpoonacularBaseURL, "/"),
		limit:   cfg.SpoonacularResultLimit,
		client:  &http.Client{Timeout: cfg.CatalogTimeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchByCategory returns catalog recipes suited to a BMI category. An
// empty result set is not an error.
func (s *CatalogService) SearchByCategory(ctx context.Context, category types.Category) ([]types.RecipeSummary, error) {
	params := ToQueryParams(category)

	query := url.Values{}
	query.Set("query", params.SearchTerm)
	query.Set("number", strconv.Itoa(s.limit))
	query.Set("addRecipeInformation", "true")
	query.Set("addRecipeNutrition", "true")
	if params.MinCalories != nil {
		query.Set("minCalories", strconv.Itoa(*params.MinCalories))
	}
	if params.MaxCalories != nil {
		query.Set("maxCalories", strconv.Itoa(*params.MaxCalories))
	}

	var payload spoonacularSearchResponse
	if err := s.get(ctx, opSearch, "/recipes/complexSearch", query, &payload); err != nil {
		return nil, err
	}

	recipes := make([]types.RecipeSummary, 0, len(payload.Results))
	for i := range payload.Results {
		recipes = append(recipes, payload.Results[i].summary())
	}

	s.logger.DebugContext(ctx, "catalog search completed",
		"category", category,
		"query", params.SearchTerm,
		"results", len(recipes),
	)
	return recipes, nil
}

// GetDetailsByID returns the full detail of one recipe. id must not be empty.
func (s *CatalogService) GetDetailsByID(ctx context.Context, id string) (*types.RecipeDetail, error) {
	query := url.Values{}
	query.Set("includeNutrition", "true")

	var payload spoonacularRecipe
	path := "/recipes/" + url.PathEscape(id) + "/information"
	if err := s.get(ctx, opDetail, path, query, &payload); err != nil {
		return nil, err
	}

	return payload.detail(), nil
}

// get performs one catalog call and decodes a successful JSON body into out.
// Every failure is returned as a *CatalogError.
func (s *CatalogService) get(ctx context.Context, op, path string, query url.Values, out any) (err error) {
	start := time.Now()
	defer func() { observeCatalogCall(op, start, err) }()

	query.Set("apiKey", s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return TranslateCatalogError(op, 0, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return TranslateCatalogError(op, 0, fmt.Errorf("failed to send request: %w", redactURL(err)))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		s.logger.WarnContext(ctx, "catalog request failed",
			"operation", op,
			"path", path,
			"status", resp.StatusCode,
			"body", string(body),
		)
		return TranslateCatalogError(op, resp.StatusCode, fmt.Errorf("catalog responded with status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return TranslateCatalogError(op, 0, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// redactURL drops the request URL, which carries the API key, from
// transport errors.
func redactURL(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("%s: %w", ue.Op, ue.Err)
	}
	return err
}
